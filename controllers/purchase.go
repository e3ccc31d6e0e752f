package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"Wurder/services/purchase"

	"github.com/gin-gonic/gin"
)

// PurchaseService is the slice of the purchase flow the handler needs.
type PurchaseService interface {
	Purchase(ctx context.Context, payload *purchase.Payload) (*purchase.Result, error)
}

// @Summary Purchases a new game
// @Description Validates the request, mints a unique game code, prices the purchase and records it
// @Tags purchase
// @Accept json
// @Produce json
// @Param request body object{gameName=string,players=number,addons=[]string} true "Purchase request"
// @Success 200 {object} object{code=string,players=integer,addons=[]string,price=integer}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /purchase [post]
func PurchaseGame(service PurchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload purchase.Payload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload."})
			return
		}

		result, err := service.Purchase(c.Request.Context(), &payload)
		if err != nil {
			var validationErr purchase.ValidationError
			if errors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
				return
			}

			log.Printf("Failed to process purchase: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
