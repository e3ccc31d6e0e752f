package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	redis_models "Wurder/models/redis"
	"Wurder/services/gamestore"
	"Wurder/services/purchase"

	"github.com/gin-gonic/gin"
)

// GameLookup is the slice of the game store the lookup handler needs.
type GameLookup interface {
	GetGame(ctx context.Context, code string) (*redis_models.StoredGame, error)
}

// @Summary Gives info of a purchased game
// @Description Given a game code, it will return the stored game document
// @Tags game
// @Produce json
// @Param code path string true "Game code"
// @Success 200 {object} object{code=string,name=string,price=integer}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /games/{code} [get]
func GetGameInfo(store GameLookup, offline *purchase.OfflineStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

		game, err := store.GetGame(c.Request.Context(), code)
		if err == nil {
			c.JSON(http.StatusOK, game)
			return
		}

		// Purchases parked while the store was down still show up on the
		// confirmation page.
		if parked, ok := offline.Get(code); ok {
			c.JSON(http.StatusOK, parked)
			return
		}

		if errors.Is(err, gamestore.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}
