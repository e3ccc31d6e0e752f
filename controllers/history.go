package controllers

import (
	"net/http"
	"strings"
	"time"

	"Wurder/middleware"
	models "Wurder/models/postgres"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type logHistoryRequest struct {
	GameID       string     `json:"gameId"`
	GameName     string     `json:"gameName"`
	JoinedAt     *time.Time `json:"joinedAt"`
	LeftAt       *time.Time `json:"leftAt"`
	PointsEarned int        `json:"pointsEarned"`
	Kills        int        `json:"kills"`
	Deaths       int        `json:"deaths"`
	Result       string     `json:"result"`
	Role         string     `json:"role"`
	Guild        *string    `json:"guild"`
}

// @Summary Records a finished game for the caller
// @Description Appends one game result row to the user's history
// @Tags history
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param request body object{gameId=string,gameName=string,result=string} true "Game result"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/history [post]
// @Security ApiKeyAuth
func LogGameHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := middleware.JWT_decoder(c)
		if err != nil {
			return
		}

		var req logHistoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload."})
			return
		}

		if strings.TrimSpace(req.GameID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Game id is required"})
			return
		}

		entry := models.GameHistory{
			ID:           uuid.New().String(),
			UserUID:      uid,
			GameID:       strings.TrimSpace(req.GameID),
			GameName:     req.GameName,
			PointsEarned: req.PointsEarned,
			Kills:        req.Kills,
			Deaths:       req.Deaths,
			Result:       req.Result,
			Role:         req.Role,
			Guild:        req.Guild,
			LeftAt:       req.LeftAt,
		}
		if entry.GameName == "" {
			entry.GameName = "Unnamed Game"
		}
		if entry.Result == "" {
			entry.Result = "loss"
		}
		if entry.Role == "" {
			entry.Role = "player"
		}
		if req.JoinedAt != nil {
			entry.JoinedAt = *req.JoinedAt
		} else {
			entry.JoinedAt = time.Now().UTC()
		}

		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording game history"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Game recorded successfully"})
	}
}

// @Summary Lists the caller's game history
// @Description Returns the user's finished games, newest first
// @Tags history
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} object{gameId=string,gameName=string,result=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/history [get]
// @Security ApiKeyAuth
func GetGameHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := middleware.JWT_decoder(c)
		if err != nil {
			return
		}

		var rows []models.GameHistory
		if err := db.Where("user_uid = ?", uid).Order("joined_at desc").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading game history"})
			return
		}

		history := make([]gin.H, len(rows))
		for i, row := range rows {
			history[i] = gin.H{
				"gameId":       row.GameID,
				"gameName":     row.GameName,
				"joinedAt":     row.JoinedAt,
				"leftAt":       row.LeftAt,
				"pointsEarned": row.PointsEarned,
				"kills":        row.Kills,
				"deaths":       row.Deaths,
				"result":       row.Result,
				"role":         row.Role,
				"guild":        row.Guild,
			}
		}
		c.JSON(http.StatusOK, history)
	}
}
