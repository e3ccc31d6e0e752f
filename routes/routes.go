package routes

import (
	"Wurder/controllers"
	"Wurder/middleware"
	"Wurder/services/gamestore"
	"Wurder/services/purchase"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, store *gamestore.Client,
	purchaseService *purchase.Service, offline *purchase.OfflineStore) {

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/purchase", controllers.PurchaseGame(purchaseService))

	api.GET("/games/:code", controllers.GetGameInfo(store, offline))

	api.POST("/signup", controllers.SignUp(db))

	api.POST("/login", controllers.Login(db))

	api.GET("/users/:wurderid", controllers.GetUserPublicInfo(db))

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.DELETE("/logout", controllers.Logout)

		authentication.GET("/me", controllers.GetUserPrivateInfo(db))

		authentication.PATCH("/update", controllers.UpdateUserInfo(db))

		authentication.GET("/history", controllers.GetGameHistory(db))

		authentication.POST("/history", controllers.LogGameHistory(db))
	}
}
