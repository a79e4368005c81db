package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public reads
	r.GET("/alerts", controllers.ListAlerts)
	r.GET("/alerts/:id", controllers.GetAlert)
	r.GET("/alerts/:id/comments", controllers.ListComments)
	r.GET("/leaderboard", controllers.Leaderboard)

	// Authenticated routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/alerts", controllers.CreateAlert)
		api.PUT("/alerts/:id", controllers.UpdateAlert)
		api.POST("/alerts/:id/resolve", controllers.ResolveAlert)
		api.POST("/alerts/:id/vote", controllers.VoteAlert)
		api.POST("/alerts/:id/comments", controllers.CreateComment)
		api.POST("/alerts/:id/reports", controllers.SubmitReport)
		api.POST("/alerts/photo", controllers.UploadAlertImage)

		api.GET("/routes", controllers.ListRoutes)
		api.POST("/routes", controllers.CreateRoute)
		api.POST("/routes/:id/favorite", controllers.FavoriteRoute)
		api.GET("/favorites", controllers.ListFavorites)
		api.POST("/favorites/:id/notifications", controllers.ToggleFavoriteNotifications)
		api.POST("/favorites/:id/used", controllers.MarkFavoriteUsed)

		api.GET("/notifications", controllers.ListNotifications)
		api.POST("/notifications/:id/read", controllers.MarkNotificationRead)

		api.GET("/user/statistics", controllers.GetStatistics)
		api.GET("/user/badges", controllers.GetBadges)
	}

	// Moderator routes
	mod := r.Group("/")
	mod.Use(middlewares.AuthMiddleware(), middlewares.RequireModerator())
	{
		mod.POST("/alerts/:id/verify", controllers.VerifyAlert)
		mod.POST("/alerts/:id/status", controllers.OverrideAlertStatus)
		mod.POST("/reports/:id/review", controllers.ReviewReport)
	}

	return r
}
