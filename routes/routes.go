package routes

import (
	"log/slog"

	"newshub-backend/auth"
	"newshub-backend/controllers"
	"newshub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	news *controllers.NewsController,
	contact *controllers.ContactController,
	verifier auth.TokenVerifier,
	logger *slog.Logger,
) {
	group := router.Group("/api")
	{
		group.GET("/news", news.GetNews)
		group.GET("/fetch-news", news.FetchNews)
		group.POST("/news", middleware.RequireAuth(verifier, logger), news.CreateArticle)
	}

	router.POST("/send-message", contact.SendMessage)
}
