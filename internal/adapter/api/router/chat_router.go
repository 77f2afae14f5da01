package router

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/adapter/api/handler"
	"rentnest/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/api/chats")
	chats.Use(authMiddleware.Authenticate)

	chats.GET("", chatHandler.GetMyConversations)
	chats.POST("/initiate", chatHandler.InitiateConversation)
	chats.GET("/:conversationId/messages", chatHandler.GetMessages)
	chats.POST("/:conversationId/messages", chatHandler.SendMessage)
	chats.PUT("/messages/:messageId", chatHandler.EditMessage)
	chats.POST("/messages/:messageId/react", chatHandler.ReactToMessage)
}
