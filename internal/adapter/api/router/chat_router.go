package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
)

func SetupChatRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := g.Group("/chats", authMiddleware.Authenticate)
	chats.POST("", chatHandler.StartChat)
	chats.GET("", chatHandler.ListChats)
	chats.GET("/:id/messages", chatHandler.ListMessages)
	chats.POST("/:id/messages", chatHandler.SendMessage)
}
