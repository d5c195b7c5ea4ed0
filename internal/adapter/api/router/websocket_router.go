package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware, wsHandler *handler.WebSocketHandler) {
	g.GET("/notifications/ws", wsHandler.HandleNotifications, authMiddleware.Authenticate)
}
