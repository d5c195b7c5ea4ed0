package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
)

func SetupUserRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	me := g.Group("/users/me", authMiddleware.Authenticate)
	me.GET("", userHandler.GetMe)
	me.GET("/favorites", userHandler.ListFavorites)
	me.POST("/favorites/:serviceId", userHandler.AddFavorite)
	me.DELETE("/favorites/:serviceId", userHandler.RemoveFavorite)

	g.GET("/users/:id", userHandler.GetPublicProfile)
}
