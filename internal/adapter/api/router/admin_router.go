package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
)

func SetupAdminRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := g.Group("/admin", authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/verified", adminHandler.SetVerified)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/stats", adminHandler.Stats)
}
