package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
)

func SetupHireRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	hireHandler := handler.GetHireHandler()

	g.POST("/services/:id/hires", hireHandler.CreateHire, authMiddleware.Authenticate)

	hires := g.Group("/hires", authMiddleware.Authenticate)
	hires.GET("/mine", hireHandler.ListMine)
	hires.GET("/requests", hireHandler.ListRequests)
	hires.GET("/:id", hireHandler.GetHire)
	hires.PATCH("/:id/status", hireHandler.UpdateStatus)
}
