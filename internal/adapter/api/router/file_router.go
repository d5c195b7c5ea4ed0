package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
)

func SetupFileRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := g.Group("/files", authMiddleware.Authenticate)
	files.POST("/images", fileHandler.UploadImage)
}
