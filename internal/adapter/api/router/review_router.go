package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
)

func SetupReviewRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	g.GET("/services/:id/reviews", reviewHandler.ListReviews)

	authenticated := g.Group("/services/:id/reviews", authMiddleware.Authenticate)
	authenticated.POST("", reviewHandler.SubmitReview)
	authenticated.GET("/mine", reviewHandler.HasReviewed)
}
