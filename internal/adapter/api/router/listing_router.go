package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
)

func SetupListingRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	// Public routes
	services := g.Group("/services")
	services.GET("", listingHandler.ListListings)
	services.GET("/categories", listingHandler.ListCategories)
	services.GET("/:id", listingHandler.GetListing)

	// Protected routes
	owned := g.Group("/services", authMiddleware.Authenticate)
	owned.GET("/mine", listingHandler.ListMine)
	owned.POST("", listingHandler.CreateListing)
	owned.PUT("/:id", listingHandler.UpdateListing)
	owned.DELETE("/:id", listingHandler.DeleteListing)
}
