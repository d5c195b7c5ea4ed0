package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
	"serviya/internal/infrastructure/ratelimit"
)

func SetupAssistantRouter(g *echo.Group, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	assistantHandler := handler.GetAssistantHandler()

	assistant := g.Group("/assistant", authMiddleware.Authenticate, middleware.RateLimit(limiter))
	assistant.POST("/description", assistantHandler.SuggestDescription)
	assistant.POST("/support", assistantHandler.Support)
}
