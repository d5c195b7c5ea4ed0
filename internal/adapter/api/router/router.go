package router

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/handler"
	"serviya/internal/adapter/api/middleware"
	"serviya/internal/infrastructure/ratelimit"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	wsHandler *handler.WebSocketHandler,
	apiLimiter *ratelimit.RateLimiter,
	aiLimiter *ratelimit.RateLimiter,
) {
	SetupHealthRouter(e)

	v1 := e.Group("/v1", middleware.RateLimit(apiLimiter))
	SetupListingRouter(v1, authMiddleware)
	SetupReviewRouter(v1, authMiddleware)
	SetupHireRouter(v1, authMiddleware)
	SetupNotificationRouter(v1, authMiddleware)
	SetupWebSocketRouter(v1, authMiddleware, wsHandler)
	SetupUserRouter(v1, authMiddleware)
	SetupFileRouter(v1, authMiddleware)
	SetupAssistantRouter(v1, authMiddleware, aiLimiter)
	SetupChatRouter(v1, authMiddleware)
	SetupAdminRouter(v1, authMiddleware, adminMiddleware)
}
