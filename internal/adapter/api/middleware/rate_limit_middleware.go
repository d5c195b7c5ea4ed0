package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"serviya/internal/infrastructure/ratelimit"
	"serviya/pkg/errors"
	"serviya/pkg/logger"
	"serviya/pkg/response"
)

// RateLimit throttles per authenticated user, falling back to the client IP.
func RateLimit(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := UID(c)
			if key == "" {
				key = "ip:" + c.RealIP()
			}

			allowed, wait := limiter.Allow(key)
			if !allowed {
				logger.Warn("rate limit exceeded for %s on %s", key, c.Path())
				c.Response().Header().Set("Retry-After", retryAfter(wait))
				return response.Error(c, errors.TooManyRequests("Too many requests, try again later"))
			}

			return next(c)
		}
	}
}

func retryAfter(wait time.Duration) string {
	secs := int(math.Ceil(wait.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
