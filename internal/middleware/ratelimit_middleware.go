// internal/middleware/ratelimit_middleware.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sumon-service/internal/pkg/ratelimit"
	"sumon-service/internal/pkg/response"
)

// RateLimitMiddleware enforces the per-IP request budget. When redis is
// unreachable the request is allowed through; losing the limiter must not
// take the API down with it.
func RateLimitMiddleware(limiter *ratelimit.Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request",
				zap.String("ip", c.ClientIP()),
				zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.Error(c, http.StatusTooManyRequests,
				"Too many requests from this IP, please try again later.", nil)
			return
		}
		c.Next()
	}
}
