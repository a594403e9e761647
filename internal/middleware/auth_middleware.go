// internal/middleware/auth_middleware.go
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"sumon-service/internal/domain/admin"
	"sumon-service/internal/pkg/response"
)

// TokenVerifier resolves a bearer token to its admin account.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*admin.Admin, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Auth validates the bearer token and puts the admin on the context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "Not authorized to access this route")
			return
		}

		a, err := m.verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Not authorized to access this route")
			return
		}

		c.Set("admin", a)
		c.Set("admin_id", a.ID)
		c.Next()
	}
}

// extractToken pulls the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// GetAdmin returns the authenticated admin set by Auth.
func GetAdmin(c *gin.Context) (*admin.Admin, bool) {
	v, exists := c.Get("admin")
	if !exists {
		return nil, false
	}
	a, ok := v.(*admin.Admin)
	return a, ok
}
