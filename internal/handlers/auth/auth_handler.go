// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sumon-service/internal/domain/admin"
	"sumon-service/internal/middleware"
	"sumon-service/internal/pkg/response"
	service "sumon-service/internal/service/auth"
)

type AuthHandler struct {
	authService       *service.AuthService
	allowRegistration bool
}

func NewAuthHandler(authService *service.AuthService, allowRegistration bool) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		allowRegistration: allowRegistration,
	}
}

// Register creates the admin account. Registration can be switched off once
// the account exists.
func (h *AuthHandler) Register(c *gin.Context) {
	if !h.allowRegistration {
		response.Error(c, http.StatusForbidden, "Registration is disabled", nil)
		return
	}

	var req admin.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide name, email and password", nil)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Account created successfully", result)
}

// Login exchanges credentials for a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide email and password", nil)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Logged in successfully", result)
}

// Me returns the authenticated admin's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	a, ok := middleware.GetAdmin(c)
	if !ok {
		response.Unauthorized(c, "Not authorized to access this route")
		return
	}
	response.Success(c, http.StatusOK, "", a.Info())
}

// Logout acknowledges the logout. Tokens are stateless; the client discards
// its copy and deactivation covers forced revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}
