// internal/app/router.go
package app

import (
	"github.com/gin-gonic/gin"

	authHandler "sumon-service/internal/handlers/auth"
	healthHandler "sumon-service/internal/handlers/health"
	inquiryHandler "sumon-service/internal/handlers/inquiry"
	projectHandler "sumon-service/internal/handlers/project"
	"sumon-service/internal/middleware"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	ProjectHandler *projectHandler.ProjectHandler
	InquiryHandler *inquiryHandler.InquiryHandler
	HealthHandler  *healthHandler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	// ==================== Health Check ====================
	api.GET("/health", h.HealthHandler.Health)

	// ==================== Auth ====================
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
	}
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.GET("/me", h.AuthHandler.Me)
		authProtected.POST("/logout", h.AuthHandler.Logout)
	}

	// ==================== Projects ====================
	projects := api.Group("/projects")
	{
		projects.GET("", h.ProjectHandler.ListProjects)
		projects.GET("/featured", h.ProjectHandler.FeaturedProjects)
		projects.GET("/slug/:slug", h.ProjectHandler.GetProjectBySlug)
		projects.GET("/:id", h.ProjectHandler.GetProject)
	}
	projectsAdmin := api.Group("/projects")
	projectsAdmin.Use(h.AuthMiddleware.Auth())
	{
		projectsAdmin.POST("", h.ProjectHandler.CreateProject)
		projectsAdmin.PUT("/:id", h.ProjectHandler.UpdateProject)
		projectsAdmin.DELETE("/:id", h.ProjectHandler.DeleteProject)
	}

	// ==================== Inquiries ====================
	api.POST("/inquiries", h.InquiryHandler.CreateInquiry)

	inquiriesAdmin := api.Group("/inquiries")
	inquiriesAdmin.Use(h.AuthMiddleware.Auth())
	{
		// stats is registered before :id so it never matches as an ID
		inquiriesAdmin.GET("/stats", h.InquiryHandler.InquiryStats)
		inquiriesAdmin.GET("", h.InquiryHandler.ListInquiries)
		inquiriesAdmin.GET("/:id", h.InquiryHandler.GetInquiry)
		inquiriesAdmin.PUT("/:id/status", h.InquiryHandler.UpdateInquiryStatus)
		inquiriesAdmin.DELETE("/:id", h.InquiryHandler.DeleteInquiry)
	}
}
