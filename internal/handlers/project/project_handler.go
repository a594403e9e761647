// internal/handlers/project/project_handler.go
package project

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sumon-service/internal/domain/project"
	"sumon-service/internal/pkg/response"
	service "sumon-service/internal/service/project"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns a filtered, paginated project listing.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var filters project.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", nil)
		return
	}

	result, err := h.projectService.List(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", result)
}

// FeaturedProjects returns the showcase projects for the landing page.
func (h *ProjectHandler) FeaturedProjects(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))

	items, err := h.projectService.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", items)
}

// GetProject retrieves a project by numeric ID.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Project not found")
		return
	}

	result, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", result)
}

// GetProjectBySlug retrieves a project by its URL slug.
func (h *ProjectHandler) GetProjectBySlug(c *gin.Context) {
	result, err := h.projectService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", result)
}

// CreateProject accepts a multipart form (with images) or a JSON body.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	input, uploads, cleanup, err := bindCreate(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer cleanup()

	result, err := h.projectService.Create(c.Request.Context(), *input, uploads)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created successfully", result)
}

// UpdateProject applies a partial update, optionally appending new images.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Project not found")
		return
	}

	input, uploads, cleanup, err := bindUpdate(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer cleanup()

	result, err := h.projectService.Update(c.Request.Context(), id, *input, uploads)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated successfully", result)
}

// DeleteProject removes a project and its stored images.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Project not found")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted successfully", nil)
}
