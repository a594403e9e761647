// internal/handlers/inquiry/inquiry_handler.go
package inquiry

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sumon-service/internal/domain/inquiry"
	"sumon-service/internal/pkg/response"
	service "sumon-service/internal/service/inquiry"
)

type InquiryHandler struct {
	inquiryService *service.InquiryService
}

func NewInquiryHandler(inquiryService *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// CreateInquiry is the public contact-form endpoint.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var input inquiry.CreateInquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	meta := inquiry.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.inquiryService.Create(c.Request.Context(), input, meta)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated,
		"Thank you for your inquiry. We will get back to you soon!", result)
}

// ListInquiries returns a page of inquiries for the admin dashboard.
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	var filters inquiry.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", nil)
		return
	}

	result, err := h.inquiryService.List(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", result)
}

// InquiryStats returns the per-status counts.
func (h *InquiryHandler) InquiryStats(c *gin.Context) {
	stats, err := h.inquiryService.Stats(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", stats)
}

// GetInquiry retrieves a single inquiry.
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Inquiry not found")
		return
	}

	result, err := h.inquiryService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", result)
}

// UpdateInquiryStatus moves an inquiry between unread, read and replied.
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Inquiry not found")
		return
	}

	var input inquiry.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.inquiryService.UpdateStatus(c.Request.Context(), id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Inquiry status updated", result)
}

// DeleteInquiry removes an inquiry.
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Inquiry not found")
		return
	}

	if err := h.inquiryService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Inquiry deleted successfully", nil)
}
