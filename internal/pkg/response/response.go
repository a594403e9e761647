// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	xerrors "sumon-service/internal/pkg/errors"
	"sumon-service/internal/validation"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API envelope: success responses carry data,
// failures carry a structured error body.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	Message    string                  `json:"message"`
	StatusCode int                     `json:"statusCode"`
	Errors     []validation.FieldError `json:"errors,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response and aborts the chain.
func Error(c *gin.Context, code int, message string, fields []validation.FieldError) {
	c.Abort()
	c.JSON(code, Response{
		Success: false,
		Error: &ErrorBody{
			Message:    message,
			StatusCode: code,
			Errors:     fields,
		},
	})
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// ValidationFailed sends a 400 with the per-field failure report.
func ValidationFailed(c *gin.Context, fields validation.Errors) {
	Error(c, http.StatusBadRequest, "Validation failed", fields)
}

// FromError is the single point that normalizes service/store errors into
// the HTTP taxonomy. Handlers funnel every non-nil error through here.
func FromError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		ValidationFailed(c, verrs)
	case errors.Is(err, xerrors.ErrNotFound):
		NotFound(c, "Resource not found")
	case errors.Is(err, xerrors.ErrUnauthorized):
		Unauthorized(c, "Not authorized")
	case errors.Is(err, xerrors.ErrDuplicateEntry), errors.Is(err, xerrors.ErrConflict):
		Error(c, http.StatusConflict, "Resource already exists", nil)
	case errors.Is(err, xerrors.ErrInvalidInput):
		Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, xerrors.ErrRateLimited):
		Error(c, http.StatusTooManyRequests, "Too many requests, please try again later.", nil)
	default:
		Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
	}
}
