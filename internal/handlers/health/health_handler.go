// internal/handlers/health/health_handler.go
package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sumon-service/internal/config"
	"sumon-service/internal/pkg/response"
)

type HealthHandler struct {
	cfg     config.AppConfig
	started time.Time
}

func NewHealthHandler(cfg config.AppConfig) *HealthHandler {
	return &HealthHandler{cfg: cfg, started: time.Now()}
}

// Health reports service liveness plus which required settings are present,
// without leaking any values.
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "", gin.H{
		"status":      "ok",
		"environment": h.cfg.Env,
		"uptime":      time.Since(h.started).Round(time.Second).String(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"config": gin.H{
			"database_url":  setOrMissing(h.cfg.DatabaseURL),
			"jwt_secret":    setOrMissing(h.cfg.JWT.Secret),
			"smtp_host":     setOrMissing(h.cfg.SMTPHost),
			"smtp_user":     setOrMissing(h.cfg.SMTPUser),
			"contact_email": setOrMissing(h.cfg.ContactEmail),
		},
	})
}

func setOrMissing(v string) string {
	if v == "" {
		return "Missing"
	}
	return "Set"
}
