package handler

import (
	"net/http"
	"time"

	"arcade/config"
	"arcade/internal/util"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and build information
type HealthHandler struct {
	startedAt time.Time
	version   string
	service   string
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`    // Seconds since start.
	UptimeStr string  `json:"uptimeStr"` // Same, human readable.
	Timestamp string  `json:"timestamp"`
	Version   string  `json:"version"`
}

// NewHealthHandler creates a HealthHandler; uptime is measured from this call
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		startedAt: time.Now(),
		version:   cfg.Env.Version,
		service:   cfg.Env.ServiceName,
	}
}

// Check returns the service status
func (h *HealthHandler) Check(c echo.Context) error {
	uptime := time.Since(h.startedAt)

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Uptime:    uptime.Seconds(),
		UptimeStr: util.FormatDuration(uptime),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Version:   h.version,
	})
}

// Welcome answers the root route with a plain text greeting
func (h *HealthHandler) Welcome(c echo.Context) error {
	name := h.service
	if name == "" {
		name = "arcade"
	}

	return c.String(http.StatusOK, "Welcome to the "+name+" API")
}
