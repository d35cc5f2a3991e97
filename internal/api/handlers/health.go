package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/marketbridge/internal/bridge"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	svc bridge.Service
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(svc bridge.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 when at least one marketplace is registered and every
// registered provider resolves a base URL for its environment, 503
// otherwise. It never authenticates.
func (h *HealthHandler) Readyz(c echo.Context) error {
	statuses := h.svc.Status()
	if len(statuses) == 0 {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	for _, st := range statuses {
		if st.Error != "" {
			return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
