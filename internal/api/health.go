package api

import (
	"net/http"

	respond "github.com/taskautomator/backend/internal/api/respond"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "task-automator-api"

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// CheckHealth handles GET /api/v1/health.
// Deterministic and dependency-free: it performs no downstream calls and
// always reports healthy.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}
