package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/credtrack/credtrack-backend/internal/service/dashboard"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	Get(ctx context.Context) (*dashboard.Dashboard, error)
}

// DashboardHandler serves the dashboard REST endpoint.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dash)
}
