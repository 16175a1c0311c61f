package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/padhoai/backend/internal/models"
	"go.uber.org/zap"
)

// DashboardService is the interface that wraps the dashboard summary method.
type DashboardService interface {
	// Method Summary returns the learner's statistics together with the subject, achievement and quick-action catalog.
	//
	// If the device has no stored profile, models.ErrProfileNotFound is returned.
	Summary(ctx context.Context, deviceID string) (*models.DashboardSummary, error)
}

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	BaseHandler
	dashboardService DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      BaseHandler{Logger: logger},
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers all dashboard handler routes
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.Summary)
}

// Summary handles GET /dashboard
// @Summary Get the dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardSummary
// @Failure 404 {object} map[string]string "No profile stored"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(r.Context(), deviceID)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, summary)
}
