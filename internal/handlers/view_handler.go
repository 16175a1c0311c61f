package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/padhoai/backend/internal/models"
	"go.uber.org/zap"
)

// ViewService is the interface that wraps methods of the per-device screen router.
type ViewService interface {
	// Method Boot re-initializes the device's view from its stored profile, as a page reload does.
	Boot(ctx context.Context, deviceID string) (*models.ViewResponse, error)
	// Method Current returns the device's view.
	Current(ctx context.Context, deviceID string) (*models.ViewResponse, error)
	// Method Navigate opens a dashboard section.
	//
	// If "target" is not a known view, models.ErrInvalidView is returned. If the section cannot be
	// opened from the current view, an error wrapping models.ErrInvalidTransition is returned.
	Navigate(ctx context.Context, deviceID string, target models.ViewState) (*models.ViewResponse, error)
	// Method Back returns from the chat or a "coming soon" section to the dashboard.
	Back(ctx context.Context, deviceID string) (*models.ViewResponse, error)
	// Method SwitchForm toggles between the login and signup forms.
	SwitchForm(ctx context.Context, deviceID string, target models.ViewState) (*models.ViewResponse, error)
}

// ViewHandler handles view-router HTTP requests
type ViewHandler struct {
	BaseHandler
	viewService ViewService
}

// NewViewHandler creates a new view handler
func NewViewHandler(viewService ViewService, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{
		BaseHandler: BaseHandler{Logger: logger},
		viewService: viewService,
	}
}

// RegisterRoutes registers all view handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *ViewHandler) RegisterRoutes(r chi.Router) {
	r.Route("/view", func(r chi.Router) {
		r.Get("/", h.Current)
		r.Post("/boot", h.Boot)
		r.Post("/navigate", h.Navigate)
		r.Post("/back", h.Back)
		r.Post("/switch", h.SwitchForm)
	})
}

// Current handles GET /view
// @Summary Get the current view
// @Tags view
// @Produce json
// @Success 200 {object} models.ViewResponse
// @Router /view [get]
func (h *ViewHandler) Current(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	resp, err := h.viewService.Current(r.Context(), deviceID)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Boot handles POST /view/boot
// @Summary Boot the view
// @Description Opens the dashboard when a profile is stored for the device, the login form otherwise. Leaving the chat this way discards its history.
// @Tags view
// @Produce json
// @Success 200 {object} models.ViewResponse
// @Router /view/boot [post]
func (h *ViewHandler) Boot(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	resp, err := h.viewService.Boot(r.Context(), deviceID)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Navigate handles POST /view/navigate
// @Summary Open a dashboard section
// @Tags view
// @Accept json
// @Produce json
// @Param request body models.ViewRequest true "Target view: chat, lessons, quiz, progress or settings"
// @Success 200 {object} models.ViewResponse
// @Failure 400 {object} map[string]string "Unknown view"
// @Failure 409 {object} map[string]string "Section not reachable from the current view"
// @Router /view/navigate [post]
func (h *ViewHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	var req models.ViewRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.viewService.Navigate(r.Context(), deviceID, req.Target)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Back handles POST /view/back
// @Summary Return to the dashboard
// @Tags view
// @Produce json
// @Success 200 {object} models.ViewResponse
// @Failure 409 {object} map[string]string "No back transition from the current view"
// @Router /view/back [post]
func (h *ViewHandler) Back(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	resp, err := h.viewService.Back(r.Context(), deviceID)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// SwitchForm handles POST /view/switch
// @Summary Switch between login and signup forms
// @Tags view
// @Accept json
// @Produce json
// @Param request body models.ViewRequest true "Target form: login or signup"
// @Success 200 {object} models.ViewResponse
// @Failure 400 {object} map[string]string "Unknown view"
// @Failure 409 {object} map[string]string "Not on the other form"
// @Router /view/switch [post]
func (h *ViewHandler) SwitchForm(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	var req models.ViewRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.viewService.SwitchForm(r.Context(), deviceID, req.Target)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
