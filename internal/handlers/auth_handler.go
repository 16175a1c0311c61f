package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/padhoai/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for the mocked sign-in flow.
type AuthService interface {
	// Method Login creates a placeholder profile for the device and moves it to the dashboard.
	//
	// "req" parameter contains email and password; both must be non-empty and neither is verified.
	//
	// If a field is empty, models.ErrRequiredFields is returned. If the device is not on the login form,
	// an error wrapping models.ErrInvalidTransition is returned. In both cases nothing is stored.
	Login(ctx context.Context, deviceID string, req *models.LoginRequest) (*models.UserProfile, error)
	// Method Signup creates a profile from the signup form and moves the device to the dashboard.
	//
	// "req" parameter contains name, email, password, age, language and level; all must be non-empty.
	//
	// If a field is empty or holds a value the form does not offer, a validation error is returned and nothing is stored.
	Signup(ctx context.Context, deviceID string, req *models.SignupRequest) (*models.UserProfile, error)
	// Method Logout clears the stored profile and moves the device to the login form.
	Logout(ctx context.Context, deviceID string) error
	// Method Profile returns the stored profile of the device.
	//
	// If the device has none, models.ErrProfileNotFound is returned.
	Profile(ctx context.Context, deviceID string) (*models.UserProfile, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/signup", h.Signup)
		r.Post("/logout", h.Logout)
	})
	r.Get("/profile", h.Profile)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Accepts any non-empty email and password, stores a placeholder profile for the device and opens the dashboard.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 409 {object} map[string]string "Device is not on the login form"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.authService.Login(r.Context(), deviceID, &req)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, profile)
}

// Signup handles POST /auth/signup
// @Summary Sign up
// @Description Stores a new profile built from the signup form and opens the dashboard.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup form"
// @Success 201 {object} models.UserProfile
// @Failure 400 {object} map[string]string "Missing or invalid fields"
// @Failure 409 {object} map[string]string "Device is not on the signup form"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	var req models.SignupRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.authService.Signup(r.Context(), deviceID, &req)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, profile)
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Removes the stored profile and returns the device to the login form.
// @Tags auth
// @Produce json
// @Success 200 {object} models.ViewResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	if err := h.authService.Logout(r.Context(), deviceID); err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, &models.ViewResponse{View: models.ViewLogin})
}

// Profile handles GET /profile
// @Summary Get the stored profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} map[string]string "No profile stored"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	profile, err := h.authService.Profile(r.Context(), deviceID)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, profile)
}
