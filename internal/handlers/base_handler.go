package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/padhoai/backend/internal/middleware"
	"github.com/padhoai/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps a service error to its status code.
// Unexpected errors are logged and hidden behind a generic message.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrRequiredFields),
		errors.Is(err, models.ErrInvalidLanguage),
		errors.Is(err, models.ErrInvalidLevel),
		errors.Is(err, models.ErrInvalidAge),
		errors.Is(err, models.ErrInvalidView),
		errors.Is(err, models.ErrEmptyMessage):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrProfileNotFound),
		errors.Is(err, models.ErrMessageNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrChatClosed):
		h.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrSpeechUnsupported):
		h.RespondError(w, http.StatusNotImplemented, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.Logger.Info("request abandoned", zap.String("request_id", middleware.GetRequestID(r.Context())), zap.Error(err))
		h.RespondError(w, http.StatusRequestTimeout, "request cancelled")
	default:
		h.Logger.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// deviceID returns the device resolved by the device middleware, answering 401 when there is none
func (h *BaseHandler) deviceID(w http.ResponseWriter, r *http.Request) (string, bool) {
	deviceID, ok := middleware.GetDeviceID(r.Context())
	if !ok || deviceID == "" {
		h.RespondError(w, http.StatusUnauthorized, "device token required")
		return "", false
	}
	return deviceID, true
}

// decodeJSON reads the request body into dst, answering 400 on malformed input
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.Logger.Debug("invalid request body", zap.String("path", r.URL.Path), zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
