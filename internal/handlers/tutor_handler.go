package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/padhoai/backend/internal/models"
	"go.uber.org/zap"
)

// TutorService is the interface that wraps methods of the tutor chat.
type TutorService interface {
	// Method History returns the messages of the open chat, starting with the tutor's greeting.
	//
	// If the device is not on the chat view, models.ErrChatClosed is returned.
	History(ctx context.Context, deviceID string) ([]models.ChatMessage, error)
	// Method Send appends the question and, after the tutor delay, the canned answer.
	//
	// If the content is blank, models.ErrEmptyMessage is returned and nothing is appended.
	// If the chat is closed before the answer is ready, models.ErrChatClosed is returned.
	Send(ctx context.Context, deviceID string, req *models.SendMessageRequest) (*models.SendMessageResponse, error)
	// Method Suggestions returns the quick questions offered under an empty chat.
	Suggestions() []string
	// Method Speech returns an audio URL for a tutor message.
	//
	// If speech is disabled, models.ErrSpeechUnsupported is returned; clients should skip playback silently.
	Speech(ctx context.Context, deviceID, messageID string) (*models.SpeechResponse, error)
}

// TutorHandler handles tutor chat HTTP requests
type TutorHandler struct {
	BaseHandler
	tutorService TutorService
}

// NewTutorHandler creates a new tutor handler
func NewTutorHandler(tutorService TutorService, logger *zap.Logger) *TutorHandler {
	return &TutorHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		tutorService: tutorService,
	}
}

// RegisterRoutes registers all tutor handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *TutorHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tutor", func(r chi.Router) {
		r.Get("/messages", h.History)
		r.Post("/messages", h.Send)
		r.Get("/suggestions", h.Suggestions)
		r.Get("/messages/{id}/speech", h.Speech)
	})
}

// History handles GET /tutor/messages
// @Summary Get the chat history
// @Tags tutor
// @Produce json
// @Success 200 {array} models.ChatMessage
// @Failure 409 {object} map[string]string "Chat is not open"
// @Router /tutor/messages [get]
func (h *TutorHandler) History(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	messages, err := h.tutorService.History(r.Context(), deviceID)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, messages)
}

// Send handles POST /tutor/messages
// @Summary Ask the tutor
// @Description Appends the question and returns it with the tutor's answer once the simulated thinking time has passed.
// @Tags tutor
// @Accept json
// @Produce json
// @Param request body models.SendMessageRequest true "Question"
// @Success 200 {object} models.SendMessageResponse
// @Failure 400 {object} map[string]string "Blank message"
// @Failure 409 {object} map[string]string "Chat is not open"
// @Router /tutor/messages [post]
func (h *TutorHandler) Send(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.tutorService.Send(r.Context(), deviceID, &req)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Suggestions handles GET /tutor/suggestions
// @Summary Get quick questions
// @Tags tutor
// @Produce json
// @Success 200 {array} string
// @Router /tutor/suggestions [get]
func (h *TutorHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.tutorService.Suggestions())
}

// Speech handles GET /tutor/messages/{id}/speech
// @Summary Get speech for a tutor message
// @Tags tutor
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} models.SpeechResponse
// @Failure 404 {object} map[string]string "Message not found"
// @Failure 501 {object} map[string]string "Speech is disabled"
// @Router /tutor/messages/{id}/speech [get]
func (h *TutorHandler) Speech(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	resp, err := h.tutorService.Speech(r.Context(), deviceID, chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
