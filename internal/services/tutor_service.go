package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/padhoai/backend/internal/models"
	"github.com/padhoai/backend/internal/tutor"
	"go.uber.org/zap"
)

// SpeechProvider is the interface that wraps the text-to-speech method used for tutor answers
type SpeechProvider interface {
	// Method AudioURL returns the URL of an audio rendition of "text" in the given language.
	//
	// If speech is disabled, models.ErrSpeechUnsupported is returned.
	AudioURL(text string, language models.Language) (string, error)
}

// chatSession is the message list of one device's open chat
type chatSession struct {
	messages []models.ChatMessage
	lastSeen time.Time
}

// tutorService implements TutorService
type tutorService struct {
	profileRepo ProfileRepository
	views       ViewRegistry
	speech      SpeechProvider
	delay       time.Duration
	logger      *zap.Logger
	now         func() time.Time
	newID       func() string

	mu    sync.Mutex
	chats map[string]*chatSession
}

// NewTutorService creates a new tutor service.
//
// "delay" is the artificial latency before every tutor answer.
func NewTutorService(profileRepo ProfileRepository, views ViewRegistry, speech SpeechProvider, delay time.Duration, logger *zap.Logger) *tutorService {
	return &tutorService{
		profileRepo: profileRepo,
		views:       views,
		speech:      speech,
		delay:       delay,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
		chats:       make(map[string]*chatSession),
	}
}

// History returns the messages of the device's open chat, starting with the greeting
func (s *tutorService) History(ctx context.Context, deviceID string) ([]models.ChatMessage, error) {
	session, err := s.openSession(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), session.messages...), nil
}

// Send appends the question, waits the tutor delay and appends the canned answer.
//
// A question that is blank after trimming is rejected and nothing is appended.
// If the chat is left while the answer is pending, the answer is dropped.
// If ctx ends before the answer, the question is withdrawn from the history.
func (s *tutorService) Send(ctx context.Context, deviceID string, req *models.SendMessageRequest) (*models.SendMessageResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, models.ErrEmptyMessage
	}

	session, err := s.openSession(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	question := models.ChatMessage{
		ID:        s.newID(),
		Content:   req.Content,
		Sender:    models.SenderUser,
		Timestamp: s.now().UTC(),
	}
	s.mu.Lock()
	session.messages = append(session.messages, question)
	session.lastSeen = s.now()
	s.mu.Unlock()

	if err := simulateLatency(ctx, s.delay); err != nil {
		s.withdraw(deviceID, session, question.ID)
		return nil, err
	}

	answer := models.ChatMessage{
		ID:        s.newID(),
		Content:   tutor.Respond(req.Content),
		Sender:    models.SenderAI,
		Timestamp: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chats[deviceID] != session {
		return nil, models.ErrChatClosed
	}
	session.messages = append(session.messages, answer)
	session.lastSeen = s.now()

	s.logger.Debug("tutor answered", zap.String("deviceId", deviceID), zap.String("category", string(tutor.Classify(req.Content))))
	return &models.SendMessageResponse{Question: question, Answer: answer}, nil
}

// withdraw removes an unanswered question from the session, if the session is still the device's open chat
func (s *tutorService) withdraw(deviceID string, session *chatSession, messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chats[deviceID] != session {
		return
	}
	session.messages = slices.DeleteFunc(session.messages, func(msg models.ChatMessage) bool {
		return msg.ID == messageID
	})
}

// Suggestions returns the quick questions offered under an empty chat
func (s *tutorService) Suggestions() []string {
	return append([]string(nil), tutor.Suggestions...)
}

// Speech returns an audio URL for a tutor message of the device's open chat, in the learner's language
func (s *tutorService) Speech(ctx context.Context, deviceID, messageID string) (*models.SpeechResponse, error) {
	session, err := s.openSession(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	var text string
	s.mu.Lock()
	for _, msg := range session.messages {
		if msg.ID == messageID && msg.Sender == models.SenderAI {
			text = msg.Content
			break
		}
	}
	s.mu.Unlock()
	if text == "" {
		return nil, fmt.Errorf("%w: %s", models.ErrMessageNotFound, messageID)
	}

	profile, err := s.profileRepo.Load(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	audioURL, err := s.speech.AudioURL(text, profile.Language)
	if err != nil {
		return nil, err
	}
	return &models.SpeechResponse{MessageID: messageID, AudioURL: audioURL}, nil
}

// Discard drops the chat history of a device. It is registered as the leave hook of the chat view.
func (s *tutorService) Discard(deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chats, deviceID)
}

// EvictIdle drops chat histories untouched for longer than maxIdle and returns how many were dropped
func (s *tutorService) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	evicted := 0
	for deviceID, session := range s.chats {
		if session.lastSeen.Before(cutoff) {
			delete(s.chats, deviceID)
			evicted++
		}
	}
	return evicted
}

// openSession returns the device's chat, creating it with the greeting on first use.
// The device must be on the chat view and have a stored profile.
func (s *tutorService) openSession(ctx context.Context, deviceID string) (*chatSession, error) {
	probe := profileProbe(ctx, s.profileRepo, s.logger, deviceID)
	if s.views.Current(deviceID, probe) != models.ViewChat {
		return nil, models.ErrChatClosed
	}

	s.mu.Lock()
	session, ok := s.chats[deviceID]
	if ok {
		session.lastSeen = s.now()
		s.mu.Unlock()
		return session, nil
	}
	s.mu.Unlock()

	profile, err := s.profileRepo.Load(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if session, ok := s.chats[deviceID]; ok {
		s.mu.Unlock()
		return session, nil
	}
	session = &chatSession{
		messages: []models.ChatMessage{{
			ID:        s.newID(),
			Content:   tutor.Greeting(profile.Name),
			Sender:    models.SenderAI,
			Timestamp: s.now().UTC(),
		}},
		lastSeen: s.now(),
	}
	s.chats[deviceID] = session
	s.mu.Unlock()

	// The device may have left the chat before the session existed, in which case
	// the leave hook found nothing to discard.
	if s.views.Current(deviceID, probe) != models.ViewChat {
		s.mu.Lock()
		if s.chats[deviceID] == session {
			delete(s.chats, deviceID)
		}
		s.mu.Unlock()
		return nil, models.ErrChatClosed
	}
	return session, nil
}
