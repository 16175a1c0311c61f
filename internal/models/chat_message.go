package models

import "time"

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage represents a single message in the tutor chat
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// SendMessageRequest represents a message typed into the tutor chat
type SendMessageRequest struct {
	Content string `json:"content"`
}

// SendMessageResponse holds the user message and the tutor answer it produced
type SendMessageResponse struct {
	Question ChatMessage `json:"question"`
	Answer   ChatMessage `json:"answer"`
}

// SpeechResponse holds the audio location for a spoken tutor message
type SpeechResponse struct {
	MessageID string `json:"messageId"`
	AudioURL  string `json:"audioUrl"`
}
