package model

import (
	"time"

	"github.com/google/uuid"
)

// WelcomeText is the bot message every conversation starts with.
const WelcomeText = "Hi! 👋 I'm here to help. Send me a message and I'll get back to you soon!"

// ChatMessage is one entry of the chat conversation log.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsUser    bool      `json:"is_user"`
}

// NewChatMessage builds a message with a time-ordered UUIDv7 id.
func NewChatMessage(text string, at time.Time, isUser bool) *ChatMessage {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &ChatMessage{
		ID:        id.String(),
		Text:      text,
		Timestamp: at,
		IsUser:    isUser,
	}
}

// FormatTime renders the local time of day with 2-digit hour and minute.
func (m *ChatMessage) FormatTime() string {
	return m.Timestamp.Local().Format("15:04")
}
