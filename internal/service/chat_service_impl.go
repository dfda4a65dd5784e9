package service

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/portfolio/messaging/pkg/webhook"
)

// chatServiceImpl is the production implementation of ChatService.
type chatServiceImpl struct {
	client    webhook.Client
	clock     clockwork.Clock
	userAgent string
	pageURL   string
}

// NewChatService creates a ChatService that posts through client. userAgent
// and pageURL are reported with every message.
func NewChatService(client webhook.Client, clock clockwork.Clock, userAgent, pageURL string) ChatService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &chatServiceImpl{
		client:    client,
		clock:     clock,
		userAgent: userAgent,
		pageURL:   pageURL,
	}
}

// Relay posts text with the current timestamp and normalizes the reply body.
func (s *chatServiceImpl) Relay(ctx context.Context, text string) (string, error) {
	body, err := s.client.PostChat(ctx, webhook.ChatPayload{
		Message:   text,
		Timestamp: webhook.FormatTimestamp(s.clock.Now()),
		Source:    webhook.SourceChat,
		UserAgent: s.userAgent,
		URL:       s.pageURL,
	})
	if err != nil {
		return "", err
	}
	return webhook.ExtractReply(body), nil
}
