package service

import (
	"context"

	"github.com/portfolio/messaging/pkg/webhook"
)

// ---------------------------------------------------------------------------
// mockWebhookClient — stub for testing
// ---------------------------------------------------------------------------

type mockWebhookClient struct {
	postChatFunc    func(ctx context.Context, payload webhook.ChatPayload) (string, error)
	postContactFunc func(ctx context.Context, payload webhook.ContactPayload) error
}

func (m *mockWebhookClient) PostChat(ctx context.Context, payload webhook.ChatPayload) (string, error) {
	if m.postChatFunc != nil {
		return m.postChatFunc(ctx, payload)
	}
	return "", nil
}

func (m *mockWebhookClient) PostContact(ctx context.Context, payload webhook.ContactPayload) error {
	if m.postContactFunc != nil {
		return m.postContactFunc(ctx, payload)
	}
	return nil
}
