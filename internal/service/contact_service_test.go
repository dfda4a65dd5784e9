package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/portfolio/messaging/internal/model"
	"github.com/portfolio/messaging/pkg/webhook"
)

func TestContactService_Submit_BuildsPayload(t *testing.T) {
	var captured webhook.ContactPayload
	mock := &mockWebhookClient{
		postContactFunc: func(ctx context.Context, payload webhook.ContactPayload) error {
			captured = payload
			return nil
		},
	}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	svc := NewContactService(mock, clock)

	err := svc.Submit(context.Background(), model.ContactFields{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "ai-automation",
		Message: "Hello!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := webhook.ContactPayload{
		Name:      "Alice",
		Email:     "alice@example.com",
		Subject:   "ai-automation",
		Message:   "Hello!",
		Timestamp: "2024-03-01T09:00:00.000Z",
		Source:    "portfolio_contact_form",
	}
	if captured != want {
		t.Errorf("expected payload %+v, got %+v", want, captured)
	}
}

func TestContactService_Submit_PropagatesError(t *testing.T) {
	mock := &mockWebhookClient{
		postContactFunc: func(ctx context.Context, payload webhook.ContactPayload) error {
			return errors.New("connection refused")
		},
	}
	svc := NewContactService(mock, nil)

	if err := svc.Submit(context.Background(), model.ContactFields{}); err == nil {
		t.Error("expected error to be propagated")
	}
}
