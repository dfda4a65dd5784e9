package service

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/portfolio/messaging/internal/model"
	"github.com/portfolio/messaging/pkg/webhook"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	client webhook.Client
	clock  clockwork.Clock
}

// NewContactService creates a ContactService backed by the given webhook client.
func NewContactService(client webhook.Client, clock clockwork.Clock) ContactService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &contactServiceImpl{client: client, clock: clock}
}

// Submit posts the fields as-is, stamped with the current time and the form source.
func (s *contactServiceImpl) Submit(ctx context.Context, fields model.ContactFields) error {
	return s.client.PostContact(ctx, webhook.ContactPayload{
		Name:      fields.Name,
		Email:     fields.Email,
		Subject:   fields.Subject,
		Message:   fields.Message,
		Timestamp: webhook.FormatTimestamp(s.clock.Now()),
		Source:    webhook.SourceContactForm,
	})
}
