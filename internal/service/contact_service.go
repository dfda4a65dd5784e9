package service

import (
	"context"

	"github.com/portfolio/messaging/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit forwards the fields to the automation webhook.
	Submit(ctx context.Context, fields model.ContactFields) error
}
