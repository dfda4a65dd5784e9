package service

import "context"

// ChatService relays chat messages to the automation webhook.
type ChatService interface {
	// Relay sends text and returns the reply to display. A non-nil error means
	// the webhook could not be reached or answered with a non-2xx status.
	Relay(ctx context.Context, text string) (string, error)
}
