// Package webhook provides a lightweight client for the workflow-automation
// webhook that receives chat messages and contact form submissions.
// Uses raw HTTP calls (no SDK); the endpoint's response shape is not ours to define.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Payload sources identify which widget produced a request.
const (
	SourceChat        = "portfolio_chat"
	SourceContactForm = "portfolio_contact_form"
)

// maxResponseBytes caps how much of a reply body is read. Larger replies fail
// with ErrResponseTooLarge rather than being cut short.
const maxResponseBytes = 1 << 20

// ChatPayload is the JSON body posted for each chat message.
type ChatPayload struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // RFC 3339, UTC, millisecond precision
	Source    string `json:"source"`
	UserAgent string `json:"userAgent"`
	URL       string `json:"url"`
}

// ContactPayload is the JSON body posted for a contact form submission.
type ContactPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// Client is the automation webhook client interface.
type Client interface {
	// PostChat sends one chat message and returns the raw response body on 2xx.
	PostChat(ctx context.Context, payload ChatPayload) (string, error)
	// PostContact sends a contact submission. Only the status code is consulted.
	PostContact(ctx context.Context, payload ContactPayload) error
}

// RealClient posts JSON to the configured webhook URLs.
type RealClient struct {
	ChatURL    string
	ContactURL string
	httpClient *http.Client
}

// NewClient creates a RealClient. A zero timeout means requests never time out.
func NewClient(chatURL, contactURL string, timeout time.Duration) *RealClient {
	return &RealClient{
		ChatURL:    chatURL,
		ContactURL: contactURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newLoggingTransport(nil, nil),
		},
	}
}

var (
	// ErrNotConfigured is returned when the target webhook URL is empty.
	ErrNotConfigured = errors.New("webhook: not configured")
	// ErrResponseTooLarge is returned when a 2xx reply exceeds maxResponseBytes.
	ErrResponseTooLarge = errors.New("webhook: response too large")
)

// StatusError reports a non-2xx webhook response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook: unexpected status %d", e.StatusCode)
}

// FormatTimestamp renders t the way the webhook expects (ISO-8601, UTC, ms).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// PostChat posts a chat payload and returns the response body text.
func (c *RealClient) PostChat(ctx context.Context, payload ChatPayload) (string, error) {
	if c.ChatURL == "" {
		return "", ErrNotConfigured
	}
	body, err := c.post(ctx, c.ChatURL, payload)
	if err != nil {
		return "", fmt.Errorf("webhook chat: %w", err)
	}
	return body, nil
}

// PostContact posts a contact payload. The response body is ignored.
func (c *RealClient) PostContact(ctx context.Context, payload ContactPayload) error {
	if c.ContactURL == "" {
		return ErrNotConfigured
	}
	if _, err := c.post(ctx, c.ContactURL, payload); err != nil {
		return fmt.Errorf("webhook contact: %w", err)
	}
	return nil
}

func (c *RealClient) post(ctx context.Context, endpoint string, payload any) (string, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(data[:min(len(data), maxResponseBytes)])}
	}
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if len(data) > maxResponseBytes {
		return "", ErrResponseTooLarge
	}
	return string(data), nil
}
