package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/portfolio/messaging/internal/model"
	"github.com/portfolio/messaging/internal/reveal"
	"github.com/portfolio/messaging/internal/service"
)

// ContactAlertText is shown to the visitor when a submission fails.
const ContactAlertText = "Error sending message. Please try again or contact me directly."

// DefaultSubmittedReset is how long the form shows the sent confirmation.
const DefaultSubmittedReset = 3 * time.Second

// Submit button labels.
const (
	LabelSend    = "Send message"
	LabelSending = "Sending..."
	LabelSent    = "Message Sent!"
)

var (
	ErrSubmitInProgress = errors.New("contact: submission already in progress")
	ErrMissingField     = errors.New("contact: required field is empty")
	ErrUnknownField     = errors.New("contact: unknown field")
	ErrSubmitFailed     = errors.New("contact: submission failed")
)

// contactReveals are the contact section's reveal animations.
var contactReveals = []reveal.Target{
	{Selector: ".contact-title", Options: []reveal.Option{
		reveal.WithDelay(200 * time.Millisecond), reveal.WithDistance("50px"),
		reveal.WithDuration(1000 * time.Millisecond), reveal.WithOrigin(reveal.OriginTop),
	}},
	{Selector: ".contact-info", Options: []reveal.Option{
		reveal.WithDelay(400 * time.Millisecond), reveal.WithDistance("60px"),
		reveal.WithDuration(1200 * time.Millisecond), reveal.WithOrigin(reveal.OriginLeft),
	}},
	{Selector: ".contact-form", Options: []reveal.Option{
		reveal.WithDelay(600 * time.Millisecond), reveal.WithDistance("60px"),
		reveal.WithDuration(1200 * time.Millisecond), reveal.WithOrigin(reveal.OriginRight),
	}},
}

// Alerter shows a blocking message to the visitor.
type Alerter interface {
	Alert(message string)
}

type nopAlerter struct{}

func (nopAlerter) Alert(string) {}

// ContactForm collects an inquiry and submits it once per click.
type ContactForm struct {
	svc        service.ContactService
	clock      clockwork.Clock
	alerter    Alerter
	logger     *slog.Logger
	resetAfter time.Duration

	mu         sync.Mutex
	fields     model.ContactFields
	loading    bool
	submitted  bool
	resetTimer clockwork.Timer
	resetGen   uint64
}

// ContactOption configures a ContactForm.
type ContactOption func(*ContactForm)

// WithContactClock sets the clock that schedules the confirmation reset.
func WithContactClock(c clockwork.Clock) ContactOption { return func(f *ContactForm) { f.clock = c } }

// WithAlerter sets where failure alerts are shown.
func WithAlerter(a Alerter) ContactOption { return func(f *ContactForm) { f.alerter = a } }

// WithSubmittedReset overrides DefaultSubmittedReset.
func WithSubmittedReset(d time.Duration) ContactOption {
	return func(f *ContactForm) { f.resetAfter = d }
}

// WithContactLogger sets the logger for diagnostics.
func WithContactLogger(l *slog.Logger) ContactOption { return func(f *ContactForm) { f.logger = l } }

// NewContactForm creates an empty form.
func NewContactForm(svc service.ContactService, opts ...ContactOption) *ContactForm {
	f := &ContactForm{
		svc:        svc,
		clock:      clockwork.NewRealClock(),
		alerter:    nopAlerter{},
		logger:     slog.Default(),
		resetAfter: DefaultSubmittedReset,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// UpdateField sets one field by its input name.
func (f *ContactForm) UpdateField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch name {
	case model.FieldName:
		f.fields.Name = value
	case model.FieldEmail:
		f.fields.Email = value
	case model.FieldSubject:
		f.fields.Subject = value
	case model.FieldMessage:
		f.fields.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Fields returns the current field values.
func (f *ContactForm) Fields() model.ContactFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *ContactForm) IsLoading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *ContactForm) IsSubmitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// ButtonDisabled reports whether the submit button is disabled.
func (f *ContactForm) ButtonDisabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading || f.submitted
}

// ButtonLabel returns the submit button's text for the current state.
func (f *ContactForm) ButtonLabel() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case f.loading:
		return LabelSending
	case f.submitted:
		return LabelSent
	default:
		return LabelSend
	}
}

// Submit sends the form to the webhook and blocks until it answers.
//
// A call made while another is in flight returns ErrSubmitInProgress without
// sending. On success the fields are cleared and IsSubmitted stays true for
// the reset window. On failure the visitor is alerted and the fields are kept
// for a retry.
func (f *ContactForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if missing := f.fields.Missing(); len(missing) > 0 {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	fields := f.fields
	f.loading = true
	f.mu.Unlock()

	if err := f.svc.Submit(ctx, fields); err != nil {
		f.logger.Error("error sending form data", "err", err)
		f.alerter.Alert(ContactAlertText)
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = true
	f.fields = model.ContactFields{}
	if f.resetTimer != nil {
		f.resetTimer.Stop()
	}
	f.resetGen++
	gen := f.resetGen
	f.resetTimer = f.clock.AfterFunc(f.resetAfter, func() { f.clearSubmitted(gen) })
	f.loading = false
	f.logger.Info("contact form submitted", "subject", fields.Subject)
	return nil
}

// clearSubmitted ends the confirmation window unless a newer submission restarted it.
func (f *ContactForm) clearSubmitted(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.resetGen {
		return
	}
	f.submitted = false
	f.resetTimer = nil
}

// Mount registers the contact section's reveals. The returned dispose cleans
// them up and ends a pending confirmation window, so a remounted form starts
// with the send button enabled.
func (f *ContactForm) Mount(registry *reveal.Registry) (dispose func()) {
	cleanup := registry.RegisterAll(contactReveals)
	return func() {
		cleanup()
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.resetTimer != nil {
			f.resetTimer.Stop()
			f.resetTimer = nil
		}
		f.resetGen++
		f.submitted = false
	}
}
