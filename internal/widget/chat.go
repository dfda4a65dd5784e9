// Package widget holds the state of the page's two messaging surfaces: the
// floating Quick Chat and the contact form.
package widget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/portfolio/messaging/internal/model"
	"github.com/portfolio/messaging/internal/repository"
	"github.com/portfolio/messaging/internal/service"
)

// ChatErrorText replaces the bot reply when the webhook call fails.
const ChatErrorText = "❌ Sorry, there was an error processing your message. Please try again or contact me directly."

// KeyEnter is the key name that submits the chat input.
const KeyEnter = "Enter"

// KeyEvent is a key press in the chat input.
type KeyEvent struct {
	Key   string
	Shift bool
}

// ChatState is the visibility of the chat window.
type ChatState int

const (
	ChatClosed ChatState = iota
	ChatOpen
	ChatMinimized
)

func (s ChatState) String() string {
	switch s {
	case ChatOpen:
		return "open"
	case ChatMinimized:
		return "minimized"
	default:
		return "closed"
	}
}

// ChatView receives the widget's view side effects. Methods are called
// without the widget lock held and may be called from any goroutine.
type ChatView interface {
	// ScrollToBottom is called after every append with the appended message.
	ScrollToBottom(msg model.ChatMessage)
	// SetTyping shows or hides the typing indicator.
	SetTyping(typing bool)
	// FocusInput is called when the window becomes open and not minimized.
	FocusInput()
}

type nopChatView struct{}

func (nopChatView) ScrollToBottom(model.ChatMessage) {}
func (nopChatView) SetTyping(bool)                   {}
func (nopChatView) FocusInput()                      {}

// ChatWidget is the Quick Chat: a session-scoped conversation relayed to the
// automation webhook one message at a time.
type ChatWidget struct {
	svc    service.ChatService
	repo   repository.ConversationRepository
	clock  clockwork.Clock
	view   ChatView
	logger *slog.Logger

	mu        sync.Mutex
	open      bool
	minimized bool
	input     string
	loading   bool
	latestReq uint64 // id of the most recently issued relay

	inflight sync.WaitGroup
}

// ChatOption configures a ChatWidget.
type ChatOption func(*ChatWidget)

// WithChatClock sets the clock used for message timestamps.
func WithChatClock(c clockwork.Clock) ChatOption { return func(w *ChatWidget) { w.clock = c } }

// WithChatView sets the view that receives scroll, typing and focus updates.
func WithChatView(v ChatView) ChatOption { return func(w *ChatWidget) { w.view = v } }

// WithChatLogger sets the logger for diagnostics.
func WithChatLogger(l *slog.Logger) ChatOption { return func(w *ChatWidget) { w.logger = l } }

// NewChatWidget creates a closed chat widget. An empty repo is seeded with the welcome message.
func NewChatWidget(ctx context.Context, svc service.ChatService, repo repository.ConversationRepository, opts ...ChatOption) (*ChatWidget, error) {
	w := &ChatWidget{
		svc:    svc,
		repo:   repo,
		clock:  clockwork.NewRealClock(),
		view:   nopChatView{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	n, err := repo.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}
	if n == 0 {
		welcome := model.NewChatMessage(model.WelcomeText, w.clock.Now(), false)
		if err := repo.Append(ctx, welcome); err != nil {
			return nil, fmt.Errorf("seed welcome message: %w", err)
		}
	}
	return w, nil
}

// State reports whether the window is closed, open or minimized.
func (w *ChatWidget) State() ChatState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *ChatWidget) stateLocked() ChatState {
	switch {
	case !w.open:
		return ChatClosed
	case w.minimized:
		return ChatMinimized
	default:
		return ChatOpen
	}
}

// Open shows the chat window.
func (w *ChatWidget) Open() {
	w.transition(func() { w.open = true })
}

// Close hides the chat window. In-flight relays keep running.
func (w *ChatWidget) Close() {
	w.transition(func() { w.open = false })
}

// ToggleMinimize collapses or restores an open window. It does nothing while closed.
func (w *ChatWidget) ToggleMinimize() {
	w.transition(func() {
		if w.open {
			w.minimized = !w.minimized
		}
	})
}

// transition applies change and focuses the input when it made the window usable.
func (w *ChatWidget) transition(change func()) {
	w.mu.Lock()
	before := w.stateLocked()
	change()
	after := w.stateLocked()
	w.mu.Unlock()

	if before != ChatOpen && after == ChatOpen {
		w.view.FocusInput()
	}
}

// SetInput replaces the contents of the text field.
func (w *ChatWidget) SetInput(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input = text
}

// Input returns the contents of the text field.
func (w *ChatWidget) Input() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// IsLoading reports whether the latest relay is still in flight.
func (w *ChatWidget) IsLoading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// Messages returns the conversation log.
func (w *ChatWidget) Messages(ctx context.Context) ([]model.ChatMessage, error) {
	return w.repo.List(ctx)
}

// HandleKey processes a key press in the text field. Enter without Shift
// sends the input; Shift+Enter adds a line break. The field is disabled
// while a reply is pending, so keys are ignored then. It reports whether a
// message was sent.
func (w *ChatWidget) HandleKey(ctx context.Context, ev KeyEvent) bool {
	if ev.Key != KeyEnter {
		return false
	}

	w.mu.Lock()
	if w.loading {
		w.mu.Unlock()
		return false
	}
	if ev.Shift {
		w.input += "\n"
		w.mu.Unlock()
		return false
	}
	text := w.input
	w.mu.Unlock()

	return w.SendMessage(ctx, text)
}

// Submit sends the input as the send button does. The button is disabled
// while a reply is pending.
func (w *ChatWidget) Submit(ctx context.Context) bool {
	w.mu.Lock()
	if w.loading {
		w.mu.Unlock()
		return false
	}
	text := w.input
	w.mu.Unlock()

	return w.SendMessage(ctx, text)
}

// SendMessage appends text as a visitor message and relays it in the
// background. Blank text is ignored. It returns once the visitor message is
// in the log; use Wait to block until the reply arrives.
//
// Each call gets a request id. Only the reply to the most recent request is
// appended and clears the loading flag; earlier replies that arrive later are
// discarded so the conversation never shows a reply out of order.
func (w *ChatWidget) SendMessage(ctx context.Context, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	w.mu.Lock()
	msg := model.NewChatMessage(trimmed, w.clock.Now(), true)
	if err := w.repo.Append(ctx, msg); err != nil {
		w.mu.Unlock()
		w.logger.Error("append visitor message", "err", err)
		return false
	}
	w.input = ""
	w.latestReq++
	reqID := w.latestReq
	w.loading = true
	w.inflight.Add(1)
	w.mu.Unlock()

	w.view.ScrollToBottom(*msg)
	w.view.SetTyping(true)

	go w.relay(ctx, reqID, trimmed)
	return true
}

func (w *ChatWidget) relay(ctx context.Context, reqID uint64, text string) {
	defer w.inflight.Done()

	reply, err := w.svc.Relay(ctx, text)
	if err != nil {
		w.logger.Error("error sending message", "request_id", reqID, "err", err)
		reply = ChatErrorText
	}

	w.mu.Lock()
	if reqID != w.latestReq {
		latest := w.latestReq
		w.mu.Unlock()
		w.logger.Warn("discarding stale chat reply", "request_id", reqID, "latest_request_id", latest)
		return
	}
	bot := model.NewChatMessage(reply, w.clock.Now(), false)
	// The reply is kept even if the caller's context ended while waiting.
	appendErr := w.repo.Append(context.WithoutCancel(ctx), bot)
	w.loading = false
	w.mu.Unlock()

	w.view.SetTyping(false)
	if appendErr != nil {
		w.logger.Error("append bot message", "request_id", reqID, "err", appendErr)
		return
	}
	w.view.ScrollToBottom(*bot)
}

// Wait blocks until every relay issued so far has completed.
func (w *ChatWidget) Wait() {
	w.inflight.Wait()
}
