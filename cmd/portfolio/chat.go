package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/portfolio/messaging/internal/model"
	"github.com/portfolio/messaging/internal/repository"
	"github.com/portfolio/messaging/internal/service"
	"github.com/portfolio/messaging/internal/widget"
)

const chatHelp = `Quick Chat. Type a message and press Enter to send.
End a line with \ to continue on the next line.
Commands: /open /close /min /quit`

// terminalChatView prints the conversation while the window is open.
type terminalChatView struct {
	mu      sync.Mutex
	out     io.Writer
	visible atomic.Bool
	focused atomic.Bool
}

func newTerminalChatView(out io.Writer) *terminalChatView {
	return &terminalChatView{out: out}
}

func (v *terminalChatView) ScrollToBottom(msg model.ChatMessage) {
	if !v.visible.Load() {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	printMessage(v.out, msg)
}

func (v *terminalChatView) SetTyping(typing bool) {
	if !typing || !v.visible.Load() {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out, "  ...")
}

// FocusInput fires before the transcript is reprinted, so the hint is deferred to show.
func (v *terminalChatView) FocusInput() {
	v.focused.Store(true)
}

// show makes the view visible and reprints the transcript.
func (v *terminalChatView) show(msgs []model.ChatMessage) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible.Store(true)
	fmt.Fprintln(v.out, "── Quick Chat · Usually responds quickly ──")
	for _, m := range msgs {
		printMessage(v.out, m)
	}
	if v.focused.Swap(false) {
		fmt.Fprintln(v.out, "(type your message...)")
	}
}

func (v *terminalChatView) hide() {
	v.visible.Store(false)
}

func (v *terminalChatView) println(a ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out, a...)
}

func printMessage(out io.Writer, m model.ChatMessage) {
	who := "bot"
	if m.IsUser {
		who = "you"
	}
	fmt.Fprintf(out, "[%s][%s] %s\n", who, m.FormatTime(), m.Text)
}

func (a *app) runChat(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	fs.SetOutput(a.out)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	view := newTerminalChatView(a.out)
	svc := service.NewChatService(a.client, nil, a.cfg.UserAgent, a.cfg.PageURL)
	w, err := widget.NewChatWidget(ctx, svc, repository.NewMemoryConversationRepository(), widget.WithChatView(view))
	if err != nil {
		return err
	}

	view.println(chatHelp)
	a.syncChatView(ctx, w, view, w.Open)

	lines := make(chan string)
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stopped:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return a.drainChat(ctx, w)
			}
			if quit := a.handleChatLine(ctx, w, view, line); quit {
				return a.drainChat(ctx, w)
			}
		}
	}
}

// handleChatLine applies one line of terminal input. It reports whether the user asked to quit.
func (a *app) handleChatLine(ctx context.Context, w *widget.ChatWidget, view *terminalChatView, line string) bool {
	switch strings.TrimSpace(line) {
	case "/quit":
		return true
	case "/open":
		a.syncChatView(ctx, w, view, w.Open)
		return false
	case "/close":
		a.syncChatView(ctx, w, view, w.Close)
		return false
	case "/min":
		a.syncChatView(ctx, w, view, w.ToggleMinimize)
		return false
	}

	if w.State() != widget.ChatOpen {
		view.println("(chat is " + w.State().String() + "; /open to continue)")
		return false
	}
	if w.IsLoading() {
		view.println("(still waiting for a reply)")
		return false
	}

	// A trailing backslash stands in for Shift+Enter.
	if strings.HasSuffix(line, `\`) {
		w.SetInput(w.Input() + strings.TrimSuffix(line, `\`))
		w.HandleKey(ctx, widget.KeyEvent{Key: widget.KeyEnter, Shift: true})
		return false
	}
	w.SetInput(w.Input() + line)
	w.HandleKey(ctx, widget.KeyEvent{Key: widget.KeyEnter})
	return false
}

// syncChatView runs a window transition and shows or hides the transcript to match.
func (a *app) syncChatView(ctx context.Context, w *widget.ChatWidget, view *terminalChatView, transition func()) {
	before := w.State()
	transition()
	after := w.State()
	if before == after {
		return
	}
	switch after {
	case widget.ChatOpen:
		msgs, err := w.Messages(ctx)
		if err != nil {
			view.println("(could not load conversation: " + err.Error() + ")")
			return
		}
		view.show(msgs)
	case widget.ChatMinimized:
		view.hide()
		view.println("(chat minimized; /min to restore)")
	default:
		view.hide()
		view.println("(chat closed; /open to reopen)")
	}
}

// drainChat waits for pending replies so they are not lost on exit.
func (a *app) drainChat(ctx context.Context, w *widget.ChatWidget) error {
	done := make(chan struct{})
	go func() {
		w.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
	return nil
}
