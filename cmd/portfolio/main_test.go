package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/portfolio/messaging/internal/config"
	"github.com/portfolio/messaging/internal/model"
	"github.com/portfolio/messaging/internal/repository"
	"github.com/portfolio/messaging/internal/reveal"
	"github.com/portfolio/messaging/internal/service"
	"github.com/portfolio/messaging/internal/site"
	"github.com/portfolio/messaging/pkg/webhook"
)

func emptyEnv(string) string { return "" }

// newTestApp builds an app whose webhooks point at handler.
func newTestApp(t *testing.T, handler http.HandlerFunc, input string) (*app, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.FromEnv(emptyEnv)
	cfg.ChatWebhookURL = srv.URL + "/chat"
	cfg.ContactWebhookURL = srv.URL + "/contact"

	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &app{
		cfg:      cfg,
		client:   webhook.NewClient(cfg.ChatWebhookURL, cfg.ContactWebhookURL, 0),
		projects: service.NewProjectService(repository.NewStaticCatalogRepository()),
		registry: reveal.NewRegistry(reveal.NewLogEngine(logger)),
		in:       strings.NewReader(input),
		out:      out,
	}, out
}

func notCalled(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected webhook call to %s", r.URL.Path)
	}
}

func TestRunRequiresCommand(t *testing.T) {
	a, _ := newTestApp(t, notCalled(t), "")
	if err := a.run(context.Background(), nil); !errors.Is(err, errUsage) {
		t.Fatalf("expected errUsage, got %v", err)
	}
	if err := a.run(context.Background(), []string{"dance"}); !errors.Is(err, errUsage) {
		t.Fatalf("expected errUsage for unknown command, got %v", err)
	}
}

func TestChatSendsAndPrintsReply(t *testing.T) {
	var mu sync.Mutex
	var got []webhook.ChatPayload
	a, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		var p webhook.ChatPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decode: %v", err)
		}
		mu.Lock()
		got = append(got, p)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Thanks, I'll get back to you"}`))
	}, "hello\\\nthere\n/quit\n")

	if err := a.run(context.Background(), []string{"chat"}); err != nil {
		t.Fatalf("run chat: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("expected 1 webhook call, got %d", len(got))
	}
	if got[0].Message != "hello\nthere" {
		t.Errorf("expected multi-line message, got %q", got[0].Message)
	}
	if got[0].Source != webhook.SourceChat {
		t.Errorf("expected source %q, got %q", webhook.SourceChat, got[0].Source)
	}
	text := out.String()
	if !strings.Contains(text, "Thanks, I'll get back to you") {
		t.Errorf("reply not printed:\n%s", text)
	}
	if !strings.Contains(text, model.WelcomeText) {
		t.Errorf("welcome message not printed:\n%s", text)
	}
}

func TestChatClosedIgnoresInput(t *testing.T) {
	a, out := newTestApp(t, notCalled(t), "/close\nhello\n/quit\n")
	if err := a.run(context.Background(), []string{"chat"}); err != nil {
		t.Fatalf("run chat: %v", err)
	}
	if !strings.Contains(out.String(), "(chat is closed") {
		t.Errorf("expected closed hint:\n%s", out.String())
	}
}

func TestContactSubmitsFlags(t *testing.T) {
	var got webhook.ContactPayload
	a, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contact" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
	}, "")

	err := a.run(context.Background(), []string{"contact",
		"-name", "Ada", "-email", "ada@example.com", "-subject", "Mobile Apps", "-message", "Build me an app"})
	if err != nil {
		t.Fatalf("run contact: %v", err)
	}
	if got.Name != "Ada" || got.Subject != "mobile-apps" || got.Source != webhook.SourceContactForm {
		t.Errorf("unexpected payload: %+v", got)
	}
	if !strings.Contains(out.String(), "[Message Sent!]") {
		t.Errorf("expected sent label:\n%s", out.String())
	}
}

func TestContactPromptsForMissingFields(t *testing.T) {
	var got webhook.ContactPayload
	a, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
	}, "Ada\nada@example.com\nweb-development\nHello\n")

	if err := a.run(context.Background(), []string{"contact"}); err != nil {
		t.Fatalf("run contact: %v", err)
	}
	if got.Email != "ada@example.com" || got.Message != "Hello" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestContactFailureAlerts(t *testing.T) {
	a, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, "")

	err := a.run(context.Background(), []string{"contact",
		"-name", "Ada", "-email", "ada@example.com", "-subject", "ai-automation", "-message", "hi"})
	if err != nil {
		t.Fatalf("failure should be reported through the alert, got %v", err)
	}
	if !strings.Contains(out.String(), "!! Error sending message.") {
		t.Errorf("expected alert:\n%s", out.String())
	}
}

func TestContactRejectsUnknownSubject(t *testing.T) {
	a, _ := newTestApp(t, notCalled(t), "")
	err := a.run(context.Background(), []string{"contact",
		"-name", "Ada", "-email", "a@b.c", "-subject", "gardening", "-message", "hi"})
	if err == nil || !strings.Contains(err.Error(), "unknown project type") {
		t.Fatalf("expected unknown project type error, got %v", err)
	}
}

func TestProjectsFilter(t *testing.T) {
	a, out := newTestApp(t, notCalled(t), "")
	if err := a.run(context.Background(), []string{"projects", "-filter", "mobile"}); err != nil {
		t.Fatalf("run projects: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "[mobile]") {
		t.Errorf("expected a mobile project:\n%s", text)
	}
	if strings.Contains(text, "[web]") || strings.Contains(text, "[automation]") {
		t.Errorf("filter leaked other categories:\n%s", text)
	}
}

func TestShowSection(t *testing.T) {
	a, out := newTestApp(t, notCalled(t), "")
	if err := a.run(context.Background(), []string{"show", "#skills"}); err != nil {
		t.Fatalf("run show: %v", err)
	}
	if !strings.Contains(out.String(), "== Skills ==") {
		t.Errorf("expected skills heading:\n%s", out.String())
	}
	if active := a.registry.Active(); len(active) != 0 {
		t.Errorf("reveals should be disposed after show, got %v", active)
	}
}

func TestShowUnknownSection(t *testing.T) {
	a, _ := newTestApp(t, notCalled(t), "")
	err := a.run(context.Background(), []string{"show", "blog"})
	if !errors.Is(err, site.ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "[..........]"},
		{95, "[#########.]"},
		{120, "[##########]"},
		{-5, "[..........]"},
	}
	for _, tt := range tests {
		if got := bar(tt.level); got != tt.want {
			t.Errorf("bar(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
