package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRealClient_PostChat_SendsPayload(t *testing.T) {
	var got map[string]string
	var contentType, method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = io.WriteString(w, `{"reply":"hi there"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	body, err := c.PostChat(context.Background(), ChatPayload{
		Message:   "hello",
		Timestamp: "2024-01-02T03:04:05.000Z",
		Source:    SourceChat,
		UserAgent: "test-agent",
		URL:       "http://localhost/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != `{"reply":"hi there"}` {
		t.Errorf("expected raw body, got %q", body)
	}
	if method != http.MethodPost {
		t.Errorf("expected POST, got %s", method)
	}
	if contentType != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %q", contentType)
	}
	want := map[string]string{
		"message":   "hello",
		"timestamp": "2024-01-02T03:04:05.000Z",
		"source":    "portfolio_chat",
		"userAgent": "test-agent",
		"url":       "http://localhost/",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("expected %s=%q, got %q", k, v, got[k])
		}
	}
	if len(got) != len(want) {
		t.Errorf("expected %d fields, got %d: %v", len(want), len(got), got)
	}
}

func TestRealClient_PostChat_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	_, err := c.PostChat(context.Background(), ChatPayload{Message: "hi"})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", statusErr.StatusCode)
	}
}

func TestRealClient_PostChat_OversizedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"message":"`+strings.Repeat("a", maxResponseBytes)+`"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	body, err := c.PostChat(context.Background(), ChatPayload{Message: "hi"})
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge, got %v", err)
	}
	if body != "" {
		t.Errorf("expected no partial body, got %d bytes", len(body))
	}
}

func TestRealClient_PostChat_ReplyAtLimit(t *testing.T) {
	reply := strings.Repeat("a", maxResponseBytes)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, reply)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	body, err := c.PostChat(context.Background(), ChatPayload{Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) != maxResponseBytes {
		t.Errorf("expected %d bytes, got %d", maxResponseBytes, len(body))
	}
}

func TestRealClient_PostChat_NotConfigured(t *testing.T) {
	c := NewClient("", "", 0)
	if _, err := c.PostChat(context.Background(), ChatPayload{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestRealClient_PostContact_SendsPayload(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "ignored")
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, time.Second)
	err := c.PostContact(context.Background(), ContactPayload{
		Name:      "Alice",
		Email:     "alice@example.com",
		Subject:   "web-development",
		Message:   "Hello!",
		Timestamp: "2024-01-02T03:04:05.000Z",
		Source:    SourceContactForm,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k, v := range map[string]string{
		"name":    "Alice",
		"email":   "alice@example.com",
		"subject": "web-development",
		"message": "Hello!",
		"source":  "portfolio_contact_form",
	} {
		if got[k] != v {
			t.Errorf("expected %s=%q, got %q", k, v, got[k])
		}
	}
}

func TestRealClient_PostContact_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, 0)
	err := c.PostContact(context.Background(), ContactPayload{})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected StatusError 500, got %v", err)
	}
}

func TestRealClient_PostContact_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient("", url, 0)
	if err := c.PostContact(context.Background(), ContactPayload{}); err == nil {
		t.Error("expected error for closed server")
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.FixedZone("JST", 9*60*60))
	if got := FormatTimestamp(ts); got != "2024-05-05T22:08:09.123Z" {
		t.Errorf("expected 2024-05-05T22:08:09.123Z, got %q", got)
	}
}
