package webhook

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport logs each webhook round trip. Only the host and path are
// logged; webhook URLs often carry a secret in the query string.
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *slog.Logger) *loggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(r)
	attrs := []any{
		"method", r.Method,
		"host", r.URL.Host,
		"path", r.URL.Path,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		t.logger.Warn("webhook request failed", append(attrs, "err", err)...)
		return nil, err
	}
	t.logger.Debug("webhook request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}
