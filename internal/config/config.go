package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Automation webhook
	ChatWebhookURL    string
	ContactWebhookURL string
	WebhookTimeout    time.Duration // 0 = no timeout

	// Values reported in the chat payload
	UserAgent string
	PageURL   string

	// How long the contact form shows "Message Sent!"
	SubmittedReset time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, loading .env first when present.
func Load() *Config {
	// .env is optional for local development
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) *Config {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		ChatWebhookURL:    getenv("CHAT_WEBHOOK_URL"),
		ContactWebhookURL: getenv("CONTACT_WEBHOOK_URL"),
		WebhookTimeout:    parseDuration(getenv, "WEBHOOK_TIMEOUT", 0),
		UserAgent:         get("CHAT_USER_AGENT", "portfolio-terminal/1.0"),
		PageURL:           get("PAGE_URL", "http://localhost:5173/"),
		SubmittedReset:    parseDuration(getenv, "SUBMITTED_RESET", 3*time.Second),
		LogLevel:          get("LOG_LEVEL", "INFO"),
		LogFormat:         get("LOG_FORMAT", "text"),
	}
	return cfg
}

func parseDuration(getenv func(string) string, key string, def time.Duration) time.Duration {
	v := getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// Warnings lists configuration problems worth telling the operator about.
func (c *Config) Warnings() []string {
	var w []string
	if c.ChatWebhookURL == "" {
		w = append(w, "CHAT_WEBHOOK_URL not set: chat replies will show the error message")
	}
	if c.ContactWebhookURL == "" {
		w = append(w, "CONTACT_WEBHOOK_URL not set: contact submissions will fail")
	}
	return w
}
