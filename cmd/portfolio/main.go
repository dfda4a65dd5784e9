package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/portfolio/messaging/internal/config"
	"github.com/portfolio/messaging/internal/logging"
	"github.com/portfolio/messaging/internal/repository"
	"github.com/portfolio/messaging/internal/reveal"
	"github.com/portfolio/messaging/internal/service"
	"github.com/portfolio/messaging/pkg/webhook"
)

const usage = `usage: portfolio <command> [flags]

commands:
  chat       open the Quick Chat and talk to the automation webhook
  contact    fill in and send the contact form
  projects   list projects, optionally filtered by category
  show       jump to a page section (home, about, services, projects, skills, contact)
`

var errUsage = errors.New("usage")

// app bundles the dependencies every command shares.
type app struct {
	cfg      *config.Config
	client   webhook.Client
	projects service.ProjectService
	registry *reveal.Registry
	in       io.Reader
	out      io.Writer
}

func main() {
	cfg := config.Load()
	logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		cfg:      cfg,
		client:   webhook.NewClient(cfg.ChatWebhookURL, cfg.ContactWebhookURL, cfg.WebhookTimeout),
		projects: service.NewProjectService(repository.NewStaticCatalogRepository()),
		registry: reveal.NewRegistry(reveal.NewLogEngine(nil)),
		in:       os.Stdin,
		out:      os.Stdout,
	}

	if err := a.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logging.Fatal("command failed", "err", err)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "chat":
		return a.runChat(ctx, args[1:])
	case "contact":
		return a.runContact(ctx, args[1:])
	case "projects":
		return a.runProjects(ctx, args[1:])
	case "show":
		return a.runShow(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}
