package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/portfolio/messaging/internal/model"
	"github.com/portfolio/messaging/internal/service"
	"github.com/portfolio/messaging/internal/site"
)

// terminalScroller "scrolls" by printing the section.
type terminalScroller struct {
	out      io.Writer
	projects service.ProjectService
}

func (s *terminalScroller) ScrollTo(ctx context.Context, section site.Section) error {
	fmt.Fprintf(s.out, "== %s ==\n", section.Title)
	switch section.ID {
	case "services":
		services, err := s.projects.Services(ctx)
		if err != nil {
			return err
		}
		for _, svc := range services {
			fmt.Fprintf(s.out, "- %s: %s\n", svc.Title, svc.Description)
			for _, f := range svc.Features {
				fmt.Fprintf(s.out, "    * %s\n", f)
			}
		}
	case "projects":
		projects, err := s.projects.List(ctx, model.CategoryAll)
		if err != nil {
			return err
		}
		for _, p := range projects {
			fmt.Fprintf(s.out, "- %s [%s]\n", p.Title, p.Category)
		}
	case "skills":
		categories, err := s.projects.Skills(ctx)
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Fprintf(s.out, "%s\n", c.Title)
			for _, sk := range c.Skills {
				fmt.Fprintf(s.out, "  %-16s %s %d%%\n", sk.Name, bar(sk.Level), sk.Level)
			}
		}
	case "contact":
		fmt.Fprintln(s.out, "Run `portfolio contact` to send a message.")
	}
	return nil
}

// bar renders a 0-100 level as a ten-cell bar.
func bar(level int) string {
	level = max(0, min(100, level))
	n := level / 10
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", 10-n) + "]"
}

func (a *app) runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(a.out)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("show needs exactly one section: %w", errUsage)
	}

	page := site.NewPage(&terminalScroller{out: a.out, projects: a.projects})
	dispose := page.Mount(a.registry)
	defer dispose()
	return page.NavigateToSection(ctx, fs.Arg(0))
}
