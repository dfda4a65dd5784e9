package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/portfolio/messaging/internal/model"
)

func (a *app) runProjects(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects", flag.ContinueOnError)
	fs.SetOutput(a.out)
	filter := fs.String("filter", model.CategoryAll, "category to show (all, web, mobile, automation)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	filters, err := a.projects.Filters(ctx)
	if err != nil {
		return err
	}
	tabs := make([]string, 0, len(filters))
	for _, f := range filters {
		label := f.Label
		if f.ID == strings.ToLower(strings.TrimSpace(*filter)) {
			label = "*" + label + "*"
		}
		tabs = append(tabs, label)
	}
	fmt.Fprintln(a.out, strings.Join(tabs, " | "))

	projects, err := a.projects.List(ctx, *filter)
	if err != nil {
		return err
	}
	for _, p := range projects {
		a.printProject(p)
	}
	return nil
}

func (a *app) printProject(p *model.Project) {
	fmt.Fprintf(a.out, "\n%s [%s]\n  %s\n  %s\n", p.Title, p.Category, p.Description, strings.Join(p.Technologies, ", "))
	if p.LiveURL != "" {
		fmt.Fprintf(a.out, "  live:   %s\n", p.LiveURL)
	}
	if p.GitHubURL != "" {
		fmt.Fprintf(a.out, "  github: %s\n", p.GitHubURL)
	}
}
