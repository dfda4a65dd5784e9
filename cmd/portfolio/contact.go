package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/portfolio/messaging/internal/model"
	"github.com/portfolio/messaging/internal/service"
	"github.com/portfolio/messaging/internal/widget"
)

// terminalAlerter prints alerts where a browser would pop a dialog.
type terminalAlerter struct {
	out io.Writer
}

func (a terminalAlerter) Alert(message string) {
	fmt.Fprintf(a.out, "!! %s\n", message)
}

func (a *app) runContact(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "your name")
	email := fs.String("email", "", "your email")
	subject := fs.String("subject", "", "project type ("+subjectValues()+")")
	message := fs.String("message", "", "your message")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	form := widget.NewContactForm(
		service.NewContactService(a.client, nil),
		widget.WithAlerter(terminalAlerter{out: a.out}),
		widget.WithSubmittedReset(a.cfg.SubmittedReset),
	)
	dispose := form.Mount(a.registry)
	defer dispose()

	reader := bufio.NewReader(a.in)
	values := []struct {
		field, prompt string
		value         *string
	}{
		{model.FieldName, "Name", name},
		{model.FieldEmail, "Email", email},
		{model.FieldSubject, "Project Type (" + subjectValues() + ")", subject},
		{model.FieldMessage, "Message", message},
	}
	for _, v := range values {
		if strings.TrimSpace(*v.value) == "" {
			line, err := prompt(reader, a.out, v.prompt)
			if err != nil {
				return err
			}
			*v.value = line
		}
		if v.field == model.FieldSubject {
			resolved, err := resolveSubject(*v.value)
			if err != nil {
				return err
			}
			*v.value = resolved
		}
		if err := form.UpdateField(v.field, *v.value); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "[%s]\n", form.ButtonLabel())
	if err := form.Submit(ctx); err != nil {
		if errors.Is(err, widget.ErrSubmitFailed) {
			// The alerter has already told the visitor.
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "[%s]\n", form.ButtonLabel())
	return nil
}

// prompt reads one line. Reaching EOF with no input yields an empty answer.
func prompt(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line), nil
}

// resolveSubject accepts either the value or the label of a subject option.
// An empty subject is passed through so the form reports it as missing.
func resolveSubject(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, opt := range model.SubjectOptions {
		if strings.EqualFold(s, opt.Value) || strings.EqualFold(s, opt.Label) {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("unknown project type %q (choose %s)", s, subjectValues())
}

func subjectValues() string {
	values := make([]string, 0, len(model.SubjectOptions))
	for _, opt := range model.SubjectOptions {
		values = append(values, opt.Value)
	}
	return strings.Join(values, ", ")
}
