package prompt

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/goliatone/go-formcompose/internal/output"
	"github.com/goliatone/go-formcompose/pkg/form"
	"github.com/goliatone/go-formcompose/pkg/form/expr"
)

// Source provides fresh operands for every expression the user types.
type Source interface {
	Names() []string
	Env() expr.Env
	Evaluate(source string) (*form.Form, error)
}

// Session asks for composition expressions and writes each resulting form to
// Out until the user declines to continue.
type Session struct {
	Driver Driver
	Source Source
	Out    io.Writer
}

// Run executes the session. Aborting a prompt ends the session without error.
func (s *Session) Run(ctx context.Context) error {
	if s.Driver == nil || s.Source == nil || s.Out == nil {
		return errors.New("prompt: session requires a driver, a source and an output")
	}

	names := s.Source.Names()
	if err := s.Driver.Info(ctx, "Available operands: "+strings.Join(names, ", ")); err != nil {
		return err
	}

	formats := output.Formats()
	for {
		source, err := s.Driver.Input(ctx, InputConfig{
			Message:   "Expression",
			Help:      "Combine operands with <<< (attach rows to a section) and +++ (append sections to a form).",
			Validator: s.validate,
		})
		if err != nil {
			return ignoreAbort(err)
		}

		f, err := s.Source.Evaluate(source)
		if err != nil {
			if infoErr := s.Driver.Info(ctx, err.Error()); infoErr != nil {
				return infoErr
			}
		} else {
			idx, err := s.Driver.Select(ctx, SelectConfig{Message: "Output format", Options: formats})
			if err != nil {
				return ignoreAbort(err)
			}
			if idx < 0 || idx >= len(formats) {
				idx = 0
			}
			if err := output.Encode(s.Out, f, output.Format(formats[idx])); err != nil {
				return err
			}
		}

		again, err := s.Driver.Confirm(ctx, ConfirmConfig{Message: "Compose another form?", Default: true})
		if err != nil {
			return ignoreAbort(err)
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) validate(source string) error {
	if strings.TrimSpace(source) == "" {
		return errors.New("expression is required")
	}
	_, err := expr.Parse(source, s.Source.Env())
	return err
}

func ignoreAbort(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}
