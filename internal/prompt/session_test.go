package prompt_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcompose/internal/prompt"
	"github.com/goliatone/go-formcompose/pkg/form"
	"github.com/goliatone/go-formcompose/pkg/layout"
)

type scriptedDriver struct {
	inputs   []string
	selects  []int
	confirms []bool
	infos    []string
	rejected []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	for len(d.inputs) > 0 {
		answer := d.inputs[0]
		d.inputs = d.inputs[1:]
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				d.rejected = append(d.rejected, answer)
				continue
			}
		}
		return answer, nil
	}
	return "", prompt.ErrAborted
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, nil
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, nil
	}
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func loadLayout(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.Load([]byte(`
rows:
  email: {}
  password: {}
  newsletter: {}
sections:
  account: {header: Account}
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return l
}

func TestSessionComposesUntilDeclined(t *testing.T) {
	driver := &scriptedDriver{
		inputs:   []string{"account <<< nope", "account <<< email <<< password +++ newsletter"},
		selects:  []int{0},
		confirms: []bool{false},
	}
	var out bytes.Buffer

	session := &prompt.Session{Driver: driver, Source: loadLayout(t), Out: &out}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if diff := cmp.Diff([]string{"account <<< nope"}, driver.rejected); diff != "" {
		t.Fatalf("rejected mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infos) == 0 || !strings.Contains(driver.infos[0], "account, email, newsletter, password") {
		t.Fatalf("expected operand listing, got %v", driver.infos)
	}

	var got form.FormSnapshot
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(got.Sections) != 2 || got.Sections[0].Header != "Account" || len(got.Sections[0].Rows) != 2 {
		t.Fatalf("unexpected form: %+v", got)
	}
}

func TestSessionReportsEvaluationErrors(t *testing.T) {
	driver := &scriptedDriver{
		inputs:   []string{"newsletter +++ account", "email"},
		selects:  []int{1},
		confirms: []bool{true, false},
	}
	var out bytes.Buffer

	session := &prompt.Session{Driver: driver, Source: loadLayout(t), Out: &out}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(driver.infos) != 2 || !strings.Contains(driver.infos[1], "row +++ section is not defined") {
		t.Fatalf("expected unsupported combination to be reported, got %v", driver.infos)
	}
	if !strings.Contains(out.String(), "name: email") {
		t.Fatalf("expected yaml output for the second expression, got:\n%s", out.String())
	}
}

func TestSessionAbortEndsQuietly(t *testing.T) {
	driver := &scriptedDriver{}
	session := &prompt.Session{Driver: driver, Source: loadLayout(t), Out: &bytes.Buffer{}}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("expected abort to end the session quietly, got %v", err)
	}
}

func TestSessionRequiresCollaborators(t *testing.T) {
	if err := (&prompt.Session{}).Run(context.Background()); err == nil {
		t.Fatalf("expected error for empty session")
	}
}
