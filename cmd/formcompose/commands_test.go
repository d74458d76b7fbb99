package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcompose/pkg/form"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decode(t *testing.T, payload string) form.FormSnapshot {
	t.Helper()
	var snapshot form.FormSnapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		t.Fatalf("decode: %v\n%s", err, payload)
	}
	return snapshot
}

func sectionNames(snapshot form.FormSnapshot) [][]string {
	out := make([][]string, 0, len(snapshot.Sections))
	for _, section := range snapshot.Sections {
		names := make([]string, 0, len(section.Rows))
		for _, row := range section.Rows {
			names = append(names, row.Name)
		}
		out = append(out, names)
	}
	return out
}

func TestComposeCommand(t *testing.T) {
	stdout, _, err := run(t, "compose", "--layout", filepath.Join("testdata", "signup.yaml"))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	want := [][]string{{"email", "password"}, {"bio"}, {"newsletter"}}
	if diff := cmp.Diff(want, sectionNames(decode(t, stdout))); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeWithOpenAPIRows(t *testing.T) {
	stdout, stderr, err := run(t, "compose", "-v",
		"--layout", filepath.Join("testdata", "pet.yaml"),
		"--openapi", filepath.Join("testdata", "petstore.yaml"),
		"--operation", "createPet",
	)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	snapshot := decode(t, stdout)
	want := [][]string{{"name", "kind"}, {"birthday"}}
	if diff := cmp.Diff(want, sectionNames(snapshot)); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
	if !snapshot.Sections[0].Rows[0].Required {
		t.Fatalf("expected required flag from the openapi schema")
	}
	if !strings.Contains(stderr, "loaded rows from openapi") {
		t.Fatalf("expected debug log, got:\n%s", stderr)
	}
}

func TestEvalCommandToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "form.yaml")
	_, stderr, err := run(t, "eval", "--layout", filepath.Join("testdata", "signup.yaml"),
		"--format", "yaml", "--output", target, "email <<< password")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "name: password") {
		t.Fatalf("expected yaml form, got:\n%s", data)
	}
	if !strings.Contains(stderr, "form written") {
		t.Fatalf("expected info log, got:\n%s", stderr)
	}
}

func TestCommandErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing layout", []string{"compose"}, "--layout is required"},
		{"openapi without operation", []string{"compose", "--layout", filepath.Join("testdata", "pet.yaml"), "--openapi", "x.yaml"}, "must be used together"},
		{"unknown operand", []string{"compose", "--layout", filepath.Join("testdata", "pet.yaml")}, "unknown operand"},
		{"unsupported", []string{"eval", "--layout", filepath.Join("testdata", "signup.yaml"), "bio +++ account"}, "is not defined"},
		{"bad format", []string{"eval", "--layout", filepath.Join("testdata", "signup.yaml"), "--format", "xml", "bio"}, "unsupported format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
