package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcompose/pkg/form"
)

// MustReadFixture reads a fixture file and returns its raw bytes.
func MustReadFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// MustLoadGolden decodes a JSON golden file into out.
func MustLoadGolden(t *testing.T, path string, out any) {
	t.Helper()
	if err := LoadGolden(path, out); err != nil {
		t.Fatalf("load golden: %v", err)
	}
}

// LoadGolden decodes a JSON golden file into out, returning an error for
// callers managing setup outside of *testing.T.
func LoadGolden(path string, out any) error {
	if path == "" {
		return errors.New("testsupport: golden path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("testsupport: read golden: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("testsupport: unmarshal golden: %w", err)
	}
	return nil
}

// MustLoadSnapshot loads a JSON golden file into a FormSnapshot.
func MustLoadSnapshot(t *testing.T, path string) form.FormSnapshot {
	t.Helper()
	var out form.FormSnapshot
	MustLoadGolden(t, path, &out)
	return out
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	payload = append(payload, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Layout flattens a form into row names per section, which keeps ordering
// assertions short.
func Layout(f *form.Form) [][]string {
	if f == nil {
		return nil
	}
	out := make([][]string, 0, f.Len())
	for _, section := range f.Sections() {
		names := make([]string, 0, section.Len())
		for _, row := range section.Rows() {
			names = append(names, row.Name)
		}
		out = append(out, names)
	}
	return out
}
