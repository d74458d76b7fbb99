// Package output encodes form snapshots for the command line tools.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcompose/pkg/form"
)

// Format selects an encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported encodings.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatYAML)}
}

// ParseFormat normalises a user-supplied format name. "yml" is accepted as YAML.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("output: unsupported format %q", raw)
	}
}

// Encode writes the snapshot of f to w.
func Encode(w io.Writer, f *form.Form, format Format) error {
	snapshot := form.Describe(f)
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snapshot); err != nil {
			return fmt.Errorf("output: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snapshot); err != nil {
			return fmt.Errorf("output: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("output: encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("output: unsupported format %q", format)
	}
}
