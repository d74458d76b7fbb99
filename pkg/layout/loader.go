package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcompose/pkg/form"
	"github.com/goliatone/go-formcompose/pkg/form/expr"
)

// ErrNoExpression is returned by Build when the layout declares no form
// expression.
var ErrNoExpression = errors.New("layout: no form expression")

// Layout is a validated layout document.
type Layout struct {
	Source     string
	Expression string

	rows     map[string]RowSpec
	extra    map[string]*form.Row
	sections map[string]SectionSpec
}

// Load parses a JSON or YAML layout document.
func Load(data []byte, opts ...Option) (*Layout, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	doc, err := parseDocument(data, cfg.source)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Source:     cfg.source,
		Expression: strings.TrimSpace(doc.Form),
		rows:       make(map[string]RowSpec, len(doc.Rows)),
		extra:      make(map[string]*form.Row, len(cfg.rows)),
		sections:   make(map[string]SectionSpec, len(doc.Sections)),
	}

	for key, spec := range doc.Rows {
		name := strings.TrimSpace(key)
		if name == "" {
			return nil, fmt.Errorf("layout: %s declares a row with an empty name", cfg.source)
		}
		if spec.Name == "" {
			spec.Name = name
		}
		if cfg.sanitize {
			spec.Label = sanitizeText(spec.Label)
			spec.Description = sanitizeText(spec.Description)
		}
		l.rows[name] = spec
	}

	for _, row := range cfg.rows {
		if row == nil {
			continue
		}
		if _, exists := l.rows[row.Name]; exists {
			return nil, fmt.Errorf("layout: %s: row %q is declared twice", cfg.source, row.Name)
		}
		if _, exists := l.extra[row.Name]; exists {
			return nil, fmt.Errorf("layout: %s: row %q is declared twice", cfg.source, row.Name)
		}
		clone := cloneRow(row)
		if cfg.sanitize {
			clone.Label = sanitizeText(clone.Label)
			clone.Description = sanitizeText(clone.Description)
		}
		l.extra[row.Name] = clone
	}

	for key, spec := range doc.Sections {
		name := strings.TrimSpace(key)
		if name == "" {
			return nil, fmt.Errorf("layout: %s declares a section with an empty name", cfg.source)
		}
		if l.hasRow(name) {
			return nil, fmt.Errorf("layout: %s: %q names both a row and a section", cfg.source, name)
		}
		for _, rowName := range spec.Rows {
			if !l.hasRow(rowName) {
				return nil, fmt.Errorf("layout: %s: section %q references unknown row %q", cfg.source, name, rowName)
			}
		}
		if cfg.sanitize {
			spec.Header = sanitizeText(spec.Header)
			spec.Footer = sanitizeText(spec.Footer)
		}
		l.sections[name] = spec
	}

	if l.Expression != "" {
		if _, err := expr.Parse(l.Expression, l.Env()); err != nil {
			return nil, fmt.Errorf("layout: %s: form expression: %w", cfg.source, err)
		}
	}

	return l, nil
}

// LoadFS reads path from fsys and parses it.
func LoadFS(fsys fs.FS, path string, opts ...Option) (*Layout, error) {
	if fsys == nil {
		return nil, errors.New("layout: filesystem is not configured")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	return Load(data, append([]Option{WithSource(path)}, opts...)...)
}

// LoadFile reads a layout from disk.
func LoadFile(path string, opts ...Option) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	return Load(data, append([]Option{WithSource(path)}, opts...)...)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("layout: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("layout: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func (l *Layout) hasRow(name string) bool {
	if _, ok := l.rows[name]; ok {
		return true
	}
	_, ok := l.extra[name]
	return ok
}

// Names returns every row and section name in sorted order.
func (l *Layout) Names() []string {
	names := make([]string, 0, len(l.rows)+len(l.extra)+len(l.sections))
	for name := range l.rows {
		names = append(names, name)
	}
	for name := range l.extra {
		names = append(names, name)
	}
	for name := range l.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Env instantiates fresh descriptors for every declared name. Sections come
// back with their declared rows already attached.
func (l *Layout) Env() expr.Env {
	env := make(expr.Env, len(l.rows)+len(l.extra)+len(l.sections))
	rows := make(map[string]*form.Row, len(l.rows)+len(l.extra))

	for name, spec := range l.rows {
		row := form.NewRow(spec.Name,
			form.WithType(spec.Type),
			form.WithFormat(spec.Format),
			form.WithLabel(spec.Label),
			form.WithDescription(spec.Description),
			form.WithMetadata(spec.Metadata),
		)
		row.Required = spec.Required
		rows[name] = row
		env[name] = row
	}
	for name, template := range l.extra {
		row := cloneRow(template)
		rows[name] = row
		env[name] = row
	}

	for name, spec := range l.sections {
		section := form.NewSection(form.WithHeader(spec.Header), form.WithFooter(spec.Footer))
		for _, rowName := range spec.Rows {
			section.Attach(rows[rowName])
		}
		env[name] = section
	}

	return env
}

// Build evaluates the layout's form expression against a fresh Env.
func (l *Layout) Build() (*form.Form, error) {
	if l.Expression == "" {
		return nil, fmt.Errorf("%w in %s", ErrNoExpression, l.Source)
	}
	return l.Evaluate(l.Expression)
}

// Evaluate evaluates an arbitrary expression against a fresh Env and promotes
// the result to a form.
func (l *Layout) Evaluate(source string) (*form.Form, error) {
	f, err := expr.EvaluateForm(source, l.Env())
	if err != nil {
		return nil, fmt.Errorf("layout: %s: %w", l.Source, err)
	}
	return f, nil
}

func cloneRow(row *form.Row) *form.Row {
	clone := *row
	if len(row.Metadata) > 0 {
		clone.Metadata = make(map[string]string, len(row.Metadata))
		for key, value := range row.Metadata {
			clone.Metadata[key] = value
		}
	}
	return &clone
}
