package layout

import "github.com/goliatone/go-formcompose/pkg/form"

// Option configures Load.
type Option func(*options)

type options struct {
	source   string
	rows     []*form.Row
	sanitize bool
}

func defaultOptions() options {
	return options{source: "<inline>", sanitize: true}
}

// WithSource names the document in error messages.
func WithSource(source string) Option {
	return func(o *options) {
		if source != "" {
			o.source = source
		}
	}
}

// WithRows registers additional rows, e.g. rows derived from an OpenAPI
// operation, under their Name. Names must not clash with declared rows or
// sections.
func WithRows(rows ...*form.Row) Option {
	return func(o *options) {
		o.rows = append(o.rows, rows...)
	}
}

// WithSanitizer toggles stripping of markup from section headers and footers
// and from row labels and descriptions, including rows registered with
// WithRows. Enabled by default.
func WithSanitizer(enabled bool) Option {
	return func(o *options) {
		o.sanitize = enabled
	}
}
