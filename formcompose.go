// Package formcompose is the convenience entry point for composing form
// descriptors. The algebra itself lives in pkg/form; this package re-exports
// the common types and wires the layout and row-source helpers together.
package formcompose

import (
	"context"

	"github.com/goliatone/go-formcompose/pkg/form"
	"github.com/goliatone/go-formcompose/pkg/form/expr"
	"github.com/goliatone/go-formcompose/pkg/layout"
	"github.com/goliatone/go-formcompose/pkg/rowsource"
)

// Form aliases form.Form.
type Form = form.Form

// Section aliases form.Section.
type Section = form.Section

// Row aliases form.Row.
type Row = form.Row

// Env aliases expr.Env for callers evaluating expressions directly.
type Env = expr.Env

// Evaluate parses an Attach/Append expression, evaluates it against env and
// promotes the result to a form.
func Evaluate(source string, env Env) (*Form, error) {
	return expr.EvaluateForm(source, env)
}

// BuildLayout loads a JSON/YAML layout document and builds the form it
// declares.
func BuildLayout(data []byte, options ...layout.Option) (*Form, error) {
	l, err := layout.Load(data, options...)
	if err != nil {
		return nil, err
	}
	return l.Build()
}

// RowsFromOpenAPI derives rows from an operation's JSON request body. Pass
// them to BuildLayout with layout.WithRows.
func RowsFromOpenAPI(ctx context.Context, document []byte, operationID string) ([]*Row, error) {
	return rowsource.FromOpenAPI(ctx, document, operationID)
}
