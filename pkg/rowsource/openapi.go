// Package rowsource derives rows from external schema documents so layouts do
// not have to redeclare every field by hand.
package rowsource

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formcompose/pkg/form"
)

const jsonContentType = "application/json"

var (
	// ErrOperationNotFound is returned when the document has no matching
	// operation.
	ErrOperationNotFound = errors.New("rowsource: operation not found")
	// ErrNoRequestBody is returned when the operation has no JSON object
	// request body to derive rows from.
	ErrNoRequestBody = errors.New("rowsource: operation has no JSON request body")
)

// FromOpenAPI loads an OpenAPI 3 document and returns one row per top-level
// property of the operation's JSON request body, sorted by name. Operations
// without an operationId are addressed as "method:path", e.g. "post:/pets".
func FromOpenAPI(ctx context.Context, data []byte, operationID string) ([]*form.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("rowsource: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("rowsource: load document: %w", err)
	}

	op := findOperation(spec, operationID)
	if op == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(op)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]*form.Row, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_, isRequired := required[name]
		rows = append(rows, rowFromProperty(name, schema.Properties[name], isRequired))
	}
	return rows, nil
}

// findOperation prefers an explicit operationId over a "method:path" fallback
// id, so a clash between the two resolves the same way on every run.
func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}

	var fallback *openapi3.Operation
	for _, path := range spec.Paths.InMatchingOrder() {
		item := spec.Paths.Value(path)
		if item == nil {
			continue
		}
		operations := item.Operations()
		methods := make([]string, 0, len(operations))
		for method := range operations {
			methods = append(methods, method)
		}
		sort.Strings(methods)

		for _, method := range methods {
			op := operations[method]
			if op == nil {
				continue
			}
			if op.OperationID != "" {
				if op.OperationID == operationID {
					return op
				}
				continue
			}
			if fallback == nil && strings.ToLower(method)+":"+path == operationID {
				fallback = op
			}
		}
	}
	return fallback
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get(jsonContentType)
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

func rowFromProperty(name string, ref *openapi3.SchemaRef, required bool) *form.Row {
	row := form.NewRow(name)
	row.Required = required
	if ref == nil {
		return row
	}
	if ref.Ref != "" {
		row.Metadata = map[string]string{"$ref": ref.Ref}
	}
	if ref.Value == nil {
		return row
	}
	src := ref.Value
	row.Type = firstSchemaType(src.Type)
	row.Format = src.Format
	row.Label = src.Title
	row.Description = src.Description
	if len(src.Enum) > 0 {
		values := make([]string, 0, len(src.Enum))
		for _, value := range src.Enum {
			values = append(values, fmt.Sprint(value))
		}
		if row.Metadata == nil {
			row.Metadata = make(map[string]string, 1)
		}
		row.Metadata["enum"] = strings.Join(values, ",")
	}
	return row
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
