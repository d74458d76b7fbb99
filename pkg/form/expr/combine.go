package expr

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formcompose/pkg/form"
)

// Op is a composition operator.
type Op int

const (
	// OpAppend is "+++", the lower-precedence operator.
	OpAppend Op = iota + 1
	// OpAttach is "<<<", the higher-precedence operator.
	OpAttach
)

func (o Op) String() string {
	switch o {
	case OpAppend:
		return "+++"
	case OpAttach:
		return "<<<"
	default:
		return "?"
	}
}

var (
	// ErrUnsupportedCombination is wrapped by every *UnsupportedError.
	ErrUnsupportedCombination = errors.New("expr: unsupported combination")
	// ErrNilOperand is returned when a chain contains a nil descriptor.
	ErrNilOperand = errors.New("expr: nil operand")
)

// UnsupportedError reports an operator applied to a kind pair the algebra does
// not define.
type UnsupportedError struct {
	Op    Op
	Left  form.Kind
	Right form.Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("expr: %s %s %s is not defined", e.Left, e.Op, e.Right)
}

// Unwrap returns ErrUnsupportedCombination.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupportedCombination
}

type dispatchKey struct {
	op    Op
	left  form.Kind
	right form.Kind
}

type combiner func(left, right form.Node) form.Node

var dispatch = map[dispatchKey]combiner{
	{OpAttach, form.KindSection, form.KindRow}: func(left, right form.Node) form.Node {
		return left.(*form.Section).Attach(right.(*form.Row))
	},
	{OpAttach, form.KindRow, form.KindRow}: func(left, right form.Node) form.Node {
		return left.(*form.Row).Attach(right.(*form.Row))
	},
	{OpAppend, form.KindForm, form.KindSection}: func(left, right form.Node) form.Node {
		return left.(*form.Form).Append(right.(*form.Section))
	},
	{OpAppend, form.KindForm, form.KindRow}: func(left, right form.Node) form.Node {
		return left.(*form.Form).AppendRow(right.(*form.Row))
	},
	{OpAppend, form.KindSection, form.KindSection}: func(left, right form.Node) form.Node {
		return left.(*form.Section).Append(right.(*form.Section))
	},
	{OpAppend, form.KindSection, form.KindRow}: func(left, right form.Node) form.Node {
		return left.(*form.Section).AppendRow(right.(*form.Row))
	},
	{OpAppend, form.KindRow, form.KindRow}: func(left, right form.Node) form.Node {
		return left.(*form.Row).Append(right.(*form.Row))
	},
}

// Supported reports whether op is defined for the given operand kinds.
func Supported(op Op, left, right form.Kind) bool {
	_, ok := dispatch[dispatchKey{op: op, left: left, right: right}]
	return ok
}

// Combine applies op to left and right using the same rules as the typed
// methods in package form.
func Combine(op Op, left, right form.Node) (form.Node, error) {
	if left == nil || right == nil {
		return nil, ErrNilOperand
	}
	fn, ok := dispatch[dispatchKey{op: op, left: left.Kind(), right: right.Kind()}]
	if !ok {
		return nil, &UnsupportedError{Op: op, Left: left.Kind(), Right: right.Kind()}
	}
	return fn(left, right), nil
}

// AsForm promotes node to a form, wrapping a lone section or row in fresh
// containers. A nil node yields nil.
func AsForm(node form.Node) *form.Form {
	switch n := node.(type) {
	case *form.Form:
		return n
	case *form.Section:
		return form.WrapInNewForm(n)
	case *form.Row:
		return form.WrapInNewForm(form.WrapInNewSection(n))
	default:
		return nil
	}
}
