package expr

import (
	"fmt"

	"github.com/goliatone/go-formcompose/pkg/form"
)

type term struct {
	node  form.Node
	group *Builder
}

func (t term) eval() (form.Node, error) {
	if t.group != nil {
		return t.group.Eval()
	}
	if t.node == nil {
		return nil, ErrNilOperand
	}
	return t.node, nil
}

// Builder records an unparenthesised chain of operands and operators. Nested
// builders act as parenthesised groups.
type Builder struct {
	terms []term
	ops   []Op
}

// Of starts a chain with node.
func Of(node form.Node) *Builder {
	return &Builder{terms: []term{{node: node}}}
}

// OfGroup starts a chain with a parenthesised sub-expression.
func OfGroup(group *Builder) *Builder {
	return &Builder{terms: []term{{group: group}}}
}

// Attach adds "<<< node" to the chain.
func (b *Builder) Attach(node form.Node) *Builder {
	return b.push(OpAttach, term{node: node})
}

// Append adds "+++ node" to the chain.
func (b *Builder) Append(node form.Node) *Builder {
	return b.push(OpAppend, term{node: node})
}

// AttachGroup adds "<<< (group)" to the chain.
func (b *Builder) AttachGroup(group *Builder) *Builder {
	return b.push(OpAttach, term{group: group})
}

// AppendGroup adds "+++ (group)" to the chain.
func (b *Builder) AppendGroup(group *Builder) *Builder {
	return b.push(OpAppend, term{group: group})
}

func (b *Builder) push(op Op, t term) *Builder {
	b.ops = append(b.ops, op)
	b.terms = append(b.terms, t)
	return b
}

// Eval folds the chain and returns the resulting descriptor.
//
// Operands are visited left to right. An Attach is applied as soon as its right
// operand is known; an Append is held back until the Attach run to its right is
// complete. That gives the same result and the same mutation order as a fully
// parenthesised expression with Attach binding tighter.
func (b *Builder) Eval() (form.Node, error) {
	if b == nil || len(b.terms) == 0 {
		return nil, fmt.Errorf("expr: empty chain: %w", ErrNilOperand)
	}

	current, err := b.terms[0].eval()
	if err != nil {
		return nil, err
	}

	var pending form.Node
	for i, op := range b.ops {
		if op == OpAppend && pending != nil {
			if pending, err = Combine(OpAppend, pending, current); err != nil {
				return nil, err
			}
		}

		var next form.Node
		if next, err = b.terms[i+1].eval(); err != nil {
			return nil, err
		}

		switch op {
		case OpAttach:
			if current, err = Combine(OpAttach, current, next); err != nil {
				return nil, err
			}
		case OpAppend:
			if pending == nil {
				pending = current
			}
			current = next
		default:
			return nil, fmt.Errorf("expr: unknown operator %d", int(op))
		}
	}

	if pending == nil {
		return current, nil
	}
	return Combine(OpAppend, pending, current)
}

// EvalForm evaluates the chain and promotes the result with AsForm.
func (b *Builder) EvalForm() (*form.Form, error) {
	node, err := b.Eval()
	if err != nil {
		return nil, err
	}
	return AsForm(node), nil
}
