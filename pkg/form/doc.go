// Package form defines the three structural descriptors of a form (Form,
// Section, Row) and the two composition operations that link them.
//
// Attach wires Rows into Sections and binds tighter than Append, which wires
// Sections into Forms. Both fold left to right, and whenever an operand sits one
// level below what the operation needs, a header/footer-less container is
// manufactured for it (see WrapInNewSection and WrapInNewForm). In Go the
// precedence falls out of nesting method calls:
//
//	f := form.NewForm().
//		Append(account.Attach(email).Attach(password)).
//		AppendRow(newsletter)
//
// Every operation mutates and returns a live container; nothing is copied and
// nothing is deduplicated. Operand pairs the algebra does not define (Form with
// Form, Row with Section, ...) have no method and cannot be expressed.
//
// Descriptors are plain mutable values with no internal locking. Build a tree
// from a single goroutine, then share it read-only.
package form
