// Package expr evaluates composition chains whose operand kinds are only known
// at runtime, such as chains read from layout files or typed at a prompt.
//
// The textual syntax reuses the operator vocabulary of the algebra:
//
//	account <<< email <<< password +++ newsletter
//
// "<<<" (Attach) binds tighter than "+++" (Append); both are left-associative
// and parentheses group. Operands are looked up by name in an Env.
//
// Dispatch is a closed table over (operator, left kind, right kind) holding the
// two Attach and five Append cases of package form. Any other pairing fails
// with an *UnsupportedError instead of guessing a wrapping rule.
package expr
