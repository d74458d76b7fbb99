package expr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formcompose/pkg/form"
)

// ErrUnknownOperand is wrapped when an expression names a descriptor missing
// from the Env.
var ErrUnknownOperand = errors.New("expr: unknown operand")

// Env maps operand names to descriptors.
type Env map[string]form.Node

// Names returns the env keys in sorted order.
func (e Env) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SyntaxError reports malformed expression text. Offset is a byte offset into
// the source.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error at offset %d: %s", e.Offset, e.Msg)
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenAppend
	tokenAttach
	tokenLParen
	tokenRParen
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

func tokenize(src string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(src); {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case strings.HasPrefix(src[i:], "+++"):
			tokens = append(tokens, token{kind: tokenAppend, text: "+++", offset: i})
			i += 3
		case strings.HasPrefix(src[i:], "<<<"):
			tokens = append(tokens, token{kind: tokenAttach, text: "<<<", offset: i})
			i += 3
		case ch == '(':
			tokens = append(tokens, token{kind: tokenLParen, text: "(", offset: i})
			i++
		case ch == ')':
			tokens = append(tokens, token{kind: tokenRParen, text: ")", offset: i})
			i++
		case isIdentStart(ch):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: src[start:i], offset: start})
		default:
			return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unexpected character %q", ch)}
		}
	}
	tokens = append(tokens, token{kind: tokenEOF, offset: len(src)})
	return tokens, nil
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9') || ch == '.' || ch == '-'
}

type parser struct {
	tokens []token
	pos    int
	env    Env
}

// Parse turns source into a Builder, resolving operand names against env.
func Parse(source string, env Env) (*Builder, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	if tokens[0].kind == tokenEOF {
		return nil, &SyntaxError{Offset: 0, Msg: "empty expression"}
	}
	p := &parser{tokens: tokens, env: env}
	b, err := p.chain()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, &SyntaxError{Offset: tok.offset, Msg: fmt.Sprintf("unexpected %q", tok.text)}
	}
	return b, nil
}

// Evaluate parses and evaluates source in one step.
func Evaluate(source string, env Env) (form.Node, error) {
	b, err := Parse(source, env)
	if err != nil {
		return nil, err
	}
	return b.Eval()
}

// EvaluateForm parses and evaluates source, promoting the result to a form.
func EvaluateForm(source string, env Env) (*form.Form, error) {
	b, err := Parse(source, env)
	if err != nil {
		return nil, err
	}
	return b.EvalForm()
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) chain() (*Builder, error) {
	first, err := p.primary()
	if err != nil {
		return nil, err
	}
	b := &Builder{terms: []term{first}}
	for {
		var op Op
		switch p.peek().kind {
		case tokenAppend:
			op = OpAppend
		case tokenAttach:
			op = OpAttach
		default:
			return b, nil
		}
		p.next()
		operand, err := p.primary()
		if err != nil {
			return nil, err
		}
		b.push(op, operand)
	}
}

func (p *parser) primary() (term, error) {
	tok := p.next()
	switch tok.kind {
	case tokenIdent:
		node, ok := p.env[tok.text]
		if !ok || node == nil {
			return term{}, fmt.Errorf("%w %q at offset %d", ErrUnknownOperand, tok.text, tok.offset)
		}
		return term{node: node}, nil
	case tokenLParen:
		group, err := p.chain()
		if err != nil {
			return term{}, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return term{}, &SyntaxError{Offset: closing.offset, Msg: "expected \")\""}
		}
		return term{group: group}, nil
	case tokenEOF:
		return term{}, &SyntaxError{Offset: tok.offset, Msg: "expected operand, got end of input"}
	default:
		return term{}, &SyntaxError{Offset: tok.offset, Msg: fmt.Sprintf("expected operand, got %q", tok.text)}
	}
}
