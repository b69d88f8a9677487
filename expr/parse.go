package expr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/solve24/rpn"
)

// ErrSyntax indicates the input text is not a well-formed expression.
var ErrSyntax = errors.New("expr: syntax error")

type lexKind uint8

const (
	lexNum lexKind = iota
	lexOp
	lexOpen
	lexClose
	lexEOF
)

type lexeme struct {
	kind lexKind
	num  int
	op   rpn.Op
	pos  int
}

// lex splits s into numbers, operators and parentheses. A '-' directly
// followed by a digit where an operand is expected is a negative literal.
func lex(s string) ([]lexeme, error) {
	var out []lexeme
	wantOperand := true
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
			continue
		case isDigit(c) || (c == '-' && wantOperand && i+1 < len(s) && isDigit(s[i+1])):
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			v, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q at %d", ErrSyntax, s[i:j], i)
			}
			out = append(out, lexeme{kind: lexNum, num: v, pos: i})
			wantOperand = false
			i = j
			continue
		case c == '(':
			out = append(out, lexeme{kind: lexOpen, pos: i})
			wantOperand = true
		case c == ')':
			out = append(out, lexeme{kind: lexClose, pos: i})
			wantOperand = false
		default:
			op, ok := opFor(c)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, c, i)
			}
			out = append(out, lexeme{kind: lexOp, op: op, pos: i})
			wantOperand = true
		}
		i++
	}

	return append(out, lexeme{kind: lexEOF, pos: len(s)}), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func opFor(c byte) (rpn.Op, bool) {
	switch c {
	case '+':
		return rpn.Add, true
	case '-':
		return rpn.Sub, true
	case 'x', 'X', '*':
		return rpn.Mul, true
	case '/':
		return rpn.Div, true
	}

	return 0, false
}

type parser struct {
	toks []lexeme
	at   int
}

func (p *parser) peek() lexeme { return p.toks[p.at] }

func (p *parser) next() lexeme {
	t := p.toks[p.at]
	if t.kind != lexEOF {
		p.at++
	}

	return t
}

// Parse reads an infix expression over integers with +, -, x (or *), / and
// parentheses, using standard precedence and left associativity.
//
// Complexity: O(len(s)) time, recursion depth bounded by nesting.
func Parse(s string) (*Node, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	// 1. Full expression, then nothing but EOF.
	p := &parser{toks: toks}
	n, err := p.sum()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != lexEOF {
		return nil, fmt.Errorf("%w: trailing input at %d", ErrSyntax, t.pos)
	}

	return n, nil
}

// sum := product (('+' | '-') product)*
func (p *parser) sum() (*Node, error) {
	left, err := p.product()
	if err != nil {
		return nil, err
	}
	for t := p.peek(); t.kind == lexOp && t.op.Additive(); t = p.peek() {
		p.next()
		right, err := p.product()
		if err != nil {
			return nil, err
		}
		left = Binary(t.op, left, right)
	}

	return left, nil
}

// product := factor (('x' | '/') factor)*
func (p *parser) product() (*Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for t := p.peek(); t.kind == lexOp && !t.op.Additive(); t = p.peek() {
		p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = Binary(t.op, left, right)
	}

	return left, nil
}

// factor := number | '(' sum ')'
func (p *parser) factor() (*Node, error) {
	t := p.next()
	switch t.kind {
	case lexNum:
		return Leaf(t.num), nil
	case lexOpen:
		n, err := p.sum()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != lexClose {
			return nil, fmt.Errorf("%w: missing ')' at %d", ErrSyntax, c.pos)
		}
		return n, nil
	case lexEOF:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	default:
		return nil, fmt.Errorf("%w: expected operand at %d", ErrSyntax, t.pos)
	}
}
