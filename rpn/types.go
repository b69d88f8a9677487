package rpn

import (
	"strconv"
	"strings"
)

// Op is one of the four binary arithmetic operators.
type Op uint8

const (
	Add Op = iota
	Sub
	Mul
	Div
)

// Ops lists every operator in enumeration order.
var Ops = [4]Op{Add, Sub, Mul, Div}

// Symbol returns the printable operator: "+", "-", "x" or "/".
func (o Op) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "x"
	case Div:
		return "/"
	}

	return "?"
}

// String returns the operator name.
func (o Op) String() string {
	switch o {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	}

	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Additive reports whether o is Add or Sub.
func (o Op) Additive() bool { return o == Add || o == Sub }

// Kind distinguishes operand tokens from operator tokens.
type Kind uint8

const (
	// Number is a leaf operand.
	Number Kind = iota
	// Operator combines the two values below it on the stack.
	Operator
)

// Token is a tagged postfix element. Value is meaningful for Numbers,
// Op for Operators.
type Token struct {
	Kind  Kind
	Value int
	Op    Op
}

// Num returns a Number token.
func Num(v int) Token { return Token{Kind: Number, Value: v} }

// Oper returns an Operator token.
func Oper(o Op) Token { return Token{Kind: Operator, Op: o} }

// IsNumber reports whether t is a leaf operand.
func (t Token) IsNumber() bool { return t.Kind == Number }

// String renders the number in decimal or the operator symbol.
func (t Token) String() string {
	if t.Kind == Number {
		return strconv.Itoa(t.Value)
	}

	return t.Op.Symbol()
}

// Size is the fixed length of a Candidate.
const Size = 7

// Candidate is a postfix encoding of four operands and three operators.
type Candidate [Size]Token

// Valid reports whether c holds four Numbers and three Operators and never
// underflows the evaluation stack.
func (c Candidate) Valid() bool {
	depth, numbers := 0, 0
	for _, t := range c {
		if t.Kind == Number {
			depth++
			numbers++
			continue
		}
		if depth < 2 {
			return false
		}
		depth--
	}

	return depth == 1 && numbers == 4
}

// Numbers returns the operands in the order they are pushed.
func (c Candidate) Numbers() [4]int {
	var out [4]int
	i := 0
	for _, t := range c {
		if t.Kind == Number && i < len(out) {
			out[i] = t.Value
			i++
		}
	}

	return out
}

// String renders the postfix sequence space-separated, e.g. "1 2 + 1 7 + x".
func (c Candidate) String() string {
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = t.String()
	}

	return strings.Join(parts, " ")
}
