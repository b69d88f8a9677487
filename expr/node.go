package expr

import (
	"strconv"

	"github.com/katalvlaran/solve24/ratio"
	"github.com/katalvlaran/solve24/rpn"
)

// Node is a strict expression tree: a Number leaf, or an Operator with
// exactly two owned children.
type Node struct {
	Token rpn.Token
	Left  *Node
	Right *Node
}

// Leaf returns a Number node.
func Leaf(v int) *Node {
	return &Node{Token: rpn.Num(v)}
}

// Binary returns an Operator node over left and right.
func Binary(op rpn.Op, left, right *Node) *Node {
	return &Node{Token: rpn.Oper(op), Left: left, Right: right}
}

// IsLeaf reports whether n holds a Number.
func (n *Node) IsLeaf() bool { return n.Token.Kind == rpn.Number }

// FromCandidate rebuilds the tree of a well-formed postfix candidate.
// Each Operator pops its right child first, then its left child.
//
// Complexity: O(7) time and space.
func FromCandidate(c rpn.Candidate) *Node {
	stack := make([]*Node, 0, 4)
	for _, t := range c {
		if t.Kind == rpn.Number {
			stack = append(stack, &Node{Token: t})
			continue
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, &Node{Token: t, Left: left, Right: right})
	}

	return stack[0]
}

// Postfix appends the tree in postfix order to dst and returns it.
func (n *Node) Postfix(dst []rpn.Token) []rpn.Token {
	if n.IsLeaf() {
		return append(dst, n.Token)
	}
	dst = n.Left.Postfix(dst)
	dst = n.Right.Postfix(dst)

	return append(dst, n.Token)
}

// Candidate converts n back into a postfix candidate. It reports false when
// the tree does not have exactly four leaves.
func (n *Node) Candidate() (rpn.Candidate, bool) {
	var c rpn.Candidate
	seq := n.Postfix(make([]rpn.Token, 0, rpn.Size))
	if len(seq) != rpn.Size {
		return c, false
	}
	copy(c[:], seq)

	return c, c.Valid()
}

// Eval computes the tree in float64 with the same semantics as rpn.Evaluate.
func (n *Node) Eval() float64 {
	if n.IsLeaf() {
		return float64(n.Token.Value)
	}

	return n.Token.Op.Apply(n.Left.Eval(), n.Right.Eval())
}

// EvalExact computes the tree over ratio.Value.
func (n *Node) EvalExact() ratio.Value {
	if n.IsLeaf() {
		return ratio.Int(int64(n.Token.Value))
	}

	return n.Token.Op.ApplyExact(n.Left.EvalExact(), n.Right.EvalExact())
}

// String renders n as infix text. See the package documentation for the
// parenthesization rules.
//
// Complexity: O(size of the tree).
func (n *Node) String() string {
	if n.IsLeaf() {
		return strconv.Itoa(n.Token.Value)
	}
	op := n.Token.Op
	left := n.Left.String()
	right := n.Right.String()
	if wraps(op, n.Left, false) {
		left = "(" + left + ")"
	}
	if wraps(op, n.Right, true) {
		right = "(" + right + ")"
	}

	return left + " " + op.Symbol() + " " + right
}

// wraps decides whether child needs parentheses under an operator parent.
func wraps(parent rpn.Op, child *Node, right bool) bool {
	if child.IsLeaf() {
		return false
	}
	inner := child.Token.Op
	switch parent {
	case rpn.Sub:
		return right && inner.Additive()
	case rpn.Mul:
		return inner.Additive()
	case rpn.Div:
		return inner.Additive() || right
	default:
		return false
	}
}

// Render is shorthand for FromCandidate(c).String().
func Render(c rpn.Candidate) string {
	return FromCandidate(c).String()
}
