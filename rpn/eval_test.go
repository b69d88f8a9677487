package rpn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solve24/rpn"
)

var (
	n   = rpn.Num
	add = rpn.Oper(rpn.Add)
	sub = rpn.Oper(rpn.Sub)
	mul = rpn.Oper(rpn.Mul)
	div = rpn.Oper(rpn.Div)
)

// TestEvaluate_Balanced checks (1 + 2) x (1 + 7).
func TestEvaluate_Balanced(t *testing.T) {
	c := rpn.Candidate{n(1), n(2), add, n(1), n(7), add, mul}
	assert.Equal(t, 24.0, rpn.Evaluate(c))
	assert.Equal(t, "1 2 + 1 7 + x", c.String())
}

// TestEvaluate_Duplicates checks (13 - 7 / 7) x 2.
func TestEvaluate_Duplicates(t *testing.T) {
	c := rpn.Candidate{n(13), n(7), n(7), div, sub, n(2), mul}
	assert.Equal(t, 24.0, rpn.Evaluate(c))
	assert.Equal(t, [4]int{13, 7, 7, 2}, c.Numbers())
}

// TestEvaluate_OperandOrder verifies the first pop is the right operand.
func TestEvaluate_OperandOrder(t *testing.T) {
	c := rpn.Candidate{n(9), n(3), sub, n(12), div, n(1), sub}
	// ((9 - 3) / 12) - 1
	assert.Equal(t, -0.5, rpn.Evaluate(c))
}

// TestEvaluate_DivideByZero verifies a zero divisor never yields a number.
func TestEvaluate_DivideByZero(t *testing.T) {
	c := rpn.Candidate{n(4), n(2), n(2), sub, div, n(24), add}
	assert.True(t, math.IsNaN(rpn.Evaluate(c)))

	v := rpn.EvaluateExact(c)
	_, ok := v.Exact()
	assert.False(t, ok, "exact evaluator must not resolve a zero divisor")
}

// TestEvaluateExact_Thirds confirms the exact path recovers 8 / (3 - 8 / 3).
func TestEvaluateExact_Thirds(t *testing.T) {
	c := rpn.Candidate{n(8), n(3), n(8), n(3), div, sub, div}
	got, ok := rpn.EvaluateExact(c).Exact()
	require.True(t, ok)
	assert.Equal(t, int64(24), got)
	assert.InDelta(t, 24.0, rpn.Evaluate(c), 1e-9)
}

//----------------------------------------------------------------------------//
// Valid
//----------------------------------------------------------------------------//

// TestCandidate_Valid checks the stack invariant on good and bad sequences.
func TestCandidate_Valid(t *testing.T) {
	cases := []struct {
		name string
		c    rpn.Candidate
		ok   bool
	}{
		{"LeftChain", rpn.Candidate{n(1), n(2), add, n(3), add, n(4), add}, true},
		{"RightChain", rpn.Candidate{n(1), n(2), n(3), n(4), add, add, add}, true},
		{"Underflow", rpn.Candidate{n(1), add, n(2), n(3), add, n(4), add}, false},
		{"Leftover", rpn.Candidate{n(1), n(2), n(3), n(4), n(5), add, add}, false},
		{"FiveOperands", rpn.Candidate{n(1), n(2), add, n(3), n(4), n(5), add}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.c.Valid())
		})
	}
}

// TestOp_Strings covers symbols and names.
func TestOp_Strings(t *testing.T) {
	assert.Equal(t, []string{"+", "-", "x", "/"}, []string{
		rpn.Add.Symbol(), rpn.Sub.Symbol(), rpn.Mul.Symbol(), rpn.Div.Symbol(),
	})
	assert.Equal(t, "Mul", rpn.Mul.String())
	assert.Equal(t, "Op(9)", rpn.Op(9).String())
	assert.True(t, rpn.Sub.Additive())
	assert.False(t, rpn.Div.Additive())
}
