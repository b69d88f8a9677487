package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solve24/expr"
	"github.com/katalvlaran/solve24/rpn"
)

var (
	n   = rpn.Num
	add = rpn.Oper(rpn.Add)
	sub = rpn.Oper(rpn.Sub)
	mul = rpn.Oper(rpn.Mul)
	div = rpn.Oper(rpn.Div)
)

//----------------------------------------------------------------------------//
// Rendering
//----------------------------------------------------------------------------//

// TestRender covers each parenthesization rule on both child positions.
func TestRender(t *testing.T) {
	cases := []struct {
		name string
		c    rpn.Candidate
		want string
	}{
		{"AddNeverWraps", rpn.Candidate{n(1), n(2), n(3), sub, n(4), mul, add}, "1 + (2 - 3) x 4"},
		{"AddRightSub", rpn.Candidate{n(1), n(2), n(3), n(4), sub, add, add}, "1 + 2 + 3 - 4"},
		{"SubLeftSub", rpn.Candidate{n(9), n(2), sub, n(3), sub, n(4), sub}, "9 - 2 - 3 - 4"},
		{"SubRightSub", rpn.Candidate{n(9), n(2), n(3), n(4), sub, sub, sub}, "9 - (2 - (3 - 4))"},
		{"SubRightAdd", rpn.Candidate{n(12), n(3), mul, n(5), n(7), add, sub}, "12 x 3 - (5 + 7)"},
		{"SubRightMul", rpn.Candidate{n(30), n(2), n(3), mul, sub, n(0), add}, "30 - 2 x 3 + 0"},
		{"MulWrapsAdditive", rpn.Candidate{n(1), n(2), add, n(1), n(7), add, mul}, "(1 + 2) x (1 + 7)"},
		{"MulKeepsDiv", rpn.Candidate{n(6), n(8), n(2), div, mul, n(1), mul}, "6 x 8 / 2 x 1"},
		{"DivLeftMul", rpn.Candidate{n(6), n(8), mul, n(2), div, n(1), div}, "6 x 8 / 2 / 1"},
		{"DivRightSub", rpn.Candidate{n(8), n(3), n(8), n(3), div, sub, div}, "8 / (3 - 8 / 3)"},
		{"DivRightMul", rpn.Candidate{n(48), n(1), n(2), n(1), mul, mul, div}, "48 / (1 x 2 x 1)"},
		{"DuplicateSevens", rpn.Candidate{n(13), n(7), n(7), div, sub, n(2), mul}, "(13 - 7 / 7) x 2"},
		{"Negative", rpn.Candidate{n(4), n(-2), sub, n(4), mul, n(0), add}, "(4 - -2) x 4 + 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.c.Valid())
			assert.Equal(t, tc.want, expr.Render(tc.c))
		})
	}
}

// TestFromCandidate_Structure verifies operand order and ownership.
func TestFromCandidate_Structure(t *testing.T) {
	root := expr.FromCandidate(rpn.Candidate{n(1), n(2), n(3), sub, n(4), sub, sub})
	// 1 - ((2 - 3) - 4)
	require.False(t, root.IsLeaf())
	assert.Equal(t, rpn.Sub, root.Token.Op)
	assert.Equal(t, 1, root.Left.Token.Value)
	assert.Equal(t, 4, root.Right.Right.Token.Value)
	assert.Equal(t, 2, root.Right.Left.Left.Token.Value)
	assert.Equal(t, 1.0-((2.0-3.0)-4.0), root.Eval())
}

// TestCandidate_RoundTrip rebuilds candidates from trees.
func TestCandidate_RoundTrip(t *testing.T) {
	want := rpn.Candidate{n(1), n(2), add, n(1), n(7), add, mul}
	got, ok := expr.FromCandidate(want).Candidate()
	require.True(t, ok)
	assert.Equal(t, want, got)

	short, err := expr.Parse("1 + 2")
	require.NoError(t, err)
	_, ok = short.Candidate()
	assert.False(t, ok, "two leaves cannot form a candidate")
}

// TestRender_ReparsesExactly checks that every rendering parses back to the
// same exact value as the candidate.
func TestRender_ReparsesExactly(t *testing.T) {
	cands := []rpn.Candidate{
		{n(12), n(3), mul, n(5), n(7), add, sub},
		{n(9), n(2), n(3), n(4), sub, sub, sub},
		{n(6), n(8), n(2), div, mul, n(1), mul},
		{n(8), n(3), n(8), n(3), div, sub, div},
		{n(1), n(2), n(3), n(4), sub, add, add},
		{n(48), n(1), n(2), n(1), mul, mul, div},
		{n(4), n(-2), sub, n(4), mul, n(0), add},
	}
	for _, c := range cands {
		s := expr.Render(c)
		parsed, err := expr.Parse(s)
		require.NoError(t, err, s)
		assert.True(t, parsed.EvalExact().Equal(rpn.EvaluateExact(c)), "%s != %s", s, c)
	}
}
