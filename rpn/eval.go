package rpn

import (
	"math"

	"github.com/katalvlaran/solve24/ratio"
)

// Apply computes left o right in float64. Division by zero returns NaN so the
// result never compares equal to any target.
func (o Op) Apply(left, right float64) float64 {
	switch o {
	case Add:
		return left + right
	case Sub:
		return left - right
	case Mul:
		return left * right
	case Div:
		if right == 0 {
			return math.NaN()
		}
		return left / right
	}

	return math.NaN()
}

// ApplyExact computes left o right over ratio.Value.
func (o Op) ApplyExact(left, right ratio.Value) ratio.Value {
	switch o {
	case Add:
		return left.Add(right)
	case Sub:
		return left.Sub(right)
	case Mul:
		return left.Mul(right)
	default:
		return left.Div(right)
	}
}

// Evaluate reduces c on a float64 stack. Each Operator pops right (most
// recent) then left and pushes left o right.
//
// Complexity: O(7) time, fixed stack of 4.
func Evaluate(c Candidate) float64 {
	var stack [4]float64
	top := 0
	for _, t := range c {
		if t.Kind == Number {
			stack[top] = float64(t.Value)
			top++
			continue
		}
		// Pop right then left, push the result.
		right := stack[top-1]
		left := stack[top-2]
		top--
		stack[top-1] = t.Op.Apply(left, right)
	}

	return stack[0]
}

// EvaluateExact reduces c on a ratio.Value stack. A zero divisor or an int64
// overflow anywhere in the chain leaves a value that never forces exactly.
//
// Complexity: O(7) time, fixed stack of 4.
func EvaluateExact(c Candidate) ratio.Value {
	var stack [4]ratio.Value
	top := 0
	for _, t := range c {
		if t.Kind == Number {
			stack[top] = ratio.Int(int64(t.Value))
			top++
			continue
		}
		right := stack[top-1]
		left := stack[top-2]
		top--
		stack[top-1] = t.Op.ApplyExact(left, right)
	}

	return stack[0]
}
