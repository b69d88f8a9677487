// Package rpn defines the postfix (Reverse Polish) encoding of a four-operand
// arithmetic expression and evaluates it with a single stack.
//
// A Candidate is exactly seven Tokens: four Numbers and three Operators. At
// every prefix the Numbers seen outnumber the Operators seen, so a stack
// reduction always ends with one value.
//
//	1 2 + 1 7 + x   ==   (1 + 2) x (1 + 7)
//
// Evaluators:
//
//   - Evaluate:      float64, a zero divisor yields NaN.
//   - EvaluateExact: ratio.Value, exact rational tracking.
//
// Both assume a well-formed Candidate; Valid checks the stack invariant for
// callers that build candidates by hand.
package rpn
