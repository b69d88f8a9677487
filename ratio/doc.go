// Package ratio provides an exact, lazily reduced rational Value for
// integer arithmetic that may pass through non-integer intermediates.
//
// What:
//
//   - A Value is either resolved (an exact int64) or deferred, holding an
//     unreduced dividend/divisor pair.
//   - Every operation cross-multiplies the pairs and re-normalizes: the result
//     collapses to an exact integer as soon as the division is exact.
//   - Division by zero is never a panic. It yields a deferred pair with a zero
//     divisor, which stays deferred through any further arithmetic.
//
// Why:
//
//   - Expressions like 8 / (3 - 8 / 3) are exactly 24, while the same chain in
//     float64 lands a few ulps short.
//
// Forcing:
//
//   - Calculate returns the integer, or 0 when the value is not one.
//   - Exact reports the integer together with a success flag.
//
// Overflow:
//
//   - Operands are int64. An operation whose cross-multiplication would wrap
//     returns Invalid (0/0) instead, so a wrapped product can never force to
//     an integer.
//
// Complexity: every operation is O(1).
package ratio
