// Package solve24 finds every way to make 24 from four integers using
// +, -, x, / and any grouping, and prints each distinct expression once.
//
// 🚀 What is in here?
//
//	A small, deterministic search engine split by concern:
//		• ratio/     - exact lazy fractions (integer or deferred dividend/divisor)
//		• rpn/       - postfix tokens, candidates, float64 and exact evaluators
//		• enumerate/ - 24 orderings × 64 operator triples × 5 tree shapes
//		• expr/      - expression trees, minimal-parentheses printer, parser
//		• solver/    - search, ordered string dedup, options, concurrency
//		• stats/     - prometheus counters for searches
//		• report/    - text, JSON and YAML output
//		• cmd/solve24 - the command-line tool
//
// Quick example:
//
//	$ solve24 1 1 1 1
//	Cannot get 24 from [1, 1, 1, 1]
//	$ solve24 --exact 3 3 8 8
//	01. 8 / (3 - 8 / 3)
//
// The search space is fixed at 7,680 candidates, so every run is fast and
// always produces the same output in the same order.
package solve24
