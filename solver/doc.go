// Package solver finds every distinct way to reach 24 from four integers with
// +, -, x, / and any grouping.
//
// Pipeline:
//
//  1. enumerate.Orderings yields each distinct value tuple once.
//  2. For each tuple, every operator triple and tree shape is built as a
//     postfix candidate and evaluated.
//  3. Matching candidates are rendered by expr; a rendering already emitted
//     for an earlier candidate is dropped.
//
// Order is deterministic: ordering outer, triple middle, shape inner. With
// WithWorkers(n > 1) orderings run concurrently but are merged back in that
// same order, so the output is identical to a sequential run.
//
// Usage:
//
//	res, err := solver.Solve(ctx, [4]int{2, 7, 7, 13})
//	if err != nil {
//		return err
//	}
//	res.WriteTo(os.Stdout)
//
// Errors:
//
//   - ErrNilContext: ctx is nil.
//   - ErrAborted:    ctx was cancelled before the search finished.
package solver
