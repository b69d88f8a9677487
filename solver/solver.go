package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/solve24/enumerate"
	"github.com/katalvlaran/solve24/expr"
	"github.com/katalvlaran/solve24/rpn"
	"github.com/katalvlaran/solve24/stats"
)

// bucket collects the matches of one operand ordering, in triple/shape order.
type bucket struct {
	hits      []rpn.Candidate
	evaluated int
}

// Solve searches every candidate over numbers and returns the distinct
// solutions in discovery order. A Result with no Solutions is a valid outcome.
//
// Complexity: O(24·64·5) evaluations, O(solutions) memory.
func Solve(ctx context.Context, numbers [4]int, opts ...Option) (*Result, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	cfg := newConfig(opts...)
	start := time.Now()
	log := cfg.logger.WithFields(logrus.Fields{"numbers": numbers, "target": cfg.target})

	// 1. Distinct value tuples only.
	tuples, skipped := enumerate.Orderings(numbers)
	if skipped > 0 {
		log.WithField("skipped", skipped).Debug("duplicate orderings skipped")
	}

	// 2. Search each tuple into its own slot; slots keep the merge ordered.
	buckets := make([]bucket, len(tuples))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, t := range tuples {
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buckets[i] = cfg.search(t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAborted, err)
	}

	// 3. Render and drop repeated strings.
	res := &Result{Numbers: numbers, Target: cfg.target}
	seen := make(map[string]struct{})
	for i, b := range buckets {
		res.Summary.Evaluated += b.evaluated
		res.Summary.Matched += len(b.hits)
		for _, c := range b.hits {
			s := expr.Render(c)
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			res.Solutions = append(res.Solutions, Solution{Expr: s, Postfix: c})
		}
		log.WithFields(logrus.Fields{"ordering": tuples[i], "matches": len(b.hits)}).Debug("ordering searched")
	}
	// 4. Summary, metrics, log.
	res.Summary.Orderings = len(tuples)
	res.Summary.Skipped = skipped
	res.Summary.Elapsed = time.Since(start)

	cfg.stats.Record(stats.Sample{
		Evaluated: res.Summary.Evaluated,
		Matched:   res.Summary.Matched,
		Skipped:   skipped,
		Solutions: len(res.Solutions),
		Duration:  res.Summary.Elapsed,
	})
	log.WithFields(logrus.Fields{
		"candidates": res.Summary.Evaluated,
		"matches":    res.Summary.Matched,
		"solutions":  len(res.Solutions),
	}).Info("search complete")

	return res, nil
}

// search walks every triple and shape for one tuple.
//
// Complexity: O(64·5) evaluations.
func (c config) search(nums [4]int) bucket {
	var b bucket
	for _, ops := range enumerate.Triples {
		for _, cand := range enumerate.Variants(nums, ops) {
			b.evaluated++
			if !c.matches(cand) {
				continue
			}
			b.hits = append(b.hits, cand)
			// First-shape mode keeps one hit per triple.
			if c.firstOnly {
				break
			}
		}
	}

	return b
}

// matches evaluates cand and compares it with the target.
func (c config) matches(cand rpn.Candidate) bool {
	if c.exact {
		v, ok := rpn.EvaluateExact(cand).Exact()
		return ok && v == int64(c.target)
	}

	return rpn.Evaluate(cand) == float64(c.target)
}
