// SPDX-License-Identifier: MIT
// Package: solve24/solver
//
// options.go - functional options and resolved configuration for Solve.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (WithWorkers(0),
//     WithLogger(nil)); Solve itself never panics.
//   • Options apply in order, later overrides earlier.
//
// Defaults:
//   • target    = 24
//   • workers   = 1          (sequential search)
//   • exact     = false      (float64 evaluation, exact equality)
//   • firstOnly = false      (every matching shape is kept)
//   • logger    = discards everything
//   • stats     = nil        (no metrics)

package solver

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/solve24/stats"
)

// DefaultTarget is the value every solution must reach.
const DefaultTarget = 24

// Option customizes a Solve call.
type Option func(*config)

type config struct {
	target    int
	workers   int
	exact     bool
	firstOnly bool
	logger    logrus.FieldLogger
	stats     *stats.Collector
}

func newConfig(opts ...Option) config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	cfg := config{
		target:  DefaultTarget,
		workers: 1,
		logger:  discard,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTarget overrides the value expressions must equal.
func WithTarget(target int) Option {
	return func(c *config) {
		c.target = target
	}
}

// WithWorkers bounds how many operand orderings are searched concurrently.
// Output order does not depend on n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("solver: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithExact evaluates candidates over ratio.Value instead of float64. A
// candidate matches only when it forces exactly to the target integer.
func WithExact() Option {
	return func(c *config) {
		c.exact = true
	}
}

// WithFirstShapeOnly stops the shape search for an operator triple at the
// first shape that matches, so at most one candidate per triple survives.
func WithFirstShapeOnly() Option {
	return func(c *config) {
		c.firstOnly = true
	}
}

// WithLogger routes search diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithStats records each search on col. A nil collector disables metrics.
func WithStats(col *stats.Collector) Option {
	return func(c *config) {
		c.stats = col
	}
}
