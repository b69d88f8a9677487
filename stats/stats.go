// Package stats exposes prometheus metrics for solver runs and exports them
// in the node-exporter textfile format.
package stats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "solve24"

// Sample is the outcome of one search.
type Sample struct {
	Evaluated int
	Matched   int
	Skipped   int
	Solutions int
	Duration  time.Duration
}

// Collector owns the search metrics. A nil *Collector discards samples.
type Collector struct {
	evaluated prometheus.Counter
	matched   prometheus.Counter
	skipped   prometheus.Counter
	solutions prometheus.Counter
	runs      *prometheus.CounterVec
	duration  prometheus.Histogram
}

// New creates a Collector and registers its metrics on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		evaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_evaluated_total",
			Help:      "Postfix candidates evaluated against the target.",
		}),
		matched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_matched_total",
			Help:      "Candidates whose value equals the target.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orderings_skipped_total",
			Help:      "Operand orderings skipped because their value tuple repeats.",
		}),
		solutions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solutions_total",
			Help:      "Distinct solution expressions emitted.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed searches by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one search.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	for _, m := range []prometheus.Collector{c.evaluated, c.matched, c.skipped, c.solutions, c.runs, c.duration} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Record adds one sample.
func (c *Collector) Record(s Sample) {
	if c == nil {
		return
	}
	c.evaluated.Add(float64(s.Evaluated))
	c.matched.Add(float64(s.Matched))
	c.skipped.Add(float64(s.Skipped))
	c.solutions.Add(float64(s.Solutions))
	c.duration.Observe(s.Duration.Seconds())
	outcome := "solved"
	if s.Solutions == 0 {
		outcome = "unsolved"
	}
	c.runs.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes everything g gathers to path, atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
