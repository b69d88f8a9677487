package stats_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solve24/stats"
)

// TestCollector_Record verifies counters accumulate across samples.
func TestCollector_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := stats.New(reg)
	require.NoError(t, err)

	c.Record(stats.Sample{Evaluated: 100, Matched: 3, Skipped: 12, Solutions: 2, Duration: time.Millisecond})
	c.Record(stats.Sample{Evaluated: 50, Duration: time.Millisecond})

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 7, count, "four counters, two outcomes, one histogram")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				values[mf.GetName()] += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 150.0, values["solve24_candidates_evaluated_total"])
	assert.Equal(t, 3.0, values["solve24_candidates_matched_total"])
	assert.Equal(t, 12.0, values["solve24_orderings_skipped_total"])
	assert.Equal(t, 2.0, values["solve24_solutions_total"])
	assert.Equal(t, 2.0, values["solve24_runs_total"])
}

// TestCollector_DuplicateRegistration reports the registry error.
func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := stats.New(reg)
	require.NoError(t, err)
	_, err = stats.New(reg)
	assert.Error(t, err)
}

// TestCollector_Nil ensures a nil collector is inert.
func TestCollector_Nil(t *testing.T) {
	var c *stats.Collector
	assert.NotPanics(t, func() { c.Record(stats.Sample{Evaluated: 1}) })
}

// TestWriteTextfile checks the exported file carries the metric names.
func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := stats.New(reg)
	require.NoError(t, err)
	c.Record(stats.Sample{Evaluated: 7680, Matched: 1, Solutions: 1})

	path := filepath.Join(t.TempDir(), "solve24.prom")
	require.NoError(t, stats.WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "solve24_candidates_evaluated_total 7680")
	assert.Contains(t, string(data), `solve24_runs_total{outcome="solved"} 1`)
}
