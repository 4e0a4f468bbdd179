// Package metrics exposes solver counters through a private Prometheus
// registry and writes them in the textfile-collector format.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/calcpath/tree"
)

const namespace = "calcpath"

// Outcome labels.
const (
	OutcomeSolved   = "solved"
	OutcomeUnsolved = "unsolved"
	OutcomeError    = "error"
)

// Recorder accumulates metrics for one CLI process.
type Recorder struct {
	registry     *prometheus.Registry
	solves       *prometheus.CounterVec
	nodes        prometheus.Counter
	leaves       prometheus.Counter
	rejections   *prometheus.CounterVec
	buildSeconds prometheus.Histogram
	pathLength   prometheus.Histogram
}

// NewRecorder registers every collector on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Searches run, by outcome.",
		}, []string{"outcome"}),
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tree_nodes_total",
			Help:      "Search tree nodes materialized.",
		}),
		leaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tree_leaves_total",
			Help:      "Search tree nodes with no moves left.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_presses_total",
			Help:      "Button presses that produced no child, by reason.",
		}, []string{"reason"}),
		buildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Wall time spent materializing the search tree.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		pathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_steps",
			Help:      "Number of presses in found solutions.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
	}

	r.registry.MustRegister(r.solves, r.nodes, r.leaves, r.rejections, r.buildSeconds, r.pathLength)

	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records the outcome of a tree.Solve call. res may be nil.
func (r *Recorder) Observe(res *tree.Result, err error) {
	switch {
	case err == nil:
		r.solves.WithLabelValues(OutcomeSolved).Inc()
	case errors.Is(err, tree.ErrNoSolution):
		r.solves.WithLabelValues(OutcomeUnsolved).Inc()
	default:
		r.solves.WithLabelValues(OutcomeError).Inc()
	}

	if res == nil || res.Stats == nil {
		return
	}
	r.nodes.Add(float64(res.Stats.Nodes))
	r.leaves.Add(float64(res.Stats.Leaves))
	for reason, n := range res.Stats.Rejected {
		r.rejections.WithLabelValues(reason).Add(float64(n))
	}
	r.buildSeconds.Observe(res.Stats.Elapsed.Seconds())
	if res.Found() {
		r.pathLength.Observe(float64(len(res.Steps)))
	}
}

// WriteTextfile writes the current values to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
