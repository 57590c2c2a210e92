// Package metrics exports branch-and-bound search statistics as Prometheus
// metrics.
//
// A Collector registers its metrics on a caller-supplied registry, so tests
// and the CLI each use their own prometheus.Registry. The CLI writes the
// registry to a node-exporter textfile after a batch; there is no HTTP endpoint.
//
// All operations are safe for concurrent use via Prometheus's internal locking.
package metrics

import (
	"fmt"

	"github.com/katalvlaran/setcover/bnb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "setcover"
	searchSubsystem  = "search"
)

// Collector holds the search metrics.
type Collector struct {
	// SearchesTotal counts finished searches by stop reason and outcome.
	// Labels: reason (exhausted, deadline, ...), outcome (optimal, feasible, infeasible, none)
	SearchesTotal *prometheus.CounterVec

	// NodesTotal counts visited tree nodes over all searches.
	NodesTotal prometheus.Counter

	// FailsTotal counts infeasible nodes.
	FailsTotal prometheus.Counter

	// PrunesTotal counts nodes rejected by the lower bound.
	PrunesTotal prometheus.Counter

	// IncumbentsTotal counts incumbent improvements, warm starts included.
	IncumbentsTotal prometheus.Counter

	// BestCost is the latest incumbent cost per instance.
	// Labels: instance
	BestCost *prometheus.GaugeVec

	// DurationSeconds measures wall time per search.
	DurationSeconds prometheus.Histogram
}

// NewCollector creates the metrics and registers them on reg.
// It panics if reg already holds metrics with the same names.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		SearchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "searches_total",
			Help:      "Finished searches by stop reason and outcome",
		}, []string{"reason", "outcome"}),
		NodesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "nodes_total",
			Help:      "Visited search tree nodes",
		}),
		FailsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "fails_total",
			Help:      "Infeasible search tree nodes",
		}),
		PrunesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "prunes_total",
			Help:      "Search tree nodes rejected by the lower bound",
		}),
		IncumbentsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "incumbents_total",
			Help:      "Incumbent improvements",
		}),
		BestCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "best_cost",
			Help:      "Latest incumbent cost per instance",
		}, []string{"instance"}),
		DurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "duration_seconds",
			Help:      "Search wall time in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		}),
	}
}

// Outcome classifies a result for the outcome label.
func Outcome(res bnb.SearchResult) string {
	switch {
	case res.Found && res.ProvenOptimal:
		return "optimal"
	case res.Found:
		return "feasible"
	case res.ProvenOptimal:
		return "infeasible"
	default:
		return "none"
	}
}

// IncumbentHook returns an OnIncumbent callback that tracks the best cost of
// the named instance. The hook runs inside the search loop and only touches
// the gauge; counters are added once by ObserveResult.
func (c *Collector) IncumbentHook(name string) func(bnb.Incumbent) {
	g := c.BestCost.WithLabelValues(name)

	return func(inc bnb.Incumbent) { g.Set(inc.Cost) }
}

// ObserveResult adds the statistics of one finished search.
func (c *Collector) ObserveResult(name string, res bnb.SearchResult) {
	c.SearchesTotal.WithLabelValues(res.Reason.String(), Outcome(res)).Inc()
	c.NodesTotal.Add(float64(res.Nodes))
	c.FailsTotal.Add(float64(res.Fails))
	c.PrunesTotal.Add(float64(res.Prunes))
	c.IncumbentsTotal.Add(float64(res.Incumbents))
	c.DurationSeconds.Observe(res.Elapsed.Seconds())
	if res.Found {
		c.BestCost.WithLabelValues(name).Set(res.BestCost)
	}
}

// WriteTextfile writes every metric gathered by g to path in the Prometheus
// text format, atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
