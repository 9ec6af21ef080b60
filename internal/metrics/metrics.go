// SPDX-License-Identifier: MIT
// Package metrics holds the Prometheus collectors reported by ccount.
//
// Collectors live on a private registry so tests and repeated runs never
// collide with the global default registry.
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/arenagraph/core"
)

// Metrics bundles the registry and the counting collectors.
type Metrics struct {
	registry *prometheus.Registry

	mu      sync.Mutex
	largest int

	GraphsBuilt     prometheus.Counter
	EdgesAllocated  prometheus.Counter
	ComponentsFound *prometheus.CounterVec
	CountDuration   *prometheus.HistogramVec
	CountErrors     *prometheus.CounterVec
	LargestGraph    prometheus.Gauge
}

// New creates the collectors on a fresh registry, together with the Go
// runtime collector.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m := &Metrics{registry: reg}
	m.GraphsBuilt = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "arenagraph_graphs_built_total",
		Help: "Total number of graphs parsed or generated.",
	})
	m.EdgesAllocated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "arenagraph_edges_allocated_total",
		Help: "Total number of arena edge slots used by parsed graphs.",
	})
	m.ComponentsFound = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arenagraph_components_found_total",
		Help: "Total number of connected components found, labelled by strategy.",
	}, []string{"strategy"})
	m.CountDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arenagraph_count_duration_seconds",
		Help:    "Component counting latency in seconds, labelled by strategy.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"strategy"})
	m.CountErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arenagraph_count_errors_total",
		Help: "Total number of failed parse or count attempts, labelled by stage.",
	}, []string{"stage"})
	m.LargestGraph = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "arenagraph_largest_graph_nodes",
		Help: "Node count of the largest graph seen in this run.",
	})
	reg.MustRegister(m.GraphsBuilt, m.EdgesAllocated, m.ComponentsFound,
		m.CountDuration, m.CountErrors, m.LargestGraph)

	return m
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveGraph records a freshly built graph.
func (m *Metrics) ObserveGraph(g *core.Graph) {
	st := g.Stats()
	m.GraphsBuilt.Inc()
	m.EdgesAllocated.Add(float64(st.EdgeCount))

	m.mu.Lock()
	defer m.mu.Unlock()
	if st.NodeCount > m.largest {
		m.largest = st.NodeCount
		m.LargestGraph.Set(float64(st.NodeCount))
	}
}

// ObserveCount records one counting run.
func (m *Metrics) ObserveCount(strategy string, components int, took time.Duration) {
	m.ComponentsFound.WithLabelValues(strategy).Add(float64(components))
	m.CountDuration.WithLabelValues(strategy).Observe(took.Seconds())
}

// ObserveError records a failure at the given stage (parse, count, ...).
func (m *Metrics) ObserveError(stage string) {
	m.CountErrors.WithLabelValues(stage).Inc()
}

// WriteTextfile writes every collector in the text exposition format to
// path, suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
