package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Ingest Metrics
	IngestEdgesTotal     *prometheus.CounterVec
	IngestDuration       *prometheus.HistogramVec
	IngestMalformedTotal prometheus.Counter

	// Graph Metrics
	GraphNodesTotal  prometheus.Gauge
	GraphEdgesTotal  prometheus.Gauge
	GraphTotalWeight prometheus.Gauge

	// Analysis Metrics
	CommunitiesTotal   prometheus.Gauge
	Modularity         prometheus.Gauge
	DetectionPasses    prometheus.Counter
	StageRunsTotal     *prometheus.CounterVec
	StageDuration      *prometheus.HistogramVec
	PipelineRunsTotal  *prometheus.CounterVec
	PipelineDuration   prometheus.Histogram

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initIngestMetrics()
	r.initGraphMetrics()
	r.initAnalysisMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
