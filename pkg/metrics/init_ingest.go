package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initIngestMetrics() {
	r.IngestEdgesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "friends_ingest_edges_total",
			Help: "Total number of edges loaded from edge lists",
		},
		[]string{"source", "status"},
	)

	r.IngestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "friends_ingest_duration_seconds",
			Help:    "Edge list load and parse duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"source"},
	)

	r.IngestMalformedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "friends_ingest_malformed_total",
			Help: "Total number of edge list lines rejected as malformed",
		},
	)
}
