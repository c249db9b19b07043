package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "friends_graph_nodes_total",
			Help: "Number of characters in the interaction graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "friends_graph_edges_total",
			Help: "Number of interaction edges in the graph",
		},
	)

	r.GraphTotalWeight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "friends_graph_total_weight",
			Help: "Sum of all interaction weights in the graph",
		},
	)
}
