package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.CommunitiesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "friends_analysis_communities_total",
			Help: "Number of communities found by the last detection run",
		},
	)

	r.Modularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "friends_analysis_modularity",
			Help: "Modularity score of the last detected partition",
		},
	)

	r.DetectionPasses = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "friends_analysis_detection_passes_total",
			Help: "Total number of community detection passes executed",
		},
	)

	r.StageRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "friends_analysis_stage_runs_total",
			Help: "Total number of pipeline stage executions",
		},
		[]string{"stage", "status"},
	)

	r.StageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "friends_analysis_stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"stage"},
	)

	r.PipelineRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "friends_analysis_pipeline_runs_total",
			Help: "Total number of end-to-end pipeline runs",
		},
		[]string{"status"},
	)

	r.PipelineDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "friends_analysis_pipeline_duration_seconds",
			Help:    "End-to-end pipeline duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)
}
