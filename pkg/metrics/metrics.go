package metrics

import (
	"time"
)

// RecordIngest records an edge list load with its duration
func (r *Registry) RecordIngest(source, status string, edges int, duration time.Duration) {
	r.IngestEdgesTotal.WithLabelValues(source, status).Add(float64(edges))
	r.IngestDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// SetGraphStats updates gauges describing the current interaction graph
func (r *Registry) SetGraphStats(nodes, edges int, totalWeight float64) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
	r.GraphTotalWeight.Set(totalWeight)
}

// RecordDetection records the outcome of a community detection run
func (r *Registry) RecordDetection(communities int, modularity float64, duration time.Duration) {
	r.CommunitiesTotal.Set(float64(communities))
	r.Modularity.Set(modularity)
	r.DetectionPasses.Inc()
	r.StageDuration.WithLabelValues("detect").Observe(duration.Seconds())
}

// RecordStage records a pipeline stage execution
func (r *Registry) RecordStage(stage, status string, duration time.Duration) {
	r.StageRunsTotal.WithLabelValues(stage, status).Inc()
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordPipelineRun records an end-to-end pipeline run
func (r *Registry) RecordPipelineRun(status string, duration time.Duration) {
	r.PipelineRunsTotal.WithLabelValues(status).Inc()
	r.PipelineDuration.Observe(duration.Seconds())
}
