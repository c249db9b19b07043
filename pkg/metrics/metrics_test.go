package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Verify all metrics are initialized
	if r.IngestEdgesTotal == nil {
		t.Error("IngestEdgesTotal not initialized")
	}
	if r.GraphNodesTotal == nil {
		t.Error("GraphNodesTotal not initialized")
	}
	if r.CommunitiesTotal == nil {
		t.Error("CommunitiesTotal not initialized")
	}
	if r.StageDuration == nil {
		t.Error("StageDuration not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	// Should return the same instance
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordIngest(t *testing.T) {
	r := NewRegistry()

	r.RecordIngest("data/friends.csv", "success", 57, 20*time.Millisecond)
	r.RecordIngest("data/friends.csv", "success", 3, 5*time.Millisecond)

	counter, err := r.IngestEdgesTotal.GetMetricWithLabelValues("data/friends.csv", "success")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 60 {
		t.Errorf("Counter value = %v, want 60", metric.Counter.GetValue())
	}
}

func TestSetGraphStats(t *testing.T) {
	r := NewRegistry()

	r.SetGraphStats(42, 117, 530.5)

	var metric dto.Metric
	if err := r.GraphNodesTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 42 {
		t.Errorf("GraphNodesTotal = %v, want 42", metric.Gauge.GetValue())
	}

	if err := r.GraphTotalWeight.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 530.5 {
		t.Errorf("GraphTotalWeight = %v, want 530.5", metric.Gauge.GetValue())
	}
}

func TestRecordDetection(t *testing.T) {
	r := NewRegistry()

	r.RecordDetection(6, 0.41, 30*time.Millisecond)
	r.RecordDetection(5, 0.44, 25*time.Millisecond)

	var metric dto.Metric
	if err := r.CommunitiesTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 5 {
		t.Errorf("CommunitiesTotal = %v, want 5 (last run wins)", metric.Gauge.GetValue())
	}

	if err := r.Modularity.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 0.44 {
		t.Errorf("Modularity = %v, want 0.44", metric.Gauge.GetValue())
	}

	if err := r.DetectionPasses.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("DetectionPasses = %v, want 2", metric.Counter.GetValue())
	}
}

func TestRecordStage(t *testing.T) {
	r := NewRegistry()

	r.RecordStage("load", "success", 10*time.Millisecond)
	r.RecordStage("load", "success", 12*time.Millisecond)
	r.RecordStage("load", "error", 1*time.Millisecond)

	counter, err := r.StageRunsTotal.GetMetricWithLabelValues("load", "success")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("success count = %v, want 2", metric.Counter.GetValue())
	}

	errCounter, err := r.StageRunsTotal.GetMetricWithLabelValues("load", "error")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if err := errCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("error count = %v, want 1", metric.Counter.GetValue())
	}
}

func TestRegistryGather(t *testing.T) {
	r := NewRegistry()
	r.SetGraphStats(10, 20, 100)

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() == "friends_graph_nodes_total" {
			found = true
		}
	}
	if !found {
		t.Error("friends_graph_nodes_total not exported by registry")
	}
}
