// Package pipeline runs the full character interaction analysis: load an
// edge list, build the graph, detect communities, summarize them, and
// compute the two layouts.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/terragord7/friends-analysis/pkg/algorithms"
	"github.com/terragord7/friends-analysis/pkg/config"
	"github.com/terragord7/friends-analysis/pkg/edgelist"
	"github.com/terragord7/friends-analysis/pkg/graph"
	"github.com/terragord7/friends-analysis/pkg/logging"
	"github.com/terragord7/friends-analysis/pkg/metrics"
	"github.com/terragord7/friends-analysis/pkg/summary"
	"github.com/terragord7/friends-analysis/pkg/visualization"
)

// Pipeline wires the analysis stages together
type Pipeline struct {
	cfg     *config.Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// Result carries everything a run produced
type Result struct {
	RunID     string
	Edges     []edgelist.Edge
	Graph     *graph.Graph
	Detection *algorithms.CommunityDetectionResult
	Report    *summary.Report
	Spherical map[string]visualization.Position
	Force     map[string]visualization.Position
	StartedAt time.Time
	Duration  time.Duration
}

// New creates a pipeline. A nil logger or registry falls back to the
// package defaults.
func New(cfg *config.Config, logger logging.Logger, reg *metrics.Registry) *Pipeline {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	return &Pipeline{
		cfg:     cfg,
		logger:  logger.With(logging.Component("pipeline")),
		metrics: reg,
	}
}

// Run executes every stage and returns the collected results
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{
		RunID:     uuid.NewString(),
		StartedAt: start,
	}
	logger := p.logger.With(logging.RunID(result.RunID))

	logger.Info("starting analysis run", logging.Source(p.cfg.Input.Source))

	if err := p.loadStage(ctx, logger, result); err != nil {
		p.metrics.RecordPipelineRun("error", time.Since(start))
		return nil, err
	}

	p.buildStage(logger, result)

	if err := p.detectStage(logger, result); err != nil {
		p.metrics.RecordPipelineRun("error", time.Since(start))
		return nil, err
	}

	if err := p.summarizeStage(logger, result); err != nil {
		p.metrics.RecordPipelineRun("error", time.Since(start))
		return nil, err
	}

	if err := p.layoutStage(logger, result); err != nil {
		p.metrics.RecordPipelineRun("error", time.Since(start))
		return nil, err
	}

	result.Duration = time.Since(start)
	p.metrics.RecordPipelineRun("success", result.Duration)
	p.metrics.UpdateSystemMetrics(start)

	logger.Info("analysis run complete",
		logging.Communities(len(result.Detection.Communities)),
		logging.Modularity(result.Detection.Modularity),
		logging.Latency(result.Duration))

	return result, nil
}

func (p *Pipeline) loadStage(ctx context.Context, logger logging.Logger, result *Result) error {
	stageStart := time.Now()

	edges, err := edgelist.Load(ctx, p.cfg.Input.Source, edgelist.SourceOptions{
		S3Region:   p.cfg.Input.S3Region,
		S3Endpoint: p.cfg.Input.S3Endpoint,
	})
	if err != nil {
		p.metrics.RecordStage("load", "error", time.Since(stageStart))
		logger.Error("edge list load failed", logging.Stage("load"), logging.Error(err))
		return fmt.Errorf("load edge list: %w", err)
	}

	result.Edges = edges
	p.metrics.RecordStage("load", "success", time.Since(stageStart))
	p.metrics.RecordIngest(p.cfg.Input.Source, "success", len(edges), time.Since(stageStart))
	logger.Info("edge list loaded", logging.Stage("load"), logging.Edges(len(edges)))
	return nil
}

func (p *Pipeline) buildStage(logger logging.Logger, result *Result) {
	stageStart := time.Now()

	var opts graph.BuildOptions
	if p.cfg.Input.ExcludeCore {
		opts.Exclude = p.cfg.Input.CoreCharacters
	}
	result.Graph = graph.Build(result.Edges, opts)

	p.metrics.RecordStage("build", "success", time.Since(stageStart))
	p.metrics.SetGraphStats(result.Graph.Order(), result.Graph.Size(), result.Graph.TotalWeight())
	logger.Info("graph built",
		logging.Stage("build"),
		logging.Nodes(result.Graph.Order()),
		logging.Edges(result.Graph.Size()))
}

func (p *Pipeline) detectStage(logger logging.Logger, result *Result) error {
	stageStart := time.Now()

	detection, err := algorithms.Louvain(result.Graph, algorithms.LouvainOptions{
		MaxPasses:         p.cfg.Analysis.MaxPasses,
		MinModularityGain: p.cfg.Analysis.MinModularityGain,
	})
	if err != nil {
		p.metrics.RecordStage("detect", "error", time.Since(stageStart))
		logger.Error("community detection failed", logging.Stage("detect"), logging.Error(err))
		return fmt.Errorf("detect communities: %w", err)
	}

	result.Detection = detection
	p.metrics.RecordStage("detect", "success", time.Since(stageStart))
	p.metrics.RecordDetection(len(detection.Communities), detection.Modularity, time.Since(stageStart))
	logger.Info("communities detected",
		logging.Stage("detect"),
		logging.Communities(len(detection.Communities)),
		logging.Modularity(detection.Modularity))
	return nil
}

func (p *Pipeline) summarizeStage(logger logging.Logger, result *Result) error {
	stageStart := time.Now()

	report, err := summary.Summarize(result.Graph, result.Detection, summary.Options{
		SmallThreshold: p.cfg.Summary.SmallThreshold,
		TopK:           p.cfg.Summary.TopK,
	})
	if err != nil {
		p.metrics.RecordStage("summarize", "error", time.Since(stageStart))
		logger.Error("summarization failed", logging.Stage("summarize"), logging.Error(err))
		return fmt.Errorf("summarize communities: %w", err)
	}

	result.Report = report
	p.metrics.RecordStage("summarize", "success", time.Since(stageStart))
	logger.Info("communities summarized",
		logging.Stage("summarize"),
		logging.Count(len(report.Overview)))
	return nil
}

func (p *Pipeline) layoutStage(logger logging.Logger, result *Result) error {
	stageStart := time.Now()

	layoutConfig := visualization.LayoutConfig{
		Width:      p.cfg.Layout.Width,
		Height:     p.cfg.Layout.Height,
		Iterations: p.cfg.Layout.Iterations,
		Padding:    p.cfg.Layout.Padding,
		Seed:       p.cfg.Layout.Seed,
	}

	sphereConfig := layoutConfig
	spherical, err := visualization.NewSphericalLayout(&sphereConfig).ComputeLayout(result.Graph)
	if err != nil {
		p.metrics.RecordStage("layout", "error", time.Since(stageStart))
		return fmt.Errorf("spherical layout: %w", err)
	}

	forceConfig := layoutConfig
	force, err := visualization.NewForceDirectedLayout(&forceConfig).ComputeLayout(result.Graph)
	if err != nil {
		p.metrics.RecordStage("layout", "error", time.Since(stageStart))
		return fmt.Errorf("force-directed layout: %w", err)
	}

	result.Spherical = spherical
	result.Force = force
	p.metrics.RecordStage("layout", "success", time.Since(stageStart))
	logger.Info("layouts computed", logging.Stage("layout"), logging.Nodes(len(spherical)))
	return nil
}
