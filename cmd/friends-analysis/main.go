package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/terragord7/friends-analysis/pkg/config"
	"github.com/terragord7/friends-analysis/pkg/logging"
	"github.com/terragord7/friends-analysis/pkg/metrics"
	"github.com/terragord7/friends-analysis/pkg/pipeline"
	"github.com/terragord7/friends-analysis/pkg/report"
	"github.com/terragord7/friends-analysis/pkg/visualization"
)

func main() {
	var (
		configFile = flag.String("config", "", "YAML configuration file (optional)")
		source     = flag.String("source", "", "Edge list source: path, http(s) URL, or s3:// URI")
		outputDir  = flag.String("output", "", "Directory for HTML and SVG output")
		logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
		keepCore   = flag.Bool("keep-core", false, "Keep edges between core cast members")
	)
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags win over the config file
	if *source != "" {
		cfg.Input.Source = *source
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *keepCore {
		cfg.Input.ExcludeCore = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	fmt.Println("📺 Friends Interaction Analysis - Starting...")
	fmt.Printf("   Source: %s\n", cfg.Input.Source)

	p := pipeline.New(cfg, logger, metrics.DefaultRegistry())
	result, err := p.Run(context.Background())
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	fmt.Printf("✅ Loaded %d edges, built graph with %d characters\n",
		len(result.Edges), result.Graph.Order())
	fmt.Printf("🔍 Found %d communities (modularity %.4f)\n",
		len(result.Detection.Communities), result.Detection.Modularity)

	// Text report goes to stdout
	fmt.Println()
	fmt.Println(report.Render(result.Report))

	if err := writeOutputs(cfg, result); err != nil {
		log.Fatalf("Failed to write outputs: %v", err)
	}

	fmt.Printf("📁 Outputs written to %s (run %s)\n", cfg.Output.Dir, result.RunID)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

func writeOutputs(cfg *config.Config, result *pipeline.Result) error {
	if !cfg.Output.HTML && !cfg.Output.SVG {
		return nil
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if cfg.Output.HTML {
		if err := writeHTMLReport(filepath.Join(cfg.Output.Dir, "report.html"), result); err != nil {
			return err
		}
		fmt.Println("📄 Wrote report.html")
	}

	if cfg.Output.SVG {
		labels := result.Detection.NodeCommunity
		width, height := cfg.Layout.Width, cfg.Layout.Height

		if err := writeSVGFile(filepath.Join(cfg.Output.Dir, "spherical.svg"),
			result, result.Spherical, labels, width, height); err != nil {
			return err
		}
		fmt.Println("🌐 Wrote spherical.svg")

		if err := writeSVGFile(filepath.Join(cfg.Output.Dir, "force.svg"),
			result, result.Force, labels, width, height); err != nil {
			return err
		}
		fmt.Println("🧲 Wrote force.svg")
	}

	return nil
}

func writeHTMLReport(path string, result *pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := report.WriteHTML(f, result.Report); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeSVGFile(path string, result *pipeline.Result, positions map[string]visualization.Position, labels map[string]int, width, height float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := visualization.WriteSVG(f, result.Graph, positions, labels, width, height); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
