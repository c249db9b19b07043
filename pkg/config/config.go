// Package config loads and validates pipeline configuration from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate = validator.New()

// Config is the top-level pipeline configuration
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Summary  SummaryConfig  `yaml:"summary"`
	Layout   LayoutConfig   `yaml:"layout"`
	Output   OutputConfig   `yaml:"output"`
	LogLevel string         `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// InputConfig describes where the edge list comes from
type InputConfig struct {
	// Source is a local path, an http(s):// URL, or an s3://bucket/key URI
	Source         string   `yaml:"source" validate:"required"`
	ExcludeCore    bool     `yaml:"exclude_core"`
	CoreCharacters []string `yaml:"core_characters"`
	S3Region       string   `yaml:"s3_region"`
	S3Endpoint     string   `yaml:"s3_endpoint"`
}

// AnalysisConfig tunes community detection
type AnalysisConfig struct {
	MaxPasses         int     `yaml:"max_passes" validate:"min=0,max=1000"`
	MinModularityGain float64 `yaml:"min_modularity_gain" validate:"min=0"`
}

// SummaryConfig tunes the community report tables
type SummaryConfig struct {
	SmallThreshold int `yaml:"small_threshold" validate:"min=1"`
	TopK           int `yaml:"top_k" validate:"min=1"`
}

// LayoutConfig tunes the two image layouts
type LayoutConfig struct {
	Width      float64 `yaml:"width" validate:"min=100"`
	Height     float64 `yaml:"height" validate:"min=100"`
	Iterations int     `yaml:"iterations" validate:"min=1,max=10000"`
	Padding    float64 `yaml:"padding" validate:"min=0"`
	Seed       int64   `yaml:"seed"`
}

// OutputConfig describes where results are written
type OutputConfig struct {
	Dir  string `yaml:"dir" validate:"required"`
	HTML bool   `yaml:"html"`
	SVG  bool   `yaml:"svg"`
}

// DefaultConfig returns a configuration tuned for the Friends episode dataset
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Source:      "data/friends-edges.csv",
			ExcludeCore: true,
			CoreCharacters: []string{
				"Ross", "Rachel", "Monica", "Chandler", "Joey", "Phoebe",
			},
		},
		Analysis: AnalysisConfig{
			MaxPasses:         10,
			MinModularityGain: 1e-7,
		},
		Summary: SummaryConfig{
			SmallThreshold: 20,
			TopK:           5,
		},
		Layout: LayoutConfig{
			Width:      1200,
			Height:     900,
			Iterations: 50,
			Padding:    50,
			Seed:       1,
		},
		Output: OutputConfig{
			Dir:  "out",
			HTML: true,
			SVG:  true,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags plus cross-field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	if c.Layout.Width <= 2*c.Layout.Padding {
		return fmt.Errorf("layout.width %.0f must exceed twice the padding %.0f", c.Layout.Width, c.Layout.Padding)
	}
	if c.Layout.Height <= 2*c.Layout.Padding {
		return fmt.Errorf("layout.height %.0f must exceed twice the padding %.0f", c.Layout.Height, c.Layout.Padding)
	}
	if c.Input.ExcludeCore && len(c.Input.CoreCharacters) == 0 {
		return fmt.Errorf("input.exclude_core is set but input.core_characters is empty")
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			return fmt.Errorf("config field %s failed %s validation (value: %v)",
				fe.Namespace(), fe.Tag(), fe.Value())
		}
	}
	return err
}
