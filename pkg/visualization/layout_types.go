package visualization

import (
	"github.com/terragord7/friends-analysis/pkg/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       int64   // Seed for randomized initial placement
}

// Layout interface for different layout algorithms
type Layout interface {
	ComputeLayout(g *graph.Graph) (map[string]Position, error)
}
