package visualization

import (
	"math"
	"math/rand"

	"github.com/terragord7/friends-analysis/pkg/graph"
)

// ForceDirectedLayout implements force-directed graph layout
type ForceDirectedLayout struct {
	config *LayoutConfig
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config *LayoutConfig) *ForceDirectedLayout {
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &ForceDirectedLayout{config: config}
}

// ComputeLayout computes positions using force-directed algorithm
func (fdl *ForceDirectedLayout) ComputeLayout(g *graph.Graph) (map[string]Position, error) {
	nodes := g.Nodes()

	if len(nodes) == 0 {
		return make(map[string]Position), nil
	}

	// Single node - center it
	if len(nodes) == 1 {
		return map[string]Position{
			nodes[0]: {
				X: fdl.config.Width / 2,
				Y: fdl.config.Height / 2,
			},
		}, nil
	}

	// Initialize random positions
	rng := rand.New(rand.NewSource(fdl.config.Seed))
	positions := make(map[string]Position)

	for _, name := range nodes {
		positions[name] = Position{
			X: rng.Float64()*(fdl.config.Width-2*fdl.config.Padding) + fdl.config.Padding,
			Y: rng.Float64()*(fdl.config.Height-2*fdl.config.Padding) + fdl.config.Padding,
		}
	}

	// Force-directed iterations
	k := math.Sqrt((fdl.config.Width * fdl.config.Height) / float64(len(nodes))) // Optimal distance
	temperature := fdl.config.Width / 10.0

	for iter := 0; iter < fdl.config.Iterations; iter++ {
		forces := make(map[string]Position)
		for _, name := range nodes {
			forces[name] = Position{X: 0, Y: 0}
		}

		// Repulsion between all pairs
		for i, name1 := range nodes {
			for j := i + 1; j < len(nodes); j++ {
				name2 := nodes[j]
				dx := positions[name1].X - positions[name2].X
				dy := positions[name1].Y - positions[name2].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					dist = 0.01
				}

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[name1] = Position{
					X: forces[name1].X + fx,
					Y: forces[name1].Y + fy,
				}
				forces[name2] = Position{
					X: forces[name2].X - fx,
					Y: forces[name2].Y - fy,
				}
			}
		}

		// Attraction between connected nodes
		for _, name1 := range nodes {
			for _, name2 := range g.Neighbors(name1) {
				if name1 == name2 {
					continue
				}

				dx := positions[name1].X - positions[name2].X
				dy := positions[name1].Y - positions[name2].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					continue
				}

				force := (dist * dist) / k
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[name1] = Position{
					X: forces[name1].X - fx,
					Y: forces[name1].Y - fy,
				}
			}
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(fdl.config.Iterations)
		for _, name := range nodes {
			fx := forces[name].X
			fy := forces[name].Y
			force := math.Sqrt(fx*fx + fy*fy)

			if force > 0 {
				dx := (fx / force) * math.Min(force, temperature) * cool
				dy := (fy / force) * math.Min(force, temperature) * cool

				positions[name] = Position{
					X: positions[name].X + dx,
					Y: positions[name].Y + dy,
				}
			}
		}

		temperature *= 0.95
	}

	// Normalize positions to bounds
	return normalizePositions(positions, fdl.config.Width, fdl.config.Height, fdl.config.Padding), nil
}
