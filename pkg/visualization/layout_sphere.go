package visualization

import (
	"math"

	"github.com/terragord7/friends-analysis/pkg/graph"
)

// SphericalLayout places nodes on a Fibonacci lattice over a sphere and
// projects the points orthographically onto the canvas. Evenly spreads any
// node count without clustering at the poles.
type SphericalLayout struct {
	config *LayoutConfig
}

// NewSphericalLayout creates a new spherical layout
func NewSphericalLayout(config *LayoutConfig) *SphericalLayout {
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &SphericalLayout{config: config}
}

// ComputeLayout arranges nodes on the projected sphere
func (sl *SphericalLayout) ComputeLayout(g *graph.Graph) (map[string]Position, error) {
	positions := make(map[string]Position)
	nodes := g.Nodes()

	if len(nodes) == 0 {
		return positions, nil
	}

	centerX := sl.config.Width / 2
	centerY := sl.config.Height / 2
	radius := math.Min(centerX, centerY) - sl.config.Padding

	if len(nodes) == 1 {
		positions[nodes[0]] = Position{X: centerX, Y: centerY}
		return positions, nil
	}

	// Golden-angle increment
	phi := math.Pi * (3 - math.Sqrt(5))

	for i, name := range nodes {
		// z descends evenly through (1, -1), staying off the poles so no
		// two nodes project onto the same canvas point
		z := 1 - (2*float64(i)+1)/float64(len(nodes))
		ringRadius := math.Sqrt(math.Max(0, 1-z*z))
		theta := phi * float64(i)

		x := math.Cos(theta) * ringRadius
		y := math.Sin(theta) * ringRadius

		positions[name] = Position{
			X: centerX + radius*x,
			Y: centerY + radius*y,
		}
	}

	return positions, nil
}
