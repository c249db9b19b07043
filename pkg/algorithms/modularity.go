package algorithms

import (
	"github.com/terragord7/friends-analysis/pkg/graph"
)

// Modularity scores a node partition: the weighted fraction of edges that
// fall inside communities minus the fraction expected under random
// rewiring with the same degrees. An edgeless graph scores zero.
func Modularity(g *graph.Graph, labels map[string]int) float64 {
	m2 := 0.0
	for i := 0; i < g.Order(); i++ {
		m2 += g.WeightedDegree(i)
	}
	if m2 == 0 {
		return 0
	}

	in := make(map[int]float64)
	tot := make(map[int]float64)

	for i, name := range g.Nodes() {
		tot[labels[name]] += g.WeightedDegree(i)
	}

	g.EachEdge(func(u, v int, w float64) {
		cu := labels[g.Name(u)]
		cv := labels[g.Name(v)]
		if cu == cv {
			in[cu] += 2 * w
		}
	})

	q := 0.0
	for _, inWeight := range in {
		q += inWeight / m2
	}
	for _, totWeight := range tot {
		frac := totWeight / m2
		q -= frac * frac
	}

	return q
}
