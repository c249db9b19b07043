package graph

import (
	"github.com/terragord7/friends-analysis/pkg/edgelist"
)

// BuildOptions controls edge filtering during graph construction.
type BuildOptions struct {
	// Exclude lists node names forming the "core" group. An edge is dropped
	// when BOTH of its endpoints are in this set.
	Exclude []string
}

// Build constructs an undirected weighted graph from an edge list. Only
// endpoints of retained edges become nodes, so filtering never leaves
// isolated vertices behind. An empty result is legal.
func Build(edges []edgelist.Edge, opts BuildOptions) *Graph {
	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = true
	}

	g := NewGraph()
	for _, e := range edges {
		if excluded[e.From] && excluded[e.To] {
			continue
		}
		g.AddEdge(e.From, e.To, e.Weight)
	}
	return g
}
