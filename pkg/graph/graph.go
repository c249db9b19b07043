// Package graph holds the in-memory undirected weighted graph the analysis
// pipeline runs over. Nodes are keyed by character name and kept in insertion
// order; there is at most one edge per unordered pair.
package graph

// Graph is an undirected weighted graph. The zero value is not usable; use
// NewGraph or Build. A Graph is never mutated once handed to the algorithms.
type Graph struct {
	names []string
	index map[string]int
	adj   []map[int]float64
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		names: make([]string, 0),
		index: make(map[string]int),
		adj:   make([]map[int]float64, 0),
	}
}

// ensureNode returns the index for name, registering it on first sight.
func (g *Graph) ensureNode(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	i := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = i
	g.adj = append(g.adj, make(map[int]float64))
	return i
}

// AddEdge adds or replaces the undirected edge between from and to. Repeated
// pairs keep the last weight seen. A self-loop is stored once.
func (g *Graph) AddEdge(from, to string, weight float64) {
	u := g.ensureNode(from)
	v := g.ensureNode(to)
	g.adj[u][v] = weight
	g.adj[v][u] = weight
}

// Order returns the node count.
func (g *Graph) Order() int {
	return len(g.names)
}

// Size returns the edge count, counting each undirected edge once.
func (g *Graph) Size() int {
	count := 0
	for u, neighbors := range g.adj {
		for v := range neighbors {
			if u <= v {
				count++
			}
		}
	}
	return count
}

// Nodes returns the node names in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// HasNode reports whether name is in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]
	return ok
}

// IndexOf returns the insertion position of name.
func (g *Graph) IndexOf(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Name returns the node name at insertion position i.
func (g *Graph) Name(i int) string {
	return g.names[i]
}

// HasEdge reports whether an edge exists between from and to.
func (g *Graph) HasEdge(from, to string) bool {
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}
	_, ok = g.adj[u][v]
	return ok
}

// Weight returns the weight of the edge between from and to.
func (g *Graph) Weight(from, to string) (float64, bool) {
	u, ok := g.index[from]
	if !ok {
		return 0, false
	}
	v, ok := g.index[to]
	if !ok {
		return 0, false
	}
	w, ok := g.adj[u][v]
	return w, ok
}

// Degree returns the number of edges incident to name. A self-loop counts
// once. Unknown names have degree zero.
func (g *Graph) Degree(name string) int {
	i, ok := g.index[name]
	if !ok {
		return 0
	}
	return len(g.adj[i])
}

// Neighbors returns the neighbor names of name in insertion order.
func (g *Graph) Neighbors(name string) []string {
	i, ok := g.index[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.adj[i]))
	// Walk positions in order so the result is stable.
	for v := 0; v < len(g.names); v++ {
		if _, ok := g.adj[i][v]; ok {
			out = append(out, g.names[v])
		}
	}
	return out
}

// NeighborWeightsAt returns the neighbor weights of the node at position i.
// The returned map is shared with the graph; callers must not mutate it.
func (g *Graph) NeighborWeightsAt(i int) map[int]float64 {
	return g.adj[i]
}

// TotalWeight returns the sum of edge weights, each undirected edge once.
func (g *Graph) TotalWeight() float64 {
	total := 0.0
	for u, neighbors := range g.adj {
		for v, w := range neighbors {
			if u <= v {
				total += w
			}
		}
	}
	return total
}

// WeightedDegree returns the weighted degree of the node at position i.
// A self-loop contributes twice, matching the modularity convention.
func (g *Graph) WeightedDegree(i int) float64 {
	k := 0.0
	for v, w := range g.adj[i] {
		k += w
		if v == i {
			k += w
		}
	}
	return k
}

// EachEdge calls fn once per undirected edge with node positions u <= v.
func (g *Graph) EachEdge(fn func(u, v int, weight float64)) {
	for u, neighbors := range g.adj {
		for v, w := range neighbors {
			if u <= v {
				fn(u, v, w)
			}
		}
	}
}

// Induced returns the subgraph of exactly the given nodes and the edges
// whose both endpoints are among them. Node insertion order follows the
// given slice. Unknown names fail with ErrNodeNotFound.
func (g *Graph) Induced(nodes []string) (*Graph, error) {
	keep := make(map[int]bool, len(nodes))
	sub := NewGraph()

	for _, name := range nodes {
		i, ok := g.index[name]
		if !ok {
			return nil, &GraphError{Op: "Induced", Node: name, Cause: ErrNodeNotFound}
		}
		keep[i] = true
		sub.ensureNode(name)
	}

	for _, name := range nodes {
		u := g.index[name]
		for v, w := range g.adj[u] {
			if u <= v && keep[v] {
				sub.AddEdge(g.names[u], g.names[v], w)
			}
		}
	}

	return sub, nil
}
