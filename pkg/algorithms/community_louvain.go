package algorithms

import (
	"github.com/terragord7/friends-analysis/pkg/graph"
)

// LouvainOptions configures the Louvain community detection heuristic.
type LouvainOptions struct {
	// MaxPasses bounds the number of local-moving + contraction rounds.
	MaxPasses int
	// MinModularityGain is the smallest gain that justifies moving a node.
	MinModularityGain float64
}

const (
	defaultMaxPasses         = 10
	defaultMinModularityGain = 1e-7
)

// Louvain detects communities by modularity maximization: greedily move
// nodes between communities while any move improves modularity, contract
// each community into a super-node, and repeat on the contracted graph.
// Community IDs are arbitrary tokens renumbered densely in first-seen node
// order; only the resulting label sets are meaningful.
func Louvain(g *graph.Graph, opts LouvainOptions) (*CommunityDetectionResult, error) {
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}
	if opts.MaxPasses <= 0 {
		opts.MaxPasses = defaultMaxPasses
	}
	if opts.MinModularityGain <= 0 {
		opts.MinModularityGain = defaultMinModularityGain
	}

	wg := newWorkGraph(g)

	// membership[i] is the current super-node of original node i.
	membership := make([]int, g.Order())
	for i := range membership {
		membership[i] = i
	}

	for pass := 0; pass < opts.MaxPasses; pass++ {
		comm, moved := wg.localMoving(opts.MinModularityGain)
		if !moved {
			break
		}

		dense, count := renumber(comm)
		for i := range membership {
			membership[i] = dense[comm[membership[i]]]
		}

		if count == wg.n {
			break
		}
		wg = wg.contract(comm, dense, count)
	}

	return buildResult(g, membership), nil
}

// workGraph is the contracted weighted graph Louvain iterates on. Self-loop
// weight is held apart from the adjacency and counts twice in degrees.
type workGraph struct {
	n    int
	adj  []map[int]float64
	self []float64
	m2   float64 // total weighted degree, i.e. 2m
}

func newWorkGraph(g *graph.Graph) *workGraph {
	n := g.Order()
	wg := &workGraph{
		n:    n,
		adj:  make([]map[int]float64, n),
		self: make([]float64, n),
	}

	for i := 0; i < n; i++ {
		wg.adj[i] = make(map[int]float64)
		for v, w := range g.NeighborWeightsAt(i) {
			if v == i {
				wg.self[i] = w
				continue
			}
			wg.adj[i][v] = w
		}
	}

	for i := 0; i < n; i++ {
		wg.m2 += wg.degree(i)
	}

	return wg
}

func (w *workGraph) degree(i int) float64 {
	k := 2 * w.self[i]
	for _, wt := range w.adj[i] {
		k += wt
	}
	return k
}

// localMoving runs greedy node moves until a full sweep changes nothing.
// Nodes are visited in insertion order, so the result is deterministic for
// a given graph; the labels themselves still carry no meaning.
func (w *workGraph) localMoving(minGain float64) (comm []int, moved bool) {
	comm = make([]int, w.n)
	commTot := make([]float64, w.n)
	k := make([]float64, w.n)

	for i := 0; i < w.n; i++ {
		comm[i] = i
		k[i] = w.degree(i)
		commTot[i] = k[i]
	}

	if w.m2 == 0 {
		return comm, false
	}

	for changed := true; changed; {
		changed = false

		for i := 0; i < w.n; i++ {
			neighWeight := make(map[int]float64)
			for v, wt := range w.adj[i] {
				neighWeight[comm[v]] += wt
			}

			old := comm[i]
			commTot[old] -= k[i]

			best := old
			bestGain := neighWeight[old] - commTot[old]*k[i]/w.m2

			for c, wt := range neighWeight {
				if c == old {
					continue
				}
				gain := wt - commTot[c]*k[i]/w.m2
				if gain > bestGain+minGain {
					best = c
					bestGain = gain
				}
			}

			comm[i] = best
			commTot[best] += k[i]

			if best != old {
				changed = true
				moved = true
			}
		}
	}

	return comm, moved
}

// renumber maps community tokens to dense IDs 0..count-1 in first-seen order.
func renumber(comm []int) (dense map[int]int, count int) {
	dense = make(map[int]int)
	for _, c := range comm {
		if _, ok := dense[c]; !ok {
			dense[c] = count
			count++
		}
	}
	return dense, count
}

// contract folds each community into a super-node. Intra-community edges
// (and carried self-loops) accumulate as self weight; inter-community edges
// accumulate into super-edges.
func (w *workGraph) contract(comm []int, dense map[int]int, count int) *workGraph {
	nw := &workGraph{
		n:    count,
		adj:  make([]map[int]float64, count),
		self: make([]float64, count),
	}
	for i := range nw.adj {
		nw.adj[i] = make(map[int]float64)
	}

	for u := 0; u < w.n; u++ {
		cu := dense[comm[u]]
		nw.self[cu] += w.self[u]

		for v, wt := range w.adj[u] {
			if u > v {
				continue
			}
			cv := dense[comm[v]]
			if cu == cv {
				nw.self[cu] += wt
			} else {
				nw.adj[cu][cv] += wt
				nw.adj[cv][cu] += wt
			}
		}
	}

	for i := 0; i < count; i++ {
		nw.m2 += nw.degree(i)
	}

	return nw
}

// buildResult converts a membership vector into the shared result shape and
// scores the final partition on the original graph.
func buildResult(g *graph.Graph, membership []int) *CommunityDetectionResult {
	labels := make(map[string]int, g.Order())
	seen := make(map[int]int)
	communities := make([]*Community, 0)

	for i, name := range g.Nodes() {
		id, ok := seen[membership[i]]
		if !ok {
			id = len(communities)
			seen[membership[i]] = id
			communities = append(communities, &Community{ID: id})
		}
		labels[name] = id
		communities[id].Nodes = append(communities[id].Nodes, name)
	}

	for _, c := range communities {
		c.Size = len(c.Nodes)
	}

	return &CommunityDetectionResult{
		Communities:   communities,
		NodeCommunity: labels,
		Modularity:    Modularity(g, labels),
	}
}
