package algorithms

import (
	"container/heap"
	"container/list"
	"sort"

	"github.com/terragord7/friends-analysis/pkg/graph"
)

// BetweennessCentrality computes betweenness centrality for all nodes with
// a Brandes pass over unweighted shortest paths. The graph is undirected,
// so each pair's contribution is halved, then pair-normalized for n > 2.
// Singleton and two-node graphs come back all zero.
func BetweennessCentrality(g *graph.Graph) map[string]float64 {
	n := g.Order()
	betweenness := make([]float64, n)

	for source := 0; source < n; source++ {
		stack := make([]int, 0, n)
		predecessors := make([][]int, n)
		sigma := make([]float64, n)
		distance := make([]int, n)
		for i := range distance {
			distance[i] = -1
		}

		sigma[source] = 1.0
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v := queue.Remove(queue.Front()).(int)
			stack = append(stack, v)

			for w := range g.NeighborWeightsAt(v) {
				if w == v {
					continue
				}
				if distance[w] < 0 {
					queue.PushBack(w)
					distance[w] = distance[v] + 1
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of pair dependencies
		delta := make([]float64, n)
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, pred := range predecessors[w] {
				delta[pred] += (sigma[pred] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	// Each unordered pair was counted from both endpoints.
	for i := range betweenness {
		betweenness[i] /= 2.0
	}

	if n > 2 {
		normFactor := 2.0 / float64((n-1)*(n-2))
		for i := range betweenness {
			betweenness[i] *= normFactor
		}
	}

	result := make(map[string]float64, n)
	for i, name := range g.Nodes() {
		result[name] = betweenness[i]
	}
	return result
}

// DegreeCentrality computes degree centrality for all nodes, normalized by
// the n-1 possible connections. A singleton graph scores zero.
func DegreeCentrality(g *graph.Graph) map[string]float64 {
	n := g.Order()
	result := make(map[string]float64, n)

	for _, name := range g.Nodes() {
		if n > 1 {
			result[name] = float64(g.Degree(name)) / float64(n-1)
		} else {
			result[name] = 0.0
		}
	}

	return result
}

// RankedNode holds a ranked node with its centrality score.
type RankedNode struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// rankedEntry pairs a scored node with its insertion position for
// deterministic tie-breaks.
type rankedEntry struct {
	node RankedNode
	idx  int
}

// rankedNodeHeap is a min-heap by score; among equal scores the
// latest-inserted node sits at the root so it is evicted first.
type rankedNodeHeap []rankedEntry

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].node.Score != h[j].node.Score {
		return h[i].node.Score < h[j].node.Score
	}
	return h[i].idx > h[j].idx
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(rankedEntry))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopNodesByScore returns the top n nodes by score using a min-heap.
// Ties are broken by the node's insertion order in the graph, so the
// ranking is stable across runs. Asking for more nodes than exist returns
// only the real ones.
func TopNodesByScore(g *graph.Graph, scores map[string]float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for idx, name := range g.Nodes() {
		score, ok := scores[name]
		if !ok {
			continue
		}

		entry := rankedEntry{node: RankedNode{Name: name, Score: score}, idx: idx}

		if h.Len() < n {
			heap.Push(&h, entry)
			continue
		}

		if score > h[0].node.Score || (score == h[0].node.Score && idx < h[0].idx) {
			heap.Pop(&h)
			heap.Push(&h, entry)
		}
	}

	kept := make([]rankedEntry, 0, h.Len())
	for h.Len() > 0 {
		kept = append(kept, heap.Pop(&h).(rankedEntry))
	}

	// Stable sort by score descending, then insertion order for determinism
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].node.Score != kept[j].node.Score {
			return kept[i].node.Score > kept[j].node.Score
		}
		return kept[i].idx < kept[j].idx
	})

	result := make([]RankedNode, len(kept))
	for i, entry := range kept {
		result[i] = entry.node
	}
	return result
}
