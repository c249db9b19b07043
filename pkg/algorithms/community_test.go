package algorithms

import (
	"errors"
	"testing"

	"github.com/terragord7/friends-analysis/pkg/graph"
)

// buildTestGraph constructs a graph from (from, to, weight) triples
func buildTestGraph(t *testing.T, edges [][3]any) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, e := range edges {
		g.AddEdge(e[0].(string), e[1].(string), e[2].(float64))
	}
	return g
}

func TestLouvain_EmptyGraph(t *testing.T) {
	g := graph.NewGraph()

	_, err := Louvain(g, LouvainOptions{})
	if !errors.Is(err, ErrEmptyGraph) {
		t.Fatalf("Expected ErrEmptyGraph, got %v", err)
	}
}

func TestLouvain_SingleNode(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge("A", "A", 1)

	result, err := Louvain(g, LouvainOptions{})
	if err != nil {
		t.Fatalf("Louvain failed: %v", err)
	}

	if len(result.Communities) != 1 {
		t.Fatalf("Expected 1 community, got %d", len(result.Communities))
	}
	if result.Communities[0].Size != 1 {
		t.Errorf("Expected community size 1, got %d", result.Communities[0].Size)
	}
	if result.NodeCommunity["A"] != 0 {
		t.Errorf("Expected node in community 0, got %d", result.NodeCommunity["A"])
	}
}

func TestLouvain_TwoComponentsTwoLabels(t *testing.T) {
	g := buildTestGraph(t, [][3]any{
		{"A", "B", 2.0},
		{"A", "C", 3.0},
		{"B", "C", 1.0},
		{"D", "E", 5.0},
	})

	result, err := Louvain(g, LouvainOptions{})
	if err != nil {
		t.Fatalf("Louvain failed: %v", err)
	}

	labels := make(map[int]bool)
	for _, label := range result.NodeCommunity {
		labels[label] = true
	}
	if len(labels) != 2 {
		t.Fatalf("Expected 2 distinct labels, got %d (%v)", len(labels), result.NodeCommunity)
	}

	if result.NodeCommunity["A"] != result.NodeCommunity["B"] ||
		result.NodeCommunity["B"] != result.NodeCommunity["C"] {
		t.Errorf("Triangle nodes should share a label: %v", result.NodeCommunity)
	}
	if result.NodeCommunity["D"] != result.NodeCommunity["E"] {
		t.Errorf("D and E should share a label: %v", result.NodeCommunity)
	}
	if result.NodeCommunity["A"] == result.NodeCommunity["D"] {
		t.Errorf("Components must not share a label: %v", result.NodeCommunity)
	}
}

func TestLouvain_TwoCliquesWithBridge(t *testing.T) {
	g := buildTestGraph(t, [][3]any{
		{"A", "B", 1.0}, {"A", "C", 1.0}, {"A", "D", 1.0},
		{"B", "C", 1.0}, {"B", "D", 1.0}, {"C", "D", 1.0},
		{"E", "F", 1.0}, {"E", "G", 1.0}, {"E", "H", 1.0},
		{"F", "G", 1.0}, {"F", "H", 1.0}, {"G", "H", 1.0},
		{"D", "E", 1.0}, // bridge
	})

	result, err := Louvain(g, LouvainOptions{})
	if err != nil {
		t.Fatalf("Louvain failed: %v", err)
	}

	if len(result.Communities) != 2 {
		t.Fatalf("Expected 2 communities for two bridged cliques, got %d", len(result.Communities))
	}
	if result.NodeCommunity["A"] == result.NodeCommunity["E"] {
		t.Errorf("Cliques should split into distinct communities: %v", result.NodeCommunity)
	}
	if result.Modularity <= 0 {
		t.Errorf("Expected positive modularity for a clustered graph, got %v", result.Modularity)
	}
}

func TestLouvain_PartitionIsComplete(t *testing.T) {
	g := buildTestGraph(t, [][3]any{
		{"A", "B", 1.0}, {"B", "C", 2.0}, {"C", "D", 1.0},
		{"D", "E", 4.0}, {"E", "F", 1.0}, {"F", "A", 2.0},
	})

	result, err := Louvain(g, LouvainOptions{})
	if err != nil {
		t.Fatalf("Louvain failed: %v", err)
	}

	// Every node labeled exactly once
	if len(result.NodeCommunity) != g.Order() {
		t.Fatalf("Expected %d labeled nodes, got %d", g.Order(), len(result.NodeCommunity))
	}

	// Community node sets are disjoint and cover everything
	seen := make(map[string]int)
	for _, c := range result.Communities {
		if c.Size != len(c.Nodes) {
			t.Errorf("Community %d size %d != len(Nodes) %d", c.ID, c.Size, len(c.Nodes))
		}
		for _, name := range c.Nodes {
			seen[name]++
		}
	}
	for _, name := range g.Nodes() {
		if seen[name] != 1 {
			t.Errorf("Node %s appears in %d communities, want exactly 1", name, seen[name])
		}
	}
}

func TestConnectedComponents_EmptyGraph(t *testing.T) {
	result := ConnectedComponents(graph.NewGraph())

	if len(result.Communities) != 0 {
		t.Errorf("Expected 0 communities for empty graph, got %d", len(result.Communities))
	}
}

func TestConnectedComponents_SingleComponent(t *testing.T) {
	g := buildTestGraph(t, [][3]any{
		{"A", "B", 1.0},
		{"B", "C", 1.0},
	})

	result := ConnectedComponents(g)

	if len(result.Communities) != 1 {
		t.Fatalf("Expected 1 component, got %d", len(result.Communities))
	}
	if result.Communities[0].Size != 3 {
		t.Errorf("Expected component size 3, got %d", result.Communities[0].Size)
	}
}

func TestConnectedComponents_MultipleComponents(t *testing.T) {
	g := buildTestGraph(t, [][3]any{
		{"A", "B", 1.0},
		{"C", "D", 1.0},
		{"E", "F", 1.0},
	})

	result := ConnectedComponents(g)

	if len(result.Communities) != 3 {
		t.Fatalf("Expected 3 components, got %d", len(result.Communities))
	}
	for _, c := range result.Communities {
		if c.Size != 2 {
			t.Errorf("Component %d: expected size 2, got %d", c.ID, c.Size)
		}
	}
}

func TestModularity_EdgelessGraph(t *testing.T) {
	g := graph.NewGraph()

	if q := Modularity(g, map[string]int{}); q != 0 {
		t.Errorf("Expected zero modularity for empty graph, got %v", q)
	}
}

func TestModularity_SingleCommunityIsZero(t *testing.T) {
	g := buildTestGraph(t, [][3]any{
		{"A", "B", 1.0},
		{"B", "C", 1.0},
	})

	labels := map[string]int{"A": 0, "B": 0, "C": 0}
	q := Modularity(g, labels)

	// All edges internal: Q = 1 - sum((k_c/2m)^2) = 1 - 1 = 0
	if q < -1e-9 || q > 1e-9 {
		t.Errorf("Expected zero modularity for a single community, got %v", q)
	}
}

func TestModularity_ComponentsBeatMerged(t *testing.T) {
	g := buildTestGraph(t, [][3]any{
		{"A", "B", 1.0},
		{"C", "D", 1.0},
	})

	split := Modularity(g, map[string]int{"A": 0, "B": 0, "C": 1, "D": 1})
	merged := Modularity(g, map[string]int{"A": 0, "B": 0, "C": 0, "D": 0})

	if split <= merged {
		t.Errorf("Splitting components should score higher: split=%v merged=%v", split, merged)
	}
}
