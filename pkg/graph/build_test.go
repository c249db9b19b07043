package graph

import (
	"testing"

	"github.com/terragord7/friends-analysis/pkg/edgelist"
)

func TestBuild_NoExclusions(t *testing.T) {
	edges := []edgelist.Edge{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "C", Weight: 3},
		{From: "B", To: "C", Weight: 1},
		{From: "D", To: "E", Weight: 5},
	}

	g := Build(edges, BuildOptions{})

	if g.Order() != 5 {
		t.Errorf("Expected 5 nodes, got %d", g.Order())
	}
	if g.Size() != 4 {
		t.Errorf("Expected 4 edges, got %d", g.Size())
	}
}

func TestBuild_ExclusionDropsCoreEdges(t *testing.T) {
	edges := []edgelist.Edge{
		{From: "Ross", To: "Rachel", Weight: 92},
		{From: "Ross", To: "Gunther", Weight: 4},
		{From: "Monica", To: "Chandler", Weight: 85},
	}

	g := Build(edges, BuildOptions{Exclude: []string{"Ross", "Rachel", "Monica", "Chandler"}})

	// Only Ross-Gunther survives: one endpoint is outside the core set.
	if g.Size() != 1 {
		t.Fatalf("Expected 1 edge after filtering, got %d", g.Size())
	}
	if !g.HasEdge("Ross", "Gunther") {
		t.Error("Edge with one non-core endpoint should be retained")
	}
}

func TestBuild_FilteringDropsIsolatedNodes(t *testing.T) {
	edges := []edgelist.Edge{
		{From: "Ross", To: "Rachel", Weight: 92},
		{From: "Joey", To: "Gunther", Weight: 7},
	}

	g := Build(edges, BuildOptions{Exclude: []string{"Ross", "Rachel"}})

	if g.HasNode("Ross") || g.HasNode("Rachel") {
		t.Error("Nodes with no retained edges must be dropped entirely")
	}
	if g.Order() != 2 {
		t.Errorf("Expected 2 nodes, got %d", g.Order())
	}
}

func TestBuild_ExclusionReducesEdgeCount(t *testing.T) {
	edges := []edgelist.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 1},
		{From: "B", To: "C", Weight: 1},
	}

	full := Build(edges, BuildOptions{})
	filtered := Build(edges, BuildOptions{Exclude: []string{"A", "B"}})

	if filtered.Size() >= full.Size() {
		t.Errorf("Filtering A-B should strictly reduce edge count: %d vs %d", filtered.Size(), full.Size())
	}

	// No matching edges: count unchanged.
	unaffected := Build(edges, BuildOptions{Exclude: []string{"X", "Y"}})
	if unaffected.Size() != full.Size() {
		t.Errorf("Exclusion set with no matching edges changed edge count: %d vs %d", unaffected.Size(), full.Size())
	}
}

func TestBuild_EmptyResult(t *testing.T) {
	edges := []edgelist.Edge{
		{From: "A", To: "B", Weight: 1},
	}

	g := Build(edges, BuildOptions{Exclude: []string{"A", "B"}})

	if g.Order() != 0 || g.Size() != 0 {
		t.Errorf("Expected empty graph, got %d nodes %d edges", g.Order(), g.Size())
	}
}
