package algorithms

import "errors"

// ErrEmptyGraph is returned when community detection runs on a graph with no nodes.
var ErrEmptyGraph = errors.New("graph has no nodes")

// Community represents a detected community
type Community struct {
	ID    int
	Nodes []string
	Size  int
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Communities   []*Community
	Modularity    float64        // Quality measure of the partitioning
	NodeCommunity map[string]int // Node name -> Community ID
}
