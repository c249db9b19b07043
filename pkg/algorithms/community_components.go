package algorithms

import (
	"container/list"

	"github.com/terragord7/friends-analysis/pkg/graph"
)

// ConnectedComponents finds all connected components in the graph. Each
// component becomes its own community, labeled in first-seen node order.
func ConnectedComponents(g *graph.Graph) *CommunityDetectionResult {
	visited := make(map[string]bool)
	nodeCommunity := make(map[string]int)
	communities := make([]*Community, 0)

	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}

		component := &Community{
			ID:    len(communities),
			Nodes: make([]string, 0),
		}

		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			name := queue.Remove(queue.Front()).(string)
			component.Nodes = append(component.Nodes, name)
			nodeCommunity[name] = component.ID

			for _, neighbor := range g.Neighbors(name) {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue.PushBack(neighbor)
				}
			}
		}

		component.Size = len(component.Nodes)
		communities = append(communities, component)
	}

	return &CommunityDetectionResult{
		Communities:   communities,
		NodeCommunity: nodeCommunity,
		Modularity:    Modularity(g, nodeCommunity),
	}
}
