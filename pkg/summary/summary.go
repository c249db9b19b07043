// Package summary turns a detected community partition into the descriptive
// tables the analysis reports on: per-community size and most-important
// members, plus degree rankings split into large and small communities.
package summary

import (
	"fmt"

	"github.com/terragord7/friends-analysis/pkg/algorithms"
	"github.com/terragord7/friends-analysis/pkg/graph"
)

// Options controls the presentation cut-offs. Both values are hand-tuned
// defaults for the studied dataset and are meant to be overridden.
type Options struct {
	// SmallThreshold is the community order above which only the top-K
	// members are reported.
	SmallThreshold int
	// TopK is how many members a large community reports.
	TopK int
}

const (
	DefaultSmallThreshold = 20
	DefaultTopK           = 5
)

// CommunityOverview is one row of the community summary table.
type CommunityOverview struct {
	Label int
	Size  int
	// MostImportant lists every member tied at the maximum betweenness
	// centrality within the community's induced subgraph.
	MostImportant []string
}

// RankedEntry is one row of a degree ranking table.
type RankedEntry struct {
	Label  int
	Rank   int
	Name   string
	Degree int
}

// Report aggregates the three output tables of a run.
type Report struct {
	Overview   []CommunityOverview
	Large      []RankedEntry
	Small      []RankedEntry
	Modularity float64
}

// Summarize builds the report for a detected partition. For each community
// it induces the subgraph, finds the maximum-betweenness members (ties all
// reported), and ranks members by degree: communities larger than
// SmallThreshold contribute their top-K to the large table, the rest
// contribute every member to the small table. A singleton community yields
// betweenness 0 and degree 0 without error.
func Summarize(g *graph.Graph, detection *algorithms.CommunityDetectionResult, opts Options) (*Report, error) {
	if opts.SmallThreshold <= 0 {
		opts.SmallThreshold = DefaultSmallThreshold
	}
	if opts.TopK <= 0 {
		opts.TopK = DefaultTopK
	}

	report := &Report{
		Overview:   make([]CommunityOverview, 0, len(detection.Communities)),
		Large:      make([]RankedEntry, 0),
		Small:      make([]RankedEntry, 0),
		Modularity: detection.Modularity,
	}

	for _, community := range detection.Communities {
		sub, err := g.Induced(community.Nodes)
		if err != nil {
			return nil, fmt.Errorf("induce community %d: %w", community.ID, err)
		}

		report.Overview = append(report.Overview, CommunityOverview{
			Label:         community.ID,
			Size:          sub.Order(),
			MostImportant: mostImportant(sub),
		})

		degrees := algorithms.DegreeCentrality(sub)
		if sub.Order() > opts.SmallThreshold {
			for rank, node := range algorithms.TopNodesByScore(sub, degrees, opts.TopK) {
				report.Large = append(report.Large, RankedEntry{
					Label:  community.ID,
					Rank:   rank + 1,
					Name:   node.Name,
					Degree: sub.Degree(node.Name),
				})
			}
		} else {
			for rank, node := range algorithms.TopNodesByScore(sub, degrees, sub.Order()) {
				report.Small = append(report.Small, RankedEntry{
					Label:  community.ID,
					Rank:   rank + 1,
					Name:   node.Name,
					Degree: sub.Degree(node.Name),
				})
			}
		}
	}

	return report, nil
}

// mostImportant returns every node tied at the maximum betweenness in sub,
// in insertion order. A singleton subgraph reports its only member.
func mostImportant(sub *graph.Graph) []string {
	scores := algorithms.BetweennessCentrality(sub)

	maxScore := 0.0
	first := true
	for _, name := range sub.Nodes() {
		if first || scores[name] > maxScore {
			maxScore = scores[name]
			first = false
		}
	}

	tied := make([]string, 0, 1)
	for _, name := range sub.Nodes() {
		if scores[name] == maxScore {
			tied = append(tied, name)
		}
	}
	return tied
}
