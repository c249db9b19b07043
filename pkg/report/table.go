// Package report renders the community summary tables as styled terminal
// output and as HTML.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/terragord7/friends-analysis/pkg/summary"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)
)

// RenderOverview renders the community summary table: one row per
// community with its size and most-important members.
func RenderOverview(r *summary.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Community Summary"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %-6s %s", "COMMUNITY", "SIZE", "MOST IMPORTANT")))
	b.WriteString("\n")

	for _, row := range r.Overview {
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-10d %-6d %s",
			row.Label, row.Size, strings.Join(row.MostImportant, ", "))))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(fmt.Sprintf("modularity: %.4f", r.Modularity)))
	b.WriteString("\n")

	return b.String()
}

// RenderLarge renders the top-K ranking table for large communities.
func RenderLarge(r *summary.Report) string {
	return renderRanked("Large Communities (top members by degree)", r.Large)
}

// RenderSmall renders the full ranking table for small communities.
func RenderSmall(r *summary.Report) string {
	return renderRanked("Small Communities (all members by degree)", r.Small)
}

func renderRanked(title string, entries []summary.RankedEntry) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(footerStyle.Render("(none)"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %-5s %-24s %s", "COMMUNITY", "RANK", "CHARACTER", "DEGREE")))
	b.WriteString("\n")

	for _, entry := range entries {
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-10d %-5d %-24s %d",
			entry.Label, entry.Rank, entry.Name, entry.Degree)))
		b.WriteString("\n")
	}

	return b.String()
}

// Render renders all three tables in order.
func Render(r *summary.Report) string {
	return RenderOverview(r) + RenderLarge(r) + RenderSmall(r)
}
