package visualization

import (
	"fmt"
	"io"

	"github.com/terragord7/friends-analysis/pkg/graph"
)

// communityPalette cycles through distinct fills for community coloring.
var communityPalette = []string{
	"#e6194b", "#3cb44b", "#4363d8", "#f58231", "#911eb4",
	"#46f0f0", "#f032e6", "#bcf60c", "#fabebe", "#008080",
	"#e6beff", "#9a6324", "#fffac8", "#800000", "#aaffc3",
}

// WriteSVG writes a static image of the laid-out graph. Edges are drawn
// under the nodes; each node is filled by its community label and captioned
// with the character name. Nodes missing a label fall back to the first
// palette color.
func WriteSVG(w io.Writer, g *graph.Graph, positions map[string]Position, labels map[string]int, width, height float64) error {
	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		width, height, width, height); err != nil {
		return fmt.Errorf("write svg header: %w", err)
	}

	fmt.Fprintln(w, `<rect width="100%" height="100%" fill="white"/>`)

	var edgeErr error
	g.EachEdge(func(u, v int, weight float64) {
		if edgeErr != nil || u == v {
			return
		}
		from, ok1 := positions[g.Name(u)]
		to, ok2 := positions[g.Name(v)]
		if !ok1 || !ok2 {
			return
		}
		_, err := fmt.Fprintf(w,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#bbb" stroke-width="%.1f"/>`+"\n",
			from.X, from.Y, to.X, to.Y, edgeStroke(weight))
		if err != nil {
			edgeErr = err
		}
	})
	if edgeErr != nil {
		return fmt.Errorf("write svg edges: %w", edgeErr)
	}

	for _, name := range g.Nodes() {
		pos, ok := positions[name]
		if !ok {
			continue
		}
		fill := communityPalette[labels[name]%len(communityPalette)]
		if _, err := fmt.Fprintf(w,
			`<circle cx="%.1f" cy="%.1f" r="6" fill="%s" stroke="#333"/>`+"\n",
			pos.X, pos.Y, fill); err != nil {
			return fmt.Errorf("write svg node: %w", err)
		}
		if _, err := fmt.Fprintf(w,
			`<text x="%.1f" y="%.1f" font-size="9" fill="#333">%s</text>`+"\n",
			pos.X+8, pos.Y+3, escapeXML(name)); err != nil {
			return fmt.Errorf("write svg label: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w, `</svg>`); err != nil {
		return fmt.Errorf("write svg footer: %w", err)
	}
	return nil
}

// edgeStroke maps an interaction weight to a stroke width between 0.5 and 4.
func edgeStroke(weight float64) float64 {
	stroke := 0.5 + weight/10
	if stroke > 4 {
		stroke = 4
	}
	return stroke
}

func escapeXML(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '<':
			out = append(out, []rune("&lt;")...)
		case '>':
			out = append(out, []rune("&gt;")...)
		case '&':
			out = append(out, []rune("&amp;")...)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
