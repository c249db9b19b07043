package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/terragord7/friends-analysis/pkg/summary"
)

func sampleReport() *summary.Report {
	return &summary.Report{
		Overview: []summary.CommunityOverview{
			{Label: 0, Size: 3, MostImportant: []string{"Gunther"}},
			{Label: 1, Size: 2, MostImportant: []string{"Janice", "Estelle"}},
		},
		Large: []summary.RankedEntry{
			{Label: 0, Rank: 1, Name: "Gunther", Degree: 12},
		},
		Small: []summary.RankedEntry{
			{Label: 1, Rank: 1, Name: "Janice", Degree: 1},
			{Label: 1, Rank: 2, Name: "Estelle", Degree: 1},
		},
		Modularity: 0.4123,
	}
}

func TestRenderOverview(t *testing.T) {
	out := RenderOverview(sampleReport())

	for _, want := range []string{"Community Summary", "Gunther", "Janice, Estelle", "0.4123"} {
		if !strings.Contains(out, want) {
			t.Errorf("Overview output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRankedTables(t *testing.T) {
	r := sampleReport()

	large := RenderLarge(r)
	if !strings.Contains(large, "Gunther") || !strings.Contains(large, "12") {
		t.Errorf("Large table missing expected row:\n%s", large)
	}

	small := RenderSmall(r)
	if !strings.Contains(small, "Janice") || !strings.Contains(small, "Estelle") {
		t.Errorf("Small table missing expected rows:\n%s", small)
	}
}

func TestRenderEmptyTables(t *testing.T) {
	out := RenderLarge(&summary.Report{})

	if !strings.Contains(out, "(none)") {
		t.Errorf("Empty table should render placeholder:\n%s", out)
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"<!DOCTYPE html>", "Gunther", "Janice, Estelle", "0.4123", "</table>"} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestWriteHTMLEscapesNames(t *testing.T) {
	r := &summary.Report{
		Overview: []summary.CommunityOverview{
			{Label: 0, Size: 1, MostImportant: []string{"<script>"}},
		},
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, r); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}

	if strings.Contains(buf.String(), "<script>") {
		t.Error("Node names must be HTML-escaped")
	}
}
