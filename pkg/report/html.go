package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/terragord7/friends-analysis/pkg/summary"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": func(names []string) string { return strings.Join(names, ", ") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Community Analysis</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
th { background: #eee; }
caption { font-weight: bold; padding: 6px; text-align: left; }
</style>
</head>
<body>
<h1>Community Analysis</h1>
<p>Modularity: {{printf "%.4f" .Modularity}}</p>

<table>
<caption>Community summary</caption>
<tr><th>Community</th><th>Size</th><th>Most important</th></tr>
{{range .Overview}}<tr><td>{{.Label}}</td><td>{{.Size}}</td><td>{{join .MostImportant}}</td></tr>
{{end}}</table>

<table>
<caption>Large communities (top members by degree)</caption>
<tr><th>Community</th><th>Rank</th><th>Character</th><th>Degree</th></tr>
{{range .Large}}<tr><td>{{.Label}}</td><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{.Degree}}</td></tr>
{{end}}</table>

<table>
<caption>Small communities (all members by degree)</caption>
<tr><th>Community</th><th>Rank</th><th>Character</th><th>Degree</th></tr>
{{range .Small}}<tr><td>{{.Label}}</td><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{.Degree}}</td></tr>
{{end}}</table>
</body>
</html>
`))

// WriteHTML writes the report as a standalone HTML document.
func WriteHTML(w io.Writer, r *summary.Report) error {
	if err := htmlTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}
