package output

import (
	"context"
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	"cell": func(r Row, id string) string { return r.Values[id] },
	"sorted": func(t *Table, id string) string {
		if t.SortColumn != id {
			return ""
		}
		if t.SortDirection == "asc" {
			return " ↑"
		}
		return " ↓"
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}}{{else}}Squad Stats{{end}} · {{.Section}}</title>
<style>
body { background: #0d1117; color: #c9d1d9; font-family: ui-monospace, monospace; margin: 2rem; }
h1 { color: #58a6ff; font-size: 1.2rem; }
.meta { color: #6e7681; margin-bottom: 1rem; }
table { border-collapse: collapse; }
th, td { padding: 0.25rem 0.75rem; border-bottom: 1px solid #21262d; white-space: nowrap; }
th { color: #8b949e; text-align: right; position: sticky; top: 0; background: #161b22; }
td { text-align: right; }
th.name, td.name { text-align: left; position: sticky; left: 0; background: #0d1117; }
td.rank { color: #6e7681; }
.minion { color: #6e7681; }
</style>
</head>
<body>
<h1>{{if .Title}}{{.Title}}{{else}}Squad Stats{{end}}</h1>
<div class="meta">Section: {{.Section}} · Mode: {{.Mode}}</div>
{{if .Rows}}
<table>
<thead><tr><th>#</th><th class="name">Player</th>{{range .Columns}}<th>{{.Label}}{{sorted $ .ID}}</th>{{end}}</tr></thead>
<tbody>
{{range $r := .Rows}}<tr><td class="rank">{{$r.Rank}}</td><td class="name">{{$r.Account}}{{if $r.Minion}} <span class="minion">{{$r.Minion}}</span>{{end}}</td>{{range $.Columns}}<td>{{cell $r .ID}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{else}}
<p class="meta">No rows.</p>
{{end}}
</body>
</html>
`))

// htmlFormatter writes a standalone HTML page.
type htmlFormatter struct{}

// NewHTMLFormatter creates a new HTML formatter.
func NewHTMLFormatter() Formatter {
	return &htmlFormatter{}
}

func (f *htmlFormatter) Format(ctx context.Context, table *Table, w io.Writer) error {
	return htmlTemplate.Execute(w, table)
}

func (f *htmlFormatter) Name() string {
	return "html"
}

func (f *htmlFormatter) Description() string {
	return "Standalone HTML page for sharing"
}
