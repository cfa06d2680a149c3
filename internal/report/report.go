package report

import (
	"bytes"
	"strings"
	"text/template"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"chartscout/domain/chart"
	"chartscout/domain/column"
	"chartscout/domain/core"
	"chartscout/internal/errors"
	"chartscout/internal/insight"
	"chartscout/internal/profile"
)

// Data is everything the narrative report needs for one analysis run.
type Data struct {
	RunID       core.RunID
	Dataset     string
	GeneratedAt time.Time
	RowCount    int
	Columns     []column.Info
	Charts      []chart.Recommendation
	Stats       chart.RunStats
	Profiles    []profile.Summary
	Insights    insight.Insights
}

const reportTemplate = `# Analysis Report: {{.Dataset}}

Run {{.RunID}} · generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}} · {{.RowCount}} sample rows

## Columns

| Column | Type | Unique values | Has nulls |
|---|---|---|---|
{{- range .Columns}}
| {{.Name}} | {{.Type}} | {{.UniqueValues}} | {{if .HasNulls}}yes{{else}}no{{end}} |
{{- end}}

## Recommended Charts

{{if .Charts}}{{range .Charts}}- **{{.Title}}** ({{.Type}}; x: {{.XAxis}}, y: {{.YAxis}})
{{end}}{{else}}No charts could be recommended for this sample.
{{end}}
Diversity: {{printf "%.0f" (pct .Stats.DiversityScore)}}% of analytical aspects covered, {{.Stats.UniqueColumnCombinations}} distinct column combinations.
{{- if .Profiles}}

## Numerical Summaries

| Column | Count | Mean | Std dev | Min | Median | Max |
|---|---|---|---|---|---|---|
{{- range .Profiles}}
| {{.Column}} | {{.Count}} | {{printf "%.2f" .Mean}} | {{printf "%.2f" .StdDev}} | {{printf "%.2f" .Min}} | {{printf "%.2f" .Median}} | {{printf "%.2f" .Max}} |
{{- end}}
{{- end}}

## Business Context

Detected industry: **{{.Insights.Industry}}** (confidence {{printf "%.0f" (pct .Insights.Confidence)}}%)

Questions worth asking of this data:
{{range .Insights.Questions}}- {{.}}
{{end}}`

// Builder renders the narrative analysis report as Markdown, with an HTML
// rendering on top for the HTTP surface.
type Builder struct {
	tmpl *template.Template
}

// NewBuilder parses the report template. Panics only on a programming error
// in the template itself.
func NewBuilder() *Builder {
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"pct": func(f float64) float64 { return f * 100 },
	}).Parse(reportTemplate))
	return &Builder{tmpl: tmpl}
}

// Markdown renders the report for one run.
func (b *Builder) Markdown(d Data) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, d); err != nil {
		return "", errors.Wrap(err, "report rendering failed")
	}
	return buf.String(), nil
}

// HTML renders the Markdown report to an HTML fragment.
func (b *Builder) HTML(d Data) (string, error) {
	md, err := b.Markdown(d)
	if err != nil {
		return "", err
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.ToHTML([]byte(md), p, renderer)
	return strings.TrimSpace(string(out)), nil
}
