package report

import (
	"fmt"
	"html/template"
	"io"
	"sort"

	"seo-audit/pkg/models"
)

// htmlReport groups issues per category for the print layout
type htmlReport struct {
	Result     *models.AnalysisResult
	Categories []htmlCategory
}

type htmlCategory struct {
	Name   models.Category
	Issues []models.Issue
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SEO Audit - {{.Result.Config.URL}}</title>
<style>
body { font-family: Georgia, serif; margin: 2em auto; max-width: 50em; color: #222; }
h1 { border-bottom: 3px solid #222; padding-bottom: 0.3em; }
h2 { margin-top: 2em; border-bottom: 1px solid #999; }
.score { font-size: 3em; font-weight: bold; }
.issue { margin: 1.5em 0; page-break-inside: avoid; }
.severity { text-transform: uppercase; font-size: 0.8em; padding: 2px 8px; border: 1px solid; }
.severity.critical { color: #a00; }
.severity.high { color: #c60; }
.severity.medium { color: #860; }
.severity.low { color: #555; }
ol, ul { margin: 0.3em 0; }
pre { background: #f5f5f5; padding: 0.7em; overflow-x: auto; font-size: 0.85em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 4px 10px; text-align: left; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>SEO Audit Report</h1>
<p><strong>{{.Result.Config.URL}}</strong><br>
Run {{.Result.RunID}}<br>
{{.Result.StartedAt.Format "2006-01-02 15:04 MST"}}</p>

<p class="score">{{.Result.Score}}/100</p>

<table>
<tr><th>Pages analyzed</th><td>{{.Result.Summary.PagesAnalyzed}}</td></tr>
<tr><th>Total issues</th><td>{{.Result.Summary.TotalIssues}}</td></tr>
<tr><th>Critical</th><td>{{.Result.Summary.CriticalIssues}}</td></tr>
<tr><th>High</th><td>{{.Result.Summary.HighIssues}}</td></tr>
<tr><th>Medium</th><td>{{.Result.Summary.MediumIssues}}</td></tr>
<tr><th>Low</th><td>{{.Result.Summary.LowIssues}}</td></tr>
</table>

{{range .Categories}}
<h2>{{.Name}}</h2>
{{range .Issues}}
<div class="issue">
<h3>{{.Title}} <span class="severity {{.Severity}}">{{.Severity}}</span></h3>
<p>{{.WhyItMatters}}</p>
{{if .Evidence}}<ul>{{range .Evidence}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .FixSteps}}<h4>How to fix</h4><ol>{{range .FixSteps}}<li>{{.}}</li>{{end}}</ol>{{end}}
{{if .Snippets}}{{range .Snippets}}<pre>{{.}}</pre>{{end}}{{end}}
{{if .VerifySteps}}<h4>Verify</h4><ol>{{range .VerifySteps}}<li>{{.}}</li>{{end}}</ol>{{end}}
{{if .ManualCheck}}<p><em>Manual verification required.</em></p>{{end}}
</div>
{{end}}
{{end}}

</body>
</html>
`))

// WriteHTML renders a print-oriented report grouped by category
func WriteHTML(w io.Writer, result *models.AnalysisResult) error {
	grouped := make(map[models.Category][]models.Issue)
	for _, issue := range result.Issues {
		grouped[issue.Category] = append(grouped[issue.Category], issue)
	}

	categories := make([]htmlCategory, 0, len(grouped))
	for name, issues := range grouped {
		categories = append(categories, htmlCategory{Name: name, Issues: issues})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	data := htmlReport{Result: result, Categories: categories}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}
	return nil
}
