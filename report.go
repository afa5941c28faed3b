package causelist

import (
	"html/template"
	"io"
)

// Report is the result of one cause-list search, ready for rendering.
type Report struct {
	Advocate string
	Date     ListDate
	Side     Side
	Entries  []Entry
}

// ReportWriter renders a report to a writer in some output format.
// The root package provides HTML; the gofpdf subpackage provides PDF.
type ReportWriter interface {
	WriteReport(w io.Writer, rep *Report) error
}

// Ensure HTMLReportWriter implements ReportWriter at compile time.
var _ ReportWriter = (*HTMLReportWriter)(nil)

// HTMLReportWriter renders reports as standalone HTML documents styled after
// the court's printed daily list.
type HTMLReportWriter struct{}

// NewHTMLReportWriter creates a new HTMLReportWriter.
func NewHTMLReportWriter() *HTMLReportWriter {
	return &HTMLReportWriter{}
}

// WriteReport renders the report as HTML. Every entry line passes through
// the template engine, so document text is always escaped.
func (hw *HTMLReportWriter) WriteReport(w io.Writer, rep *Report) error {
	return reportTemplate.Execute(w, rep)
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html><head><meta charset='utf-8'>
<title>Cause List – {{.Advocate}}</title>
<style>
  body{font-family:sans-serif;padding:2rem}
  h1{font-family:'Old English Text MT',serif;font-size:2.5rem;text-align:center;margin:0}
  h2{font-family:serif;font-size:1.75rem;text-align:center;margin:0.25rem 0}
  h3.title{font-family:serif;font-size:1.25rem;text-align:center;margin:1rem 0}
  hr{border:none;border-top:1px solid #ccc;margin:1rem 0}
  pre{background:#fafafa;padding:1rem;border:1px solid #ddd;white-space:pre-wrap}
  h3{margin-top:1.5rem}
  .summary{background:#e8f4fd;padding:1rem;border-left:4px solid #0055a5;margin:1rem 0}
</style>
</head><body>
  <h1>In The High Court at Calcutta</h1>
  <h2>{{.Side.Jurisdiction}}</h2>
  <hr>
  <h3 class='title'>Daily Supplementary List Of Cases For Hearing On {{.Date.Header}}</h3>
  <hr>
{{- if .Entries}}
  <div class='summary'>
    <strong>Found {{len .Entries}} match(es) for &quot;{{.Advocate}}&quot;</strong>
  </div>
{{- range .Entries}}
  <h3>Page {{.PageNumber}}</h3>
  <pre>{{range .Lines}}{{.}}
{{end}}</pre>
{{- end}}
{{- else}}
  <div class='summary'>
    <strong>No matches found for &quot;{{.Advocate}}&quot;</strong>
  </div>
{{- end}}
</body></html>
`))
