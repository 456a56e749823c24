// Package summary prints an assembly run's outcome to the console.
package summary

import (
	"fmt"
	"io"
	"os"
	"text/template"
)

// RunSummary describes one completed report run.
type RunSummary struct {
	Title      string
	ReportType string
	Subjects   []string
	Failed     []string
	Files      []string
}

// Reporter renders run summaries in a formatted text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(s *RunSummary) error {
	tmpl := `
{{.Title}} ({{.ReportType}})

Subjects rendered: {{len .Subjects}}
{{range .Subjects}}  - {{.}}
{{end}}{{if .Failed}}Subjects skipped after errors: {{len .Failed}}
{{range .Failed}}  - {{.}}
{{end}}{{end}}{{if .Files}}Files written:
{{range .Files}}  - {{.}}
{{end}}{{end}}`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, s)
}
