// Package tables renders collected section data as fixed-width text
// tables for terminal preview, without going through the HTML pipeline.
package tables

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
)

// SectionTable is one section's rectangular data: row 0 holds the column
// labels, the remaining rows the records.
type SectionTable struct {
	Title string
	Rows  [][]string
}

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(sections []SectionTable) error {
	for _, section := range sections {
		if err := r.table(section); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) table(section SectionTable) error {
	widths := columnWidths(section.Rows)

	funcMap := template.FuncMap{
		"formatRow": func(cells []string) string {
			parts := make([]string, len(cells))
			for i, cell := range cells {
				parts[i] = fmt.Sprintf(" %-*s ", widths[i], cell)
			}
			return "|" + strings.Join(parts, "|") + "|"
		},
		"separator": func() string {
			parts := make([]string, len(widths))
			for i, w := range widths {
				parts[i] = strings.Repeat("-", w+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl := `
=== {{.Title}} ===
{{if .Rows}}{{separator}}
{{formatRow (index .Rows 0)}}
{{separator}}
{{range (slice .Rows 1)}}{{formatRow .}}
{{end}}{{separator}}
{{else}}(no records)
{{end}}`

	t, err := template.New("table").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, section)
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}
