// Package export flattens projected section data into rectangular string
// arrays for hand-off to spreadsheet writers.
package export

import (
	"github.com/de-tools/fleet-report/pkg/models/domain"
)

// Rectangle projects records into a rectangular array: row 0 holds the
// column labels, rows 1..N the stringified cell values. The "N/A"
// placeholder becomes an empty cell so spreadsheet filters stay clean.
func Rectangle(spec *domain.RenderSpec, records []*domain.Record) [][]string {
	out := make([][]string, 0, len(records)+1)

	header := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		header[i] = col.Label
	}
	out = append(out, header)

	for _, rec := range records {
		row := make([]string, len(spec.Columns))
		for i, col := range spec.Columns {
			v := col.Extract(rec)
			if v == "N/A" {
				v = ""
			}
			row[i] = v
		}
		out = append(out, row)
	}
	return out
}

// Tables builds the rectangular arrays for every enabled data section of
// one subject, keyed by section ID, in section order. Sections without a
// spec for the active report type or without data are left out.
func Tables(def *domain.ReportDefinition, subject string) (map[string][][]string, []string) {
	tables := make(map[string][][]string)
	var order []string
	for _, sec := range def.OrderedSections() {
		if !sec.Enabled || sec.Kind != domain.DataSection {
			continue
		}
		spec := sec.Spec(def.Settings.ReportType)
		if spec == nil {
			continue
		}
		records := sec.AllData[subject]
		if len(records) == 0 && !sec.ShowEmpty {
			continue
		}
		tables[sec.ID] = Rectangle(spec, records)
		order = append(order, sec.ID)
	}
	return tables, order
}
