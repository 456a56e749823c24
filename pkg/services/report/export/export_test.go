package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

func TestRectangle(t *testing.T) {
	spec := &domain.RenderSpec{
		Columns: []domain.Projection{
			domain.Field("Name", "name"),
			domain.Field("State", "state"),
		},
	}
	records := []*domain.Record{
		domain.NewRecord().Set("name", "vs_www").Set("state", "enabled"),
		domain.NewRecord().Set("name", "vs_api").Set("state", "disabled"),
	}

	got := Rectangle(spec, records)

	assert.Equal(t, [][]string{
		{"Name", "State"},
		{"vs_www", "enabled"},
		{"vs_api", "disabled"},
	}, got)
}

func TestRectangle_NABecomesEmpty(t *testing.T) {
	spec := &domain.RenderSpec{
		Columns: []domain.Projection{
			{Label: "Monitor", Extract: func(*domain.Record) string { return "N/A" }},
		},
	}

	got := Rectangle(spec, []*domain.Record{domain.NewRecord()})

	assert.Equal(t, [][]string{{"Monitor"}, {""}}, got)
}

func TestRectangle_NoRecordsStillHasHeader(t *testing.T) {
	spec := &domain.RenderSpec{
		Columns: []domain.Projection{domain.Field("Name", "name")},
	}

	got := Rectangle(spec, nil)

	assert.Equal(t, [][]string{{"Name"}}, got)
}

func TestTables_SelectsEnabledDataSectionsInOrder(t *testing.T) {
	def := &domain.ReportDefinition{
		Settings: domain.Settings{
			ReportType:   "ExcelExport",
			ReportTypes:  []string{"ExcelExport"},
			OutputMethod: domain.NoReport,
		},
		Sections: []*domain.SectionDefinition{
			{
				ID: "second", Order: 20, Enabled: true, Kind: domain.DataSection,
				Specs: map[string]*domain.RenderSpec{
					"ExcelExport": {Width: domain.WidthFull, Orientation: domain.Horizontal,
						Columns: []domain.Projection{domain.Field("B", "b")}},
				},
			},
			{
				ID: "break", Order: 5, Enabled: true, Kind: domain.SectionBreak,
			},
			{
				ID: "first", Order: 10, Enabled: true, Kind: domain.DataSection,
				Specs: map[string]*domain.RenderSpec{
					"ExcelExport": {Width: domain.WidthFull, Orientation: domain.Horizontal,
						Columns: []domain.Projection{domain.Field("A", "a")}},
				},
			},
			{
				ID: "no-spec", Order: 30, Enabled: true, Kind: domain.DataSection,
				Specs: map[string]*domain.RenderSpec{},
			},
		},
	}
	def.Sections[0].SetData("dev", []*domain.Record{domain.NewRecord().Set("b", 2)})
	def.Sections[2].SetData("dev", []*domain.Record{domain.NewRecord().Set("a", 1)})

	tables, order := Tables(def, "dev")

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, [][]string{{"A"}, {"1"}}, tables["first"])
	assert.Equal(t, [][]string{{"B"}, {"2"}}, tables["second"])
}
