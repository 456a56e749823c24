package assemble

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fleet-report/pkg/models/domain"
	"github.com/de-tools/fleet-report/pkg/services/report/markup"
)

func testDefinition(method domain.OutputMethod) *domain.ReportDefinition {
	half := func(id string, order int) *domain.SectionDefinition {
		return &domain.SectionDefinition{
			ID: id, Title: id, Order: order, Enabled: true, Kind: domain.DataSection,
			Specs: map[string]*domain.RenderSpec{
				"FullDocumentation": {
					Width:       domain.WidthHalf,
					Orientation: domain.Horizontal,
					Columns:     []domain.Projection{domain.Field("Name", "name")},
				},
			},
		}
	}

	def := &domain.ReportDefinition{
		Settings: domain.Settings{
			Title:             "Fleet Documentation",
			ReportType:        "FullDocumentation",
			ReportTypes:       []string{"FullDocumentation"},
			SkipSectionBreaks: true,
			PostProcess:       true,
			OutputMethod:      method,
		},
		Sections: []*domain.SectionDefinition{
			half("alpha", 10),
			half("beta", 20),
			{
				ID: "gamma", Title: "gamma", Order: 30, Enabled: true, Kind: domain.DataSection,
				Specs: map[string]*domain.RenderSpec{
					"FullDocumentation": {
						Width:       domain.WidthFull,
						Orientation: domain.Horizontal,
						Columns:     []domain.Projection{domain.Field("Name", "name")},
					},
				},
			},
		},
	}

	for _, sec := range def.Sections {
		for _, subject := range []string{"bigip-01", "bigip-02"} {
			sec.SetData(subject, []*domain.Record{
				domain.NewRecord().Set("name", sec.ID+"@"+subject),
			})
		}
	}
	return def
}

func TestRun_OneBigReport(t *testing.T) {
	a, err := New(testDefinition(domain.OneBigReport), markup.DynamicGrid)
	require.NoError(t, err)

	result, err := a.Run(context.Background(), []string{"bigip-01", "bigip-02"})
	require.NoError(t, err)

	assert.Empty(t, result.PerSubject)
	assert.Equal(t, []string{"bigip-01", "bigip-02"}, result.Subjects)
	assert.Contains(t, result.Combined, "Fleet Documentation")
	assert.Contains(t, result.Combined, ">bigip-01</h2>")
	assert.Contains(t, result.Combined, ">bigip-02</h2>")
	assert.Equal(t, 1, strings.Count(result.Combined, "</html>"))
	// Subjects appear in iteration order.
	assert.Less(t,
		strings.Index(result.Combined, "bigip-01"),
		strings.Index(result.Combined, "bigip-02"))
}

func TestRun_IndividualReport(t *testing.T) {
	a, err := New(testDefinition(domain.IndividualReport), markup.DynamicGrid)
	require.NoError(t, err)

	result, err := a.Run(context.Background(), []string{"bigip-01", "bigip-02"})
	require.NoError(t, err)

	assert.Empty(t, result.Combined)
	require.Len(t, result.PerSubject, 2)
	doc := result.PerSubject["bigip-01"]
	assert.Contains(t, doc, ">bigip-01</h2>")
	assert.NotContains(t, doc, "bigip-02")
	assert.Equal(t, 1, strings.Count(doc, "</html>"))
}

func TestRun_NoReport(t *testing.T) {
	a, err := New(testDefinition(domain.NoReport), markup.DynamicGrid)
	require.NoError(t, err)

	result, err := a.Run(context.Background(), []string{"bigip-01"})
	require.NoError(t, err)

	assert.Empty(t, result.Combined)
	assert.Empty(t, result.PerSubject)
}

func TestRun_GroupBoundaries(t *testing.T) {
	// alpha and beta are halves sharing one row group; gamma is full
	// width and forces its own.
	a, err := New(testDefinition(domain.IndividualReport), markup.DynamicGrid)
	require.NoError(t, err)

	result, err := a.Run(context.Background(), []string{"bigip-01"})
	require.NoError(t, err)

	body := result.PerSubject["bigip-01"]
	assert.Equal(t, 2, strings.Count(body, `<div class="row">`))
	assert.Less(t, strings.Index(body, "alpha@bigip-01"), strings.Index(body, "beta@bigip-01"))
	assert.Less(t, strings.Index(body, "beta@bigip-01"), strings.Index(body, "gamma@bigip-01"))
}

func TestRun_SubjectFailureSkipsOnlyThatSubject(t *testing.T) {
	def := testDefinition(domain.IndividualReport)
	a, err := New(def, markup.DynamicGrid)
	require.NoError(t, err)

	// Poison one section for bigip-01 only: an unknown rule kind slips
	// past construction-time validation when added afterwards, and the
	// per-subject boundary has to contain it.
	poisoned := def.Sections[0]
	poisoned.Specs["FullDocumentation"].PostProcess = []domain.ColorRule{
		{Kind: "bogus", Attr: "class", AttrValue: "x"},
	}
	poisoned.AllData = map[string][]*domain.Record{
		"bigip-01": {domain.NewRecord().Set("name", "boom")},
	}

	result, err := a.Run(context.Background(), []string{"bigip-01", "bigip-02"})
	require.NoError(t, err)

	assert.Equal(t, []string{"bigip-01"}, result.Failed)
	assert.Equal(t, []string{"bigip-02"}, result.Subjects)
	assert.NotContains(t, result.PerSubject, "bigip-01")
	assert.Contains(t, result.PerSubject, "bigip-02")
}

func TestNew_RejectsInvalidDefinition(t *testing.T) {
	def := testDefinition(domain.OneBigReport)
	def.Settings.ReportType = "Unknown"

	_, err := New(def, markup.DynamicGrid)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestNew_RejectsUnknownTemplateFamily(t *testing.T) {
	_, err := New(testDefinition(domain.OneBigReport), "Gopher")
	assert.Error(t, err)
}

func TestSubject_RendersFullDocument(t *testing.T) {
	a, err := New(testDefinition(domain.NoReport), markup.DynamicGrid)
	require.NoError(t, err)

	doc, err := a.Subject("bigip-01")
	require.NoError(t, err)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, ">bigip-01</h2>")
	assert.Contains(t, doc, "alpha@bigip-01")
	assert.Contains(t, doc, "</html>")
}
