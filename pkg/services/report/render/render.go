// Package render turns one section definition plus one subject into a
// rendered fragment.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/de-tools/fleet-report/pkg/models/domain"
	"github.com/de-tools/fleet-report/pkg/services/report/colorize"
	"github.com/de-tools/fleet-report/pkg/services/report/flatten"
	"github.com/de-tools/fleet-report/pkg/services/report/layout"
	"github.com/de-tools/fleet-report/pkg/services/report/markup"
)

// Row templates shared by both table orientations. {0} is the column-span
// count, {1} the title or comment text.
const (
	titleRowTmpl   = `<tr class="section-title"><th colspan="{0}">{1}</th></tr>`
	commentRowTmpl = `<tr class="section-comment"><td colspan="{0}">{1}</td></tr>`
	dividerRowTmpl = `<tr class="divider"><td colspan="{0}"></td></tr>`
)

// Renderer renders sections against one report definition and one template
// family. It holds no per-subject state, so output is idempotent for
// identical inputs.
type Renderer struct {
	def *domain.ReportDefinition
	set *markup.Set
}

func New(def *domain.ReportDefinition, set *markup.Set) *Renderer {
	return &Renderer{def: def, set: set}
}

// Section renders one section for one subject.
//
// Section breaks become a banner (or nothing when breaks are globally
// skipped). Data sections without a spec for the active report type, and
// sections with no data when ShowEmpty is off, yield an empty fragment
// that occupies no layout slots.
func (r *Renderer) Section(sec *domain.SectionDefinition, subject string) (domain.Fragment, error) {
	if !sec.Enabled {
		return domain.Fragment{}, nil
	}

	if sec.Kind == domain.SectionBreak {
		if r.def.Settings.SkipSectionBreaks {
			return domain.Fragment{}, nil
		}
		// Banners carry their own full-width row and bypass grouping.
		return domain.Fragment{
			HTML:     markup.Fill(r.set.Banner, html.EscapeString(sec.Title)),
			Override: true,
		}, nil
	}

	spec := sec.Spec(r.def.Settings.ReportType)
	if spec == nil {
		return domain.Fragment{}, nil
	}

	records := sec.AllData[subject]
	if len(records) == 0 && !sec.ShowEmpty {
		return domain.Fragment{}, nil
	}

	var tbl string
	if r.orientation(spec) == domain.Vertical {
		tbl = r.verticalTable(sec, spec, records)
	} else {
		tbl = r.horizontalTable(sec, spec, records)
	}

	if r.def.Settings.PostProcess && len(spec.PostProcess) > 0 {
		out, err := colorize.Chain(tbl, spec.PostProcess)
		if err != nil {
			return domain.Fragment{}, fmt.Errorf("section %q: post-process: %w", sec.ID, err)
		}
		tbl = out
	}

	needed, perRow := layout.Slots(spec.Width)
	return domain.Fragment{
		HTML:        markup.Fill(r.set.Container(spec.Width), tbl),
		Slots:       needed,
		SlotsPerRow: perRow,
		Override:    spec.Override,
	}, nil
}

// orientation resolves Auto against the definition's column threshold. The
// boundary is inclusive: a column count equal to the threshold already
// flips to Vertical.
func (r *Renderer) orientation(spec *domain.RenderSpec) domain.Orientation {
	if spec.Orientation != domain.Auto {
		return spec.Orientation
	}
	if len(spec.Columns) >= r.def.Threshold() {
		return domain.Vertical
	}
	return domain.Horizontal
}

func (r *Renderer) horizontalTable(sec *domain.SectionDefinition, spec *domain.RenderSpec, records []*domain.Record) string {
	span := strconv.Itoa(len(spec.Columns))

	var b strings.Builder
	b.WriteString(`<table class="section" id="` + html.EscapeString(sec.ID) + `">`)
	b.WriteString("<thead>")
	b.WriteString(markup.Fill(titleRowTmpl, span, html.EscapeString(sec.Title)))
	if sec.Comment != "" {
		b.WriteString(markup.Fill(commentRowTmpl, span, html.EscapeString(sec.Comment)))
	}
	b.WriteString(`<tr class="column-labels">`)
	for _, col := range spec.Columns {
		b.WriteString("<th>" + html.EscapeString(col.Label) + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, rec := range records {
		b.WriteString("<tr>")
		for _, col := range spec.Columns {
			// Projections are opaque derivations and may emit
			// markup of their own; their output is not escaped.
			b.WriteString("<td>" + col.Extract(rec) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// verticalTable renders each record as its own two-column mini-table with
// divider rows in between, wrapped in one outer table carrying the section
// header. Cells go through the same projections as horizontal layout, so
// orientation never changes content, only shape.
func (r *Renderer) verticalTable(sec *domain.SectionDefinition, spec *domain.RenderSpec, records []*domain.Record) string {
	var b strings.Builder
	b.WriteString(`<table class="section vertical" id="` + html.EscapeString(sec.ID) + `">`)
	b.WriteString("<thead>")
	b.WriteString(markup.Fill(titleRowTmpl, "2", html.EscapeString(sec.Title)))
	if sec.Comment != "" {
		b.WriteString(markup.Fill(commentRowTmpl, "2", html.EscapeString(sec.Comment)))
	}
	b.WriteString("</thead><tbody>")
	for i, rec := range records {
		if i > 0 {
			b.WriteString(markup.Fill(dividerRowTmpl, "2"))
		}
		b.WriteString(`<tr class="entity"><td colspan="2"><table class="pairs"><tbody>`)
		for _, pair := range flatten.Projected(rec, spec.Columns) {
			b.WriteString("<tr><th>" + html.EscapeString(pair.Label) + "</th><td>" + pair.Value + "</td></tr>")
		}
		b.WriteString("</tbody></table></td></tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
