// Package assemble drives the renderer and layout grouper across every
// subject and every declared section, concatenating fragments into
// complete documents.
package assemble

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/de-tools/fleet-report/pkg/models/domain"
	"github.com/de-tools/fleet-report/pkg/services/report/layout"
	"github.com/de-tools/fleet-report/pkg/services/report/markup"
	"github.com/de-tools/fleet-report/pkg/services/report/render"
)

// Assembler renders reports for a fixed definition and template family.
// Construction validates the definition and resolves the family, so
// shared-setup failures surface before the first subject.
type Assembler struct {
	def      *domain.ReportDefinition
	set      *markup.Set
	renderer *render.Renderer
}

func New(def *domain.ReportDefinition, family markup.Family) (*Assembler, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	set, err := markup.For(family)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	return &Assembler{
		def:      def,
		set:      set,
		renderer: render.New(def, set),
	}, nil
}

// Result is one assembly run's output. Combined is filled under
// OneBigReport, PerSubject under IndividualReport. Failed lists subjects
// whose rendering failed and was skipped.
type Result struct {
	Combined   string
	PerSubject map[string]string
	Subjects   []string
	Failed     []string
}

// Run assembles reports for the given subjects in order. A failure inside
// one subject's rendering is logged and skips only that subject; the
// remaining subjects still render.
func (a *Assembler) Run(ctx context.Context, subjects []string) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	result := &Result{PerSubject: make(map[string]string)}

	if a.def.Settings.OutputMethod == domain.NoReport {
		return result, nil
	}

	var combined strings.Builder
	if a.def.Settings.OutputMethod == domain.OneBigReport {
		combined.WriteString(markup.Fill(a.set.DocOpen, html.EscapeString(a.def.Settings.Title)))
	}

	for _, subject := range subjects {
		body, err := a.subjectBody(subject)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("subject", subject).
				Msg("report rendering failed, skipping subject")
			result.Failed = append(result.Failed, subject)
			continue
		}
		result.Subjects = append(result.Subjects, subject)

		switch a.def.Settings.OutputMethod {
		case domain.OneBigReport:
			combined.WriteString(markup.Fill(a.set.SubjectHeader, html.EscapeString(subject)))
			combined.WriteString(body)
		case domain.IndividualReport:
			var doc strings.Builder
			doc.WriteString(markup.Fill(a.set.DocOpen, html.EscapeString(a.def.Settings.Title)))
			doc.WriteString(markup.Fill(a.set.SubjectHeader, html.EscapeString(subject)))
			doc.WriteString(body)
			doc.WriteString(a.set.DocClose)
			result.PerSubject[subject] = doc.String()
		}
	}

	if a.def.Settings.OutputMethod == domain.OneBigReport {
		combined.WriteString(a.set.DocClose)
		result.Combined = combined.String()
	}
	return result, nil
}

// Subject renders one subject's full document regardless of the
// definition's output method. The web API serves reports this way.
func (a *Assembler) Subject(subject string) (string, error) {
	body, err := a.subjectBody(subject)
	if err != nil {
		return "", err
	}
	var doc strings.Builder
	doc.WriteString(markup.Fill(a.set.DocOpen, html.EscapeString(a.def.Settings.Title)))
	doc.WriteString(markup.Fill(a.set.SubjectHeader, html.EscapeString(subject)))
	doc.WriteString(body)
	doc.WriteString(a.set.DocClose)
	return doc.String(), nil
}

// subjectBody walks the sections in declared order, letting the grouper
// decide row-group boundaries. Sections are strictly sequential: the
// grouper state is order-dependent and non-commutative.
func (a *Assembler) subjectBody(subject string) (string, error) {
	var b strings.Builder
	var g layout.Grouper

	for _, sec := range a.def.OrderedSections() {
		frag, err := a.renderer.Section(sec, subject)
		if err != nil {
			return "", err
		}
		if frag.Empty() {
			continue
		}
		d := g.Place(frag)
		if d.ClosePrev {
			b.WriteString(a.set.GroupClose)
		}
		if d.OpenNew {
			b.WriteString(a.set.GroupOpen)
		}
		b.WriteString(frag.HTML)
	}
	if g.Close() {
		b.WriteString(a.set.GroupClose)
	}
	return b.String(), nil
}
