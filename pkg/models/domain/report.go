package domain

import (
	"fmt"
	"sort"
)

// SectionKind distinguishes data-bearing sections from visual breaks.
type SectionKind string

const (
	DataSection  SectionKind = "data"
	SectionBreak SectionKind = "break"
)

// WidthClass is the container width a rendered section occupies inside a
// row group.
type WidthClass string

const (
	WidthFull         WidthClass = "full"
	WidthThreeFourths WidthClass = "three-fourths"
	WidthHalf         WidthClass = "half"
	WidthThird        WidthClass = "third"
	WidthTwoThirds    WidthClass = "two-thirds"
	WidthFourth       WidthClass = "fourth"
)

// Valid reports whether w is one of the recognized width classes.
func (w WidthClass) Valid() bool {
	switch w {
	case WidthFull, WidthThreeFourths, WidthHalf, WidthThird, WidthTwoThirds, WidthFourth:
		return true
	}
	return false
}

// Orientation controls whether a section's records are laid out as table
// rows or as per-record label/value pairs.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
	// Auto resolves to Vertical when the column count reaches the
	// definition's vertical threshold, otherwise Horizontal.
	Auto Orientation = "auto"
)

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical || o == Auto
}

// OutputMethod selects the assembler's accumulation strategy.
type OutputMethod string

const (
	OneBigReport     OutputMethod = "one_big_report"
	IndividualReport OutputMethod = "individual_report"
	NoReport         OutputMethod = "no_report"
)

func (m OutputMethod) Valid() bool {
	return m == OneBigReport || m == IndividualReport || m == NoReport
}

// DefaultVerticalThreshold is the column count at which Auto orientation
// flips to Vertical. The boundary is inclusive.
const DefaultVerticalThreshold = 10

// Projection derives one display cell from a record. Extract is opaque to
// the engine; it may concatenate fields, format conditionally or build
// hyperlinks. Its output is inserted into the table verbatim.
type Projection struct {
	Label   string
	Extract func(r *Record) string
}

// Field returns a projection that resolves a single named record field and
// stringifies it. Missing fields render as an empty cell.
func Field(label, name string) Projection {
	return Projection{
		Label:   label,
		Extract: func(r *Record) string { return r.String(name) },
	}
}

// RenderSpec describes how one section is rendered for one report type.
type RenderSpec struct {
	Width       WidthClass
	Orientation Orientation
	Columns     []Projection
	// Override sections are rendered in place and ignored by the layout
	// grouper.
	Override bool
	// PostProcess rules are applied to the serialized table in order,
	// each consuming the previous rule's output.
	PostProcess []ColorRule
}

// SectionDefinition is one declared reportable unit. AllData is populated
// by the data-collection side before rendering begins, keyed by subject
// identifier.
type SectionDefinition struct {
	ID      string
	Title   string
	Order   int
	Enabled bool
	// ShowEmpty forces the section to render its header even when the
	// subject has no records.
	ShowEmpty bool
	Kind      SectionKind
	Comment   string
	// Specs maps a report-type name to the spec used when that type is
	// active. A data section without a spec for the active type is
	// skipped entirely.
	Specs map[string]*RenderSpec

	AllData map[string][]*Record
}

// Spec returns the render spec for the given report type, or nil when the
// section does not participate in that type.
func (s *SectionDefinition) Spec(reportType string) *RenderSpec {
	if s.Specs == nil {
		return nil
	}
	return s.Specs[reportType]
}

// SetData installs the collected records for one subject.
func (s *SectionDefinition) SetData(subject string, records []*Record) {
	if s.AllData == nil {
		s.AllData = make(map[string][]*Record)
	}
	s.AllData[subject] = records
}

// Settings are the report-wide knobs shared by every section.
type Settings struct {
	Title             string
	ReportType        string
	ReportTypes       []string
	SkipSectionBreaks bool
	PostProcess       bool
	VerticalThreshold int
	OutputMethod      OutputMethod
}

// ReportDefinition is the root configuration: global settings plus the
// ordered collection of sections. Ordering is total and explicit through
// SectionDefinition.Order, not declaration order.
type ReportDefinition struct {
	Settings Settings
	Sections []*SectionDefinition
}

// OrderedSections returns the sections sorted by their explicit order key.
// The sort is stable so equal keys keep declaration order.
func (d *ReportDefinition) OrderedSections() []*SectionDefinition {
	out := make([]*SectionDefinition, len(d.Sections))
	copy(out, d.Sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Threshold returns the effective Auto-orientation column threshold.
func (d *ReportDefinition) Threshold() int {
	if d.Settings.VerticalThreshold > 0 {
		return d.Settings.VerticalThreshold
	}
	return DefaultVerticalThreshold
}

// ValidationError describes a configuration problem detected at load time.
type ValidationError struct {
	Section string
	Msg     string
}

func (e *ValidationError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("report definition: %s", e.Msg)
	}
	return fmt.Sprintf("section %q: %s", e.Section, e.Msg)
}

// Validate checks the definition eagerly so that unknown width classes,
// orientations or report types surface before any rendering starts.
func (d *ReportDefinition) Validate() error {
	if !d.Settings.OutputMethod.Valid() {
		return &ValidationError{Msg: fmt.Sprintf("unknown output method %q", d.Settings.OutputMethod)}
	}
	if len(d.Settings.ReportTypes) == 0 {
		return &ValidationError{Msg: "no report types declared"}
	}
	known := make(map[string]bool, len(d.Settings.ReportTypes))
	for _, rt := range d.Settings.ReportTypes {
		known[rt] = true
	}
	if !known[d.Settings.ReportType] {
		return &ValidationError{Msg: fmt.Sprintf("active report type %q is not declared", d.Settings.ReportType)}
	}

	seen := make(map[string]bool, len(d.Sections))
	for _, sec := range d.Sections {
		if sec.ID == "" {
			return &ValidationError{Section: sec.Title, Msg: "missing section ID"}
		}
		if seen[sec.ID] {
			return &ValidationError{Section: sec.ID, Msg: "duplicate section ID"}
		}
		seen[sec.ID] = true

		if sec.Kind != DataSection && sec.Kind != SectionBreak {
			return &ValidationError{Section: sec.ID, Msg: fmt.Sprintf("unknown section kind %q", sec.Kind)}
		}
		if sec.Kind == SectionBreak && len(sec.Specs) > 0 {
			return &ValidationError{Section: sec.ID, Msg: "section break cannot carry render specs"}
		}
		for rt, spec := range sec.Specs {
			if !known[rt] {
				return &ValidationError{Section: sec.ID, Msg: fmt.Sprintf("spec for undeclared report type %q", rt)}
			}
			if !spec.Width.Valid() {
				return &ValidationError{Section: sec.ID, Msg: fmt.Sprintf("unknown width class %q", spec.Width)}
			}
			if !spec.Orientation.Valid() {
				return &ValidationError{Section: sec.ID, Msg: fmt.Sprintf("unknown orientation %q", spec.Orientation)}
			}
			if len(spec.Columns) == 0 {
				return &ValidationError{Section: sec.ID, Msg: fmt.Sprintf("spec for report type %q declares no columns", rt)}
			}
			for _, rule := range spec.PostProcess {
				if err := rule.Validate(); err != nil {
					return &ValidationError{Section: sec.ID, Msg: err.Error()}
				}
			}
		}
	}
	return nil
}

// Fragment is the rendering output unit: markup plus the slot metadata the
// layout grouper consumes. An empty fragment renders nothing and occupies
// no slots.
type Fragment struct {
	HTML        string
	Slots       int
	SlotsPerRow int
	Override    bool
}

// Empty reports whether the fragment carries no markup.
func (f Fragment) Empty() bool { return f.HTML == "" }
