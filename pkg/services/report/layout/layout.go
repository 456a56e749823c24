// Package layout tracks horizontal slot consumption across rendered
// sections and decides row-group boundaries.
package layout

import "github.com/de-tools/fleet-report/pkg/models/domain"

// Slots reports how many grid slots a width class consumes and how many
// slots make up a full row at that class's granularity. Halves and
// quarters share a four-slot row; thirds use a three-slot row, which is
// why mixing the two families always breaks the group.
func Slots(w domain.WidthClass) (needed, perRow int) {
	switch w {
	case domain.WidthFull:
		return 4, 4
	case domain.WidthThreeFourths:
		return 3, 4
	case domain.WidthHalf:
		return 2, 4
	case domain.WidthFourth:
		return 1, 4
	case domain.WidthTwoThirds:
		return 2, 3
	case domain.WidthThird:
		return 1, 3
	default:
		// Unknown classes are rejected by definition validation;
		// render whatever slipped through on its own row.
		return 4, 4
	}
}

// Decision tells the assembler what to emit before the fragment.
type Decision struct {
	ClosePrev bool
	OpenNew   bool
}

// Grouper is the per-subject accumulator. Zero value means no group open;
// call Reset between subjects.
type Grouper struct {
	open   bool
	used   int
	perRow int
}

// Place accounts for one fragment and decides whether a new row group must
// open first. Override fragments bypass grouping entirely: rendered in
// place, not counted. The three open-new conditions are evaluated in this
// exact order, first match wins:
//
//  1. the fragment's slots-per-row differs from the tracked row size,
//  2. the fragment alone fills a row (needed == perRow),
//  3. the open group cannot fit it (used + needed > perRow).
func (g *Grouper) Place(f domain.Fragment) Decision {
	if f.Override {
		return Decision{}
	}
	needed, perRow := f.Slots, f.SlotsPerRow

	if !g.open {
		g.open = true
		g.perRow = perRow
		g.used = needed
		return Decision{OpenNew: true}
	}
	if perRow != g.perRow {
		return g.reopen(needed, perRow)
	}
	if needed == perRow {
		return g.reopen(needed, perRow)
	}
	if g.used+needed > perRow {
		return g.reopen(needed, perRow)
	}
	g.used += needed
	return Decision{}
}

func (g *Grouper) reopen(needed, perRow int) Decision {
	g.perRow = perRow
	g.used = needed
	return Decision{ClosePrev: true, OpenNew: true}
}

// Close force-closes the group at the end of a subject's section list. It
// reports whether a group was open and resets the state.
func (g *Grouper) Close() bool {
	wasOpen := g.open
	g.Reset()
	return wasOpen
}

// Reset clears the accumulator for the next subject.
func (g *Grouper) Reset() {
	g.open = false
	g.used = 0
	g.perRow = 0
}

// Used exposes the current slot consumption; the invariant is that it
// never exceeds the tracked slots-per-row while a group is open.
func (g *Grouper) Used() (used, perRow int, open bool) {
	return g.used, g.perRow, g.open
}
