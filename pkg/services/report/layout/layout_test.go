package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

func fragment(w domain.WidthClass) domain.Fragment {
	needed, perRow := Slots(w)
	return domain.Fragment{HTML: "x", Slots: needed, SlotsPerRow: perRow}
}

func TestGrouper_TwoHalvesShareOneGroup(t *testing.T) {
	var g Grouper

	d := g.Place(fragment(domain.WidthHalf))
	assert.Equal(t, Decision{OpenNew: true}, d)
	used, _, _ := g.Used()
	assert.Equal(t, 2, used)

	d = g.Place(fragment(domain.WidthHalf))
	assert.Equal(t, Decision{}, d)
	used, perRow, _ := g.Used()
	assert.Equal(t, 4, used)
	assert.Equal(t, 4, perRow)

	// The row is exactly full, so the next full-width section closes it.
	d = g.Place(fragment(domain.WidthFull))
	assert.Equal(t, Decision{ClosePrev: true, OpenNew: true}, d)
}

func TestGrouper_FullAfterHalfForcesNewGroup(t *testing.T) {
	var g Grouper

	g.Place(fragment(domain.WidthHalf))
	// Slots remain, but a section that alone fills a row always opens
	// its own group.
	d := g.Place(fragment(domain.WidthFull))
	assert.Equal(t, Decision{ClosePrev: true, OpenNew: true}, d)
}

func TestGrouper_RowSizeChangeForcesNewGroup(t *testing.T) {
	var g Grouper

	g.Place(fragment(domain.WidthHalf))
	// Thirds use a three-slot row; mixing granularities always breaks
	// the group even though one slot would still fit.
	d := g.Place(fragment(domain.WidthThird))
	assert.Equal(t, Decision{ClosePrev: true, OpenNew: true}, d)

	used, perRow, _ := g.Used()
	assert.Equal(t, 1, used)
	assert.Equal(t, 3, perRow)
}

func TestGrouper_OverflowForcesNewGroup(t *testing.T) {
	var g Grouper

	g.Place(fragment(domain.WidthHalf))
	g.Place(fragment(domain.WidthFourth))
	// 2 + 1 used; three-fourths does not fit.
	d := g.Place(fragment(domain.WidthThreeFourths))
	assert.Equal(t, Decision{ClosePrev: true, OpenNew: true}, d)
}

func TestGrouper_OverrideBypassesGrouping(t *testing.T) {
	var g Grouper

	g.Place(fragment(domain.WidthHalf))
	before, _, _ := g.Used()

	f := fragment(domain.WidthFull)
	f.Override = true
	d := g.Place(f)

	assert.Equal(t, Decision{}, d)
	after, _, _ := g.Used()
	assert.Equal(t, before, after)
}

func TestGrouper_UsedNeverExceedsPerRow(t *testing.T) {
	sequence := []domain.WidthClass{
		domain.WidthHalf, domain.WidthFourth, domain.WidthFourth,
		domain.WidthThird, domain.WidthTwoThirds, domain.WidthThird,
		domain.WidthFull, domain.WidthThreeFourths, domain.WidthHalf,
		domain.WidthFourth, domain.WidthFourth, domain.WidthFourth,
	}

	var g Grouper
	for _, w := range sequence {
		g.Place(fragment(w))
		used, perRow, open := g.Used()
		assert.True(t, open)
		assert.LessOrEqual(t, used, perRow, "width class %s", w)
	}
}

func TestGrouper_CloseResetsState(t *testing.T) {
	var g Grouper

	assert.False(t, g.Close())

	g.Place(fragment(domain.WidthHalf))
	assert.True(t, g.Close())

	_, _, open := g.Used()
	assert.False(t, open)
}

func TestSlots(t *testing.T) {
	tests := []struct {
		width  domain.WidthClass
		needed int
		perRow int
	}{
		{domain.WidthFull, 4, 4},
		{domain.WidthThreeFourths, 3, 4},
		{domain.WidthHalf, 2, 4},
		{domain.WidthFourth, 1, 4},
		{domain.WidthTwoThirds, 2, 3},
		{domain.WidthThird, 1, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.width), func(t *testing.T) {
			needed, perRow := Slots(tt.width)
			assert.Equal(t, tt.needed, needed)
			assert.Equal(t, tt.perRow, perRow)
		})
	}
}
