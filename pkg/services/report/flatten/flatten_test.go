package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

func TestRecord_PreservesDeclarationOrder(t *testing.T) {
	rec := domain.NewRecord().
		Set("zeta", 1).
		Set("alpha", "two").
		Set("mid", 3.5)

	pairs := Record(rec)

	assert.Equal(t, []Pair{
		{Label: "zeta", Value: "1"},
		{Label: "alpha", Value: "two"},
		{Label: "mid", Value: "3.5"},
	}, pairs)
}

func TestRecord_RowCountMatchesFieldCount(t *testing.T) {
	rec := domain.NewRecord().
		Set("a", nil).
		Set("b", true).
		Set("c", []string{"x", "y"}).
		Set("d", 42)

	pairs := Record(rec)

	assert.Len(t, pairs, rec.Len())
	// Unresolvable values map to an empty string, never an error.
	assert.Equal(t, "", pairs[0].Value)
}

func TestRecord_NilRecord(t *testing.T) {
	assert.Nil(t, Record(nil))
}

func TestFirst_UsesOnlyTheFirstRecord(t *testing.T) {
	records := []*domain.Record{
		domain.NewRecord().Set("name", "first"),
		domain.NewRecord().Set("name", "second"),
	}

	pairs := First(records)

	assert.Equal(t, []Pair{{Label: "name", Value: "first"}}, pairs)
}

func TestFirst_EmptyCollection(t *testing.T) {
	assert.Nil(t, First(nil))
}

func TestProjected_UsesColumnProjections(t *testing.T) {
	rec := domain.NewRecord().
		Set("name", "pool_www").
		Set("activeMemberCnt", 2).
		Set("memberCnt", 3)

	pairs := Projected(rec, []domain.Projection{
		domain.Field("Name", "name"),
		{
			Label: "Members",
			Extract: func(r *domain.Record) string {
				return r.String("activeMemberCnt") + " / " + r.String("memberCnt")
			},
		},
	})

	assert.Equal(t, []Pair{
		{Label: "Name", Value: "pool_www"},
		{Label: "Members", Value: "2 / 3"},
	}, pairs)
}
