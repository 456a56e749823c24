// Package flatten converts a single record into ordered (label, value)
// pairs for vertical rendering.
package flatten

import "github.com/de-tools/fleet-report/pkg/models/domain"

// Pair is one two-column row of a vertically rendered record.
type Pair struct {
	Label string
	Value string
}

// Record flattens one record into pairs, preserving field declaration
// order. A field that cannot be resolved maps to an empty value.
func Record(r *domain.Record) []Pair {
	if r == nil {
		return nil
	}
	fields := r.Fields()
	pairs := make([]Pair, 0, len(fields))
	for _, name := range fields {
		pairs = append(pairs, Pair{Label: name, Value: r.String(name)})
	}
	return pairs
}

// First flattens the first record of a collection. Collection in, single
// entity out is the contract: vertical sections describe one entity, and
// callers that pass more than one record get only the first.
func First(records []*domain.Record) []Pair {
	if len(records) == 0 {
		return nil
	}
	return Record(records[0])
}

// Projected flattens one record through column projections instead of raw
// fields, so vertical layout shows exactly the cells horizontal layout
// would.
func Projected(r *domain.Record, columns []domain.Projection) []Pair {
	if r == nil {
		return nil
	}
	pairs := make([]Pair, 0, len(columns))
	for _, col := range columns {
		pairs = append(pairs, Pair{Label: col.Label, Value: col.Extract(r)})
	}
	return pairs
}
