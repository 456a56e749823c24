package domain

import "fmt"

// Record is one row of collected subject data. The engine never interprets
// values; it only resolves them by name. Field declaration order is
// preserved and is the order vertical rendering uses.
type Record struct {
	names  []string
	values map[string]any
}

func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores a field value, appending the name to the declaration order on
// first use. It returns the record so fields can be chained.
func (r *Record) Set(name string, value any) *Record {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
	return r
}

// Get resolves a field by name.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// String resolves a field and stringifies it. An absent or nil field
// yields the empty string, never an error.
func (r *Record) String(name string) string {
	v, ok := r.values[name]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// Fields returns the field names in declaration order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of declared fields.
func (r *Record) Len() int { return len(r.names) }
