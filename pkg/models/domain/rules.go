package domain

import "fmt"

// RuleKind tags the colorizer rule variants. Rules are plain value objects
// interpreted by the colorizer; they carry no executable configuration
// beyond the pluggable predicate.
type RuleKind string

const (
	RuleByValue    RuleKind = "by_value"
	RuleByEvenRows RuleKind = "by_even_rows"
	RuleByOddRows  RuleKind = "by_odd_rows"
)

// Predicate compares a data cell's text with the rule's comparison value.
// It is the one swappable piece of a ByValue rule.
type Predicate func(cell, want string) bool

// ColorRule marks matching cells or rows of a rendered table with a
// presentation attribute. Column, Value and Predicate apply to ByValue
// rules only; parity rules count data rows zero-based, header excluded.
type ColorRule struct {
	Kind      RuleKind
	Column    string
	Value     string
	Predicate Predicate
	Attr      string
	AttrValue string
	WholeRow  bool
}

// Validate checks the rule's shape. Predicate may be nil; the colorizer
// falls back to its equality predicate.
func (r ColorRule) Validate() error {
	switch r.Kind {
	case RuleByValue:
		if r.Column == "" {
			return fmt.Errorf("by-value rule: missing column label")
		}
	case RuleByEvenRows, RuleByOddRows:
	default:
		return fmt.Errorf("unknown colorizer rule kind %q", r.Kind)
	}
	if r.Attr == "" {
		return fmt.Errorf("colorizer rule: missing target attribute")
	}
	return nil
}
