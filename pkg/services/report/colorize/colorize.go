// Package colorize rewrites presentation attributes on rendered tables.
// Rules never alter cell text; they only add or replace attributes on
// matched cells or rows. Rules are interpreted value objects, so a
// post-processing chain is data, not code.
package colorize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

// ErrNoTable is returned when the markup parses but contains no table
// element. The renderer and colorizer agree on output shape, so hitting
// this on engine-generated markup is an invariant violation.
var ErrNoTable = errors.New("colorize: markup contains no table")

// Equal is the default ByValue predicate: numeric comparison when both
// operands parse as numbers, case-insensitive string comparison otherwise.
func Equal(cell, want string) bool {
	if a, b, ok := bothNumeric(cell, want); ok {
		return a == b
	}
	return strings.EqualFold(strings.TrimSpace(cell), strings.TrimSpace(want))
}

// NotEqual is the negation of Equal.
func NotEqual(cell, want string) bool { return !Equal(cell, want) }

// GreaterThan compares numerically when possible, lexically otherwise.
func GreaterThan(cell, want string) bool {
	if a, b, ok := bothNumeric(cell, want); ok {
		return a > b
	}
	return strings.TrimSpace(cell) > strings.TrimSpace(want)
}

// LessThan compares numerically when possible, lexically otherwise.
func LessThan(cell, want string) bool {
	if a, b, ok := bothNumeric(cell, want); ok {
		return a < b
	}
	return strings.TrimSpace(cell) < strings.TrimSpace(want)
}

func bothNumeric(cell, want string) (float64, float64, bool) {
	a, errA := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	b, errB := strconv.ParseFloat(strings.TrimSpace(want), 64)
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return a, b, true
}

// Apply runs one rule over the serialized table and returns the rewritten
// markup. The input is never mutated. A ByValue rule whose column label is
// absent from the header is a no-op; a table with no data rows is a no-op.
func Apply(markup string, rule domain.ColorRule) (string, error) {
	if err := rule.Validate(); err != nil {
		return "", err
	}

	nodes, err := parseFragment(markup)
	if err != nil {
		return "", err
	}
	t := findTable(nodes)
	if t == nil {
		return "", ErrNoTable
	}

	switch rule.Kind {
	case domain.RuleByValue:
		col := headerOrdinal(t, rule.Column)
		if col < 0 {
			// Unknown column labels modify nothing; hand back the
			// input untouched.
			return markup, nil
		}
		applyByValue(t, rule, col)
	case domain.RuleByEvenRows:
		applyByParity(t, rule, 0)
	case domain.RuleByOddRows:
		applyByParity(t, rule, 1)
	}

	return renderFragment(nodes)
}

// Chain applies rules in order, each consuming the previous rule's output.
// Order is significant: a later rule can overwrite attributes an earlier
// rule set on the same element.
func Chain(markup string, rules []domain.ColorRule) (string, error) {
	var err error
	for _, rule := range rules {
		markup, err = Apply(markup, rule)
		if err != nil {
			return "", err
		}
	}
	return markup, nil
}

type table struct {
	headRows []*html.Node
	dataRows []*html.Node
}

func parseFragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("colorize: malformed markup: %w", err)
	}
	return nodes, nil
}

func renderFragment(nodes []*html.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("colorize: render: %w", err)
		}
	}
	return b.String(), nil
}

// findTable locates the first table element and splits its rows into
// header and data rows. Rows inside a thead are header rows; without a
// thead the first row is the header.
func findTable(nodes []*html.Node) *table {
	var tbl *html.Node
	for _, n := range nodes {
		if tbl = findElement(n, atom.Table); tbl != nil {
			break
		}
	}
	if tbl == nil {
		return nil
	}

	t := &table{}
	walk(tbl, func(n *html.Node) bool {
		if n.DataAtom == atom.Table && n != tbl {
			// Nested tables (vertical mini-tables) belong to
			// their own rows; do not descend.
			return false
		}
		if n.DataAtom == atom.Tr {
			if hasAncestor(n, tbl, atom.Thead) {
				t.headRows = append(t.headRows, n)
			} else {
				t.dataRows = append(t.dataRows, n)
			}
			return false
		}
		return true
	})
	if len(t.headRows) == 0 && len(t.dataRows) > 0 {
		t.headRows = t.dataRows[:1]
		t.dataRows = t.dataRows[1:]
	}
	return t
}

func applyByValue(t *table, rule domain.ColorRule, col int) {
	pred := rule.Predicate
	if pred == nil {
		pred = Equal
	}
	for _, row := range t.dataRows {
		cells := rowCells(row)
		if col >= len(cells) {
			continue
		}
		if pred(nodeText(cells[col]), rule.Value) {
			if rule.WholeRow {
				setAttr(row, rule.Attr, rule.AttrValue)
			} else {
				setAttr(cells[col], rule.Attr, rule.AttrValue)
			}
		}
	}
}

// applyByParity tags rows whose zero-based data-row index matches the
// wanted parity. The header never counts.
func applyByParity(t *table, rule domain.ColorRule, parity int) {
	for i, row := range t.dataRows {
		if i%2 != parity {
			continue
		}
		if rule.WholeRow {
			setAttr(row, rule.Attr, rule.AttrValue)
			continue
		}
		for _, cell := range rowCells(row) {
			setAttr(cell, rule.Attr, rule.AttrValue)
		}
	}
}

// headerOrdinal finds the header cell whose text equals the label and
// returns its position within its row, or -1 when no header cell matches.
func headerOrdinal(t *table, label string) int {
	for _, row := range t.headRows {
		for i, cell := range rowCells(row) {
			if strings.TrimSpace(nodeText(cell)) == label {
				return i
			}
		}
	}
	return -1
}

func rowCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			cells = append(cells, c)
		}
	}
	return cells
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// walk visits n and its descendants; returning false from fn prunes the
// subtree below the visited node.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func hasAncestor(n, stop *html.Node, a atom.Atom) bool {
	for p := n.Parent; p != nil && p != stop; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == a {
			return true
		}
	}
	return false
}
