// Package markup holds the fixed template strings the renderer and
// assembler substitute into. Templates use numbered placeholders ({0},
// {1}, ...) filled by plain string replacement; there is no templating
// language.
package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

// Family selects which template set shapes document headers, footers,
// row groups, banners and section containers. The choice is orthogonal to
// the section/table logic.
type Family string

const (
	// DynamicGrid emits class-based containers for a responsive grid
	// stylesheet.
	DynamicGrid Family = "DynamicGrid"
	// EmailFriendly emits inline-styled full-width containers that mail
	// clients can cope with.
	EmailFriendly Family = "EmailFriendly"
)

// Set is one family's template strings.
type Set struct {
	// DocOpen takes {0} report title.
	DocOpen string
	// SubjectHeader takes {0} subject name.
	SubjectHeader string
	DocClose      string
	GroupOpen     string
	GroupClose    string
	// Banner takes {0} section title.
	Banner string
	// Containers take {0} the finished table markup.
	Containers map[domain.WidthClass]string
}

// Container returns the container template for a width class.
func (s *Set) Container(w domain.WidthClass) string {
	if tmpl, ok := s.Containers[w]; ok {
		return tmpl
	}
	return s.Containers[domain.WidthFull]
}

var dynamicGrid = Set{
	DocOpen: `<!DOCTYPE html><html><head><meta charset="utf-8"><title>{0}</title>` +
		`<link rel="stylesheet" href="report.css"></head><body><div class="report">` +
		`<h1 class="report-title">{0}</h1>`,
	SubjectHeader: `<h2 class="subject">{0}</h2>`,
	DocClose:      `</div></body></html>`,
	GroupOpen:     `<div class="row">`,
	GroupClose:    `</div>`,
	Banner:        `<div class="row"><div class="col col-full"><div class="section-break">{0}</div></div></div>`,
	Containers: map[domain.WidthClass]string{
		domain.WidthFull:         `<div class="col col-full">{0}</div>`,
		domain.WidthThreeFourths: `<div class="col col-3-4">{0}</div>`,
		domain.WidthHalf:         `<div class="col col-1-2">{0}</div>`,
		domain.WidthThird:        `<div class="col col-1-3">{0}</div>`,
		domain.WidthTwoThirds:    `<div class="col col-2-3">{0}</div>`,
		domain.WidthFourth:       `<div class="col col-1-4">{0}</div>`,
	},
}

// Mail clients ignore stylesheets and float rules, so every container is
// a stacked full-width block with inline styles.
var emailFriendly = Set{
	DocOpen: `<!DOCTYPE html><html><head><meta charset="utf-8"><title>{0}</title></head>` +
		`<body style="font-family:sans-serif"><h1>{0}</h1>`,
	SubjectHeader: `<h2>{0}</h2>`,
	DocClose:      `</body></html>`,
	GroupOpen:     `<div>`,
	GroupClose:    `</div>`,
	Banner:        `<div style="width:100%;background:#333;color:#fff;padding:6px">{0}</div>`,
	Containers: map[domain.WidthClass]string{
		domain.WidthFull:         `<div style="width:100%">{0}</div>`,
		domain.WidthThreeFourths: `<div style="width:100%">{0}</div>`,
		domain.WidthHalf:         `<div style="width:100%">{0}</div>`,
		domain.WidthThird:        `<div style="width:100%">{0}</div>`,
		domain.WidthTwoThirds:    `<div style="width:100%">{0}</div>`,
		domain.WidthFourth:       `<div style="width:100%">{0}</div>`,
	},
}

// For resolves a template family. Unknown families are a configuration
// error, fatal to the whole run.
func For(f Family) (*Set, error) {
	switch f {
	case DynamicGrid:
		return &dynamicGrid, nil
	case EmailFriendly:
		return &emailFriendly, nil
	default:
		return nil, fmt.Errorf("unknown template family %q", f)
	}
}

// Fill substitutes numbered placeholders: {0} is replaced with args[0] and
// so on. Placeholders without a matching argument are left untouched.
func Fill(tmpl string, args ...string) string {
	for i, a := range args {
		tmpl = strings.ReplaceAll(tmpl, "{"+strconv.Itoa(i)+"}", a)
	}
	return tmpl
}
