// Package color renders headings with terminal colors.
package color

import (
	"github.com/fatih/color"
	"github.com/fwojciec/docq"
)

// Ensure Styler implements docq.Styler at compile time.
var _ docq.Styler = (*Styler)(nil)

// Styler colors headings: sections in bold yellow behind a ":: " marker,
// enum variants in green and crate listings in bold blue.
type Styler struct {
	section *color.Color
	variant *color.Color
	crates  *color.Color
}

// NewStyler creates a new Styler. When enabled is false no escape codes are
// written, regardless of what the terminal supports.
func NewStyler(enabled bool) *Styler {
	s := &Styler{
		section: color.New(color.FgYellow, color.Bold),
		variant: color.New(color.FgGreen),
		crates:  color.New(color.FgBlue, color.Bold),
	}
	for _, c := range []*color.Color{s.section, s.variant, s.crates} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Heading implements docq.Styler.
func (s *Styler) Heading(kind docq.HeadingKind, title string) string {
	switch kind {
	case docq.HeadingVariant:
		return s.variant.Sprint(title)
	case docq.HeadingCrates:
		return s.crates.Sprint(":: " + title)
	default:
		return s.section.Sprint(":: " + title)
	}
}
