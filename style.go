package docq

import "strings"

// HeadingKind identifies what a heading introduces.
type HeadingKind int

// Heading kinds.
const (
	HeadingSection HeadingKind = iota
	HeadingVariant
	HeadingCrates
)

// Styler decorates headings for display.
type Styler interface {
	Heading(kind HeadingKind, title string) string
}

// PlainStyler renders headings without terminal escapes.
// Section and crate headings are underlined; variant headings are left as is.
type PlainStyler struct{}

// Heading implements Styler.
func (PlainStyler) Heading(kind HeadingKind, title string) string {
	if kind == HeadingVariant {
		return title
	}
	return title + "\n" + strings.Repeat("-", len(title))
}
