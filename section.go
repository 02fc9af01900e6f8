package docq

import "strings"

// Section is one independently optional block of rendered output.
type Section struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Section names produced by extractors.
const (
	SectionSummary         = "summary"
	SectionTypeDeclaration = "type declaration"
	SectionMethods         = "methods"
	SectionMethod          = "method"
	SectionVariants        = "variants"
	SectionExamples        = "examples"
)

// TableSections lists the module page tables in display order.
var TableSections = []string{
	"modules",
	"traits",
	"constants",
	"structs",
	"enums",
	"functions",
	"macros",
}

// srcArtifact is the link text rustdoc leaves at the end of item headings.
const srcArtifact = "[src]"

// JoinSections formats sections for display.
// Empty sections are dropped, the rest are separated by blank lines, and the
// trailing "[src]" link text rustdoc puts on headings is removed.
func JoinSections(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.Text == "" {
			continue
		}
		parts = append(parts, s.Text)
	}

	return strings.ReplaceAll(strings.Join(parts, "\n\n"), srcArtifact, "")
}
