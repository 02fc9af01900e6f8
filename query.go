package docq

import (
	"strings"
	"unicode"
)

// Query is a parsed documentation lookup such as std::fs::File or
// std::path::PathBuf.file_name.
type Query struct {
	// Raw is the input the query was parsed from.
	Raw string

	// IsStdlib is true when the first component is "std".
	IsStdlib bool

	// IsMethod is true when the raw input contains a '.' anywhere.
	IsMethod bool

	// Components is the path split on "::", '.' and whitespace with empty
	// segments discarded.
	Components []string
}

// ParseQuery splits raw into its path components and classifies it.
// Odd input degrades to fewer components rather than failing; a query made
// only of separators has no components at all.
func ParseQuery(raw string) Query {
	var components []string
	for _, segment := range strings.Split(raw, "::") {
		components = append(components, strings.FieldsFunc(segment, isComponentSeparator)...)
	}

	return Query{
		Raw:        raw,
		IsStdlib:   len(components) > 0 && components[0] == "std",
		IsMethod:   strings.Contains(raw, "."),
		Components: components,
	}
}

func isComponentSeparator(r rune) bool {
	return r == '.' || unicode.IsSpace(r)
}

// Last returns the final component. Returns false if the query is empty.
func (q Query) Last() (string, bool) {
	if len(q.Components) == 0 {
		return "", false
	}
	return q.Components[len(q.Components)-1], true
}

// IsCrateListing reports whether raw asks for the list of known crates
// rather than a documentation page.
func IsCrateListing(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "." || raw == "crate"
}
