package docq

import (
	"regexp"
	"strings"
)

// LineFilter keeps the lines of a text that match a pattern.
// A line matches if it contains the pattern verbatim or if the pattern,
// read as a regular expression, matches it. Matching is case-sensitive.
//
// A nil *LineFilter keeps every line.
type LineFilter struct {
	pattern string
	re      *regexp.Regexp
}

// NewLineFilter compiles pattern. Returns EINVALID if pattern is not a valid
// regular expression.
func NewLineFilter(pattern string) (*LineFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid filter pattern %q: %v", pattern, err)
	}
	return &LineFilter{pattern: pattern, re: re}, nil
}

// Pattern returns the pattern the filter was compiled from.
func (f *LineFilter) Pattern() string {
	if f == nil {
		return ""
	}
	return f.pattern
}

// Match reports whether a single line passes the filter.
func (f *LineFilter) Match(line string) bool {
	if f == nil {
		return true
	}
	return strings.Contains(line, f.pattern) || f.re.MatchString(line)
}

// Apply returns the lines of text that pass the filter, in their original
// order, joined by newlines.
func (f *LineFilter) Apply(text string) string {
	if f == nil {
		return text
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if f.Match(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
