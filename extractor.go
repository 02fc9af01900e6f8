package docq

import "context"

// ExtractOptions controls which sections an Extractor produces.
type ExtractOptions struct {
	// Filter reduces method lists, variant lists and table rows to the
	// lines it matches. Nil keeps everything.
	Filter *LineFilter

	// ChildModulesOnly limits output to the table of child modules.
	ChildModulesOnly bool

	// Examples appends the code examples from the item's documentation.
	Examples bool

	// Markdown renders method documentation as markdown rather than
	// flattened text.
	Markdown bool
}

// Extractor pulls display sections out of a resolved documentation file.
type Extractor interface {
	// Extract loads the file behind tp and returns its sections in display
	// order. Optional content that is missing from the page is omitted.
	// Returns EINVALID or EINTERNAL if the file cannot be read or parsed.
	Extract(ctx context.Context, tp *TaggedPath, opts ExtractOptions) ([]Section, error)
}

// NoChildModules is shown when a module page lists no child modules.
const NoChildModules = "No child modules found"

// NotAMethod returns the placeholder shown when a page has no method name.
func NotAMethod(name string) string {
	return name + " is not method"
}
