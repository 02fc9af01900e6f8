package goquery

import (
	"context"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docq"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements docq.Extractor at compile time.
var _ docq.Extractor = (*Extractor)(nil)

// Extractor implements docq.Extractor for rustdoc output.
type Extractor struct {
	styler    docq.Styler
	converter docq.Converter
	maxWidth  int
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithStyler sets the heading style. Defaults to docq.PlainStyler.
func WithStyler(s docq.Styler) ExtractorOption {
	return func(e *Extractor) {
		e.styler = s
	}
}

// WithConverter sets the converter used for markdown method docs.
func WithConverter(c docq.Converter) ExtractorOption {
	return func(e *Extractor) {
		e.converter = c
	}
}

// WithMaxWidth sets the width tables are rendered within.
// Defaults to docq.DefaultMaxWidth.
func WithMaxWidth(width int) ExtractorOption {
	return func(e *Extractor) {
		e.maxWidth = width
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		styler:   docq.PlainStyler{},
		maxWidth: docq.DefaultMaxWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract implements docq.Extractor.
func (e *Extractor) Extract(ctx context.Context, tp *docq.TaggedPath, opts docq.ExtractOptions) ([]docq.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := LoadDocument(tp.FullPath)
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(tp, doc, opts)
}

// ExtractDocument returns the sections of an already loaded page.
func (e *Extractor) ExtractDocument(tp *docq.TaggedPath, doc *goquery.Document, opts docq.ExtractOptions) ([]docq.Section, error) {
	if opts.ChildModulesOnly {
		s, ok, err := e.table(doc, "modules", opts.Filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			s = docq.Section{Name: "modules", Text: docq.NoChildModules}
		}
		return []docq.Section{s}, nil
	}

	var sections []docq.Section
	add := func(s docq.Section, ok bool) {
		if ok {
			sections = append(sections, s)
		}
	}

	docblock := summaryBlock(doc)

	switch tp.ExtractionTag() {
	case docq.TagModule:
		add(summary(docblock))
		for _, name := range docq.TableSections {
			s, ok, err := e.table(doc, name, opts.Filter)
			if err != nil {
				return nil, err
			}
			add(s, ok)
		}

	case docq.TagStruct:
		sections = append(sections, typeDeclaration(doc))
		add(summary(docblock))
		add(methodSignatures(doc, opts.Filter))

	case docq.TagEnum:
		add(summary(docblock))
		add(e.variants(doc, opts.Filter))

	case docq.TagMethod:
		s, body, ok := e.method(doc, tp.MethodName, opts.Markdown)
		if !ok {
			s = docq.Section{Name: docq.SectionMethod, Text: docq.NotAMethod(tp.MethodName)}
		}
		sections = append(sections, s)
		docblock = body

	default:
		add(summary(docblock))
	}

	if opts.Examples {
		add(e.examples(docblock))
	}

	return sections, nil
}

// summaryBlock returns the first doc block that is not a type declaration.
func summaryBlock(doc *goquery.Document) *goquery.Selection {
	block := doc.Find(".docblock").Not(".type-decl").First()
	if block.Length() == 0 {
		return nil
	}
	return block
}

// summary collects the leading run of paragraphs of a doc block.
func summary(block *goquery.Selection) (docq.Section, bool) {
	if block == nil {
		return docq.Section{}, false
	}

	var paragraphs []string
	block.Contents().EachWithBreak(func(_ int, c *goquery.Selection) bool {
		switch {
		case c.Nodes[0].DataAtom == atom.P:
			paragraphs = append(paragraphs, strings.TrimSpace(c.Text()))
			return true
		case isBlankText(c):
			return true
		default:
			return false
		}
	})

	return docq.Section{Name: docq.SectionSummary, Text: strings.Join(paragraphs, "\n\n")}, true
}

// typeDeclaration joins every type declaration block. Struct pages always
// have one, so an empty result is returned rather than an absent section.
func typeDeclaration(doc *goquery.Document) docq.Section {
	decls := doc.Find(".type-decl").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	return docq.Section{Name: docq.SectionTypeDeclaration, Text: strings.Join(decls, "\n")}
}

// methodSignatures lists the method headings of the implementation block.
func methodSignatures(doc *goquery.Document, filter *docq.LineFilter) (docq.Section, bool) {
	block := doc.Find(".impl-items").First()
	if block.Length() == 0 {
		return docq.Section{}, false
	}

	methods := block.ChildrenFiltered(".method").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	return docq.Section{Name: docq.SectionMethods, Text: filter.Apply(strings.Join(methods, "\n"))}, true
}

// method returns the heading and documentation of the method anchored at
// method.<name>, along with its doc block if it has one.
func (e *Extractor) method(doc *goquery.Document, name string, markdown bool) (docq.Section, *goquery.Selection, bool) {
	heading := findByID(doc.Selection, "[id]", "method."+name)
	if heading.Length() == 0 {
		return docq.Section{}, nil, false
	}

	parts := []string{strings.TrimSpace(heading.Text())}
	body := nextSibling(heading)
	if !isDocblock(body) {
		body = nil
	} else {
		parts = append(parts, e.blockText(body, markdown))
	}

	return docq.Section{Name: docq.SectionMethod, Text: strings.Join(parts, "\n\n")}, body, true
}

// blockText flattens a doc block to text, or converts it to markdown when
// requested and a converter is available.
func (e *Extractor) blockText(block *goquery.Selection, markdown bool) string {
	if markdown && e.converter != nil {
		if inner, err := block.Html(); err == nil {
			if md, err := e.converter.Convert(inner); err == nil {
				return strings.TrimSpace(md)
			}
		}
	}
	return strings.TrimSpace(block.Text())
}

// variants lists each enum variant heading followed by its documentation.
func (e *Extractor) variants(doc *goquery.Document, filter *docq.LineFilter) (docq.Section, bool) {
	nodes := doc.Find(`[id^="variant."]`)
	if nodes.Length() == 0 {
		return docq.Section{}, false
	}

	variants := nodes.Map(func(_ int, s *goquery.Selection) string {
		text := e.styler.Heading(docq.HeadingVariant, strings.TrimSpace(s.Text()))
		if body := nextSibling(s); isDocblock(body) {
			text += "\n" + strings.TrimSpace(body.Text())
		}
		return text
	})
	return docq.Section{Name: docq.SectionVariants, Text: filter.Apply(strings.Join(variants, "\n"))}, true
}

// table renders the module item table that follows the named section header.
// The header and the table are separated by exactly one node.
func (e *Extractor) table(doc *goquery.Document, name string, filter *docq.LineFilter) (docq.Section, bool, error) {
	header := findByID(doc.Selection, ".section-header", name)
	if header.Length() == 0 {
		return docq.Section{}, false, nil
	}

	tbl := nextSibling(nextSibling(header))
	if !isElement(tbl, "table") {
		return docq.Section{}, false, nil
	}
	body := tbl.ChildrenFiltered("tbody").First()
	if body.Length() == 0 {
		return docq.Section{}, false, nil
	}

	t := docq.NewTable(e.maxWidth)
	body.ChildrenFiltered("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Children().Map(func(_ int, cell *goquery.Selection) string {
			return strings.TrimRightFunc(strings.ReplaceAll(cell.Text(), "\n", " "), unicode.IsSpace)
		})
		if filter.Match(strings.Join(cells, " ")) {
			t.AddRow(cells)
		}
	})
	if t.Len() == 0 {
		return docq.Section{}, false, nil
	}

	text, err := t.Render()
	if err != nil {
		return docq.Section{}, false, err
	}
	return docq.Section{Name: name, Text: e.styler.Heading(docq.HeadingSection, name) + "\n" + text}, true, nil
}

// examples collects the code blocks of a doc block.
func (e *Extractor) examples(block *goquery.Selection) (docq.Section, bool) {
	if block == nil {
		return docq.Section{}, false
	}

	code := block.Find("pre").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	if len(code) == 0 {
		return docq.Section{}, false
	}

	heading := e.styler.Heading(docq.HeadingSection, docq.SectionExamples)
	return docq.Section{Name: docq.SectionExamples, Text: heading + "\n" + strings.Join(code, "\n\n")}, true
}
