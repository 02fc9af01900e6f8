// Package goquery extracts display sections from rustdoc generated HTML.
package goquery

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docq"
	"golang.org/x/net/html"
)

// LoadDocument reads and parses the rustdoc page at path.
// Returns EINTERNAL if the file cannot be read and EINVALID if its content is
// not a parseable HTML page.
func LoadDocument(path string) (*goquery.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, docq.Errorf(docq.EINTERNAL, "unable to open file %q: %v", path, err)
	}
	return ParseDocument(data, path)
}

// ParseDocument parses rustdoc HTML held in memory. name is used in errors.
func ParseDocument(data []byte, name string) (*goquery.Document, error) {
	if !utf8.Valid(data) {
		return nil, docq.Errorf(docq.EINVALID, "unable to parse rustdoc generated HTML file %q: not valid UTF-8", name)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, docq.Errorf(docq.EINVALID, "unable to parse rustdoc generated HTML file %q: file is empty", name)
	}

	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, docq.Errorf(docq.EINVALID, "unable to parse rustdoc generated HTML file %q: %v", name, err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// nextSibling returns the node directly after s within its parent, whatever
// its type. Returns nil when s is empty or is the last child.
func nextSibling(s *goquery.Selection) *goquery.Selection {
	if s == nil || s.Length() == 0 || s.Nodes[0].NextSibling == nil {
		return nil
	}
	return goquery.NewDocumentFromNode(s.Nodes[0].NextSibling).Selection
}

// isElement reports whether s holds an element with the given tag name.
func isElement(s *goquery.Selection, tag string) bool {
	if s == nil || s.Length() == 0 {
		return false
	}
	n := s.Nodes[0]
	return n.Type == html.ElementNode && n.Data == tag
}

// isDocblock reports whether s holds an element with the docblock class.
func isDocblock(s *goquery.Selection) bool {
	return s != nil && s.Length() > 0 && s.Nodes[0].Type == html.ElementNode && s.HasClass("docblock")
}

// isBlankText reports whether s holds a text node of whitespace only.
func isBlankText(s *goquery.Selection) bool {
	n := s.Nodes[0]
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}

// findByID returns the first element whose id attribute equals id.
func findByID(scope *goquery.Selection, selector, id string) *goquery.Selection {
	return scope.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr("id")
		return ok && v == id
	}).First()
}
