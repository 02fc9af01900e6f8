// Package htmltomarkdown renders rustdoc doc blocks as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docq"
)

// Ensure Converter implements docq.Converter at compile time.
var _ docq.Converter = (*Converter)(nil)

// chrome matches rustdoc decorations that carry no documentation.
const chrome = ".srclink, .rightside, .anchor, .tooltip, .notable-traits"

// Converter wraps html-to-markdown to convert doc blocks to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown.
// Rustdoc decorations are dropped and rust code blocks get a language hint.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docq.Errorf(docq.EINVALID, "empty HTML input")
	}

	cleaned, err := clean(html)
	if err != nil {
		return "", docq.Errorf(docq.EINVALID, "unable to parse HTML fragment: %v", err)
	}

	result, err := c.conv.ConvertString(cleaned)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

func clean(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	doc.Find(chrome).Remove()
	doc.Find("pre.rust").Each(func(_ int, pre *goquery.Selection) {
		if pre.ChildrenFiltered("code").Length() > 0 {
			return
		}
		pre.SetHtml(`<code class="language-rust">` + escapeText(pre.Text()) + `</code>`)
	})

	return doc.Find("body").Html()
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
