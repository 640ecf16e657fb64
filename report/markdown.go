package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/jwach/adoc"
	"github.com/nao1215/markdown"
)

// Ensure MarkdownWriter implements Writer at compile time.
var _ Writer = (*MarkdownWriter)(nil)

// MarkdownWriter renders pages as a Markdown document with a generated
// table of contents linking to a section per page.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the pages as a single Markdown document.
func (w *MarkdownWriter) Write(pages []*adoc.DocPage) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Documentation")
	md.PlainText("")

	anchors := makeAnchors(pages)
	w.writeContents(md, pages, anchors)

	for i, page := range pages {
		w.writePage(md, page, anchors[i])
	}

	return len(md.String()), md.Build()
}

// writeContents writes the table of contents.
func (w *MarkdownWriter) writeContents(md *markdown.Markdown, pages []*adoc.DocPage, anchors []string) {
	if len(pages) == 0 {
		md.PlainText("No pages crawled.")
		md.PlainText("")
		return
	}

	md.H2("Contents")
	md.PlainText("")

	entries := make([]string, len(pages))
	for i, page := range pages {
		entries[i] = markdown.Link(pageHeading(page), "#"+anchors[i])
	}
	md.BulletList(entries...)
	md.PlainText("")
}

// writePage writes one page section.
func (w *MarkdownWriter) writePage(md *markdown.Markdown, page *adoc.DocPage, anchor string) {
	md.HorizontalRule()
	md.PlainText("")
	// Explicit anchor so TOC links survive heading slug differences
	// between Markdown renderers.
	md.PlainTextf("<a id=%q></a>", anchor)
	md.PlainText("")
	md.H2(pageHeading(page))
	md.PlainText("")
	md.PlainTextf("Source: %s", markdown.Link(page.URL, page.URL))
	md.PlainText("")

	if page.Content != "" {
		md.PlainText(page.Content)
		md.PlainText("")
	}

	if len(page.RelatedLinks) > 0 {
		md.H3("Related links")
		md.PlainText("")
		md.BulletList(page.RelatedLinks...)
		md.PlainText("")
	}
}

// pageHeading returns the section heading for a page: the title when
// present, otherwise the page URL.
func pageHeading(page *adoc.DocPage) string {
	if page.Title != "" {
		return page.Title
	}
	return page.URL
}

// makeAnchors builds one unique anchor id per page. Titles slugify into
// readable anchors; untitled or colliding titles fall back to a URL
// fingerprint so every TOC entry stays unambiguous.
func makeAnchors(pages []*adoc.DocPage) []string {
	anchors := make([]string, len(pages))
	seen := make(map[string]bool)

	for i, page := range pages {
		anchor := slugify(page.Title)
		if anchor == "" || seen[anchor] {
			anchor = fmt.Sprintf("page-%x", xxhash.Sum64String(page.URL))
		}
		seen[anchor] = true
		anchors[i] = anchor
	}
	return anchors
}

// slugify lowercases a title and replaces non-alphanumeric runs with
// single hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
