package report

import (
	"io"
	"strings"

	"github.com/jwach/adoc"
)

// Ensure TextWriter implements Writer at compile time.
var _ Writer = (*TextWriter)(nil)

// TextWriter renders pages as plain text blocks separated by rules.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write renders each page as a Title/URL/Content block.
func (w *TextWriter) Write(pages []*adoc.DocPage) (int, error) {
	var b strings.Builder
	for _, page := range pages {
		b.WriteString("Title: ")
		b.WriteString(page.Title)
		b.WriteString("\nURL: ")
		b.WriteString(page.URL)
		b.WriteString("\nContent:\n")
		b.WriteString(page.Content)
		b.WriteString("\n\n---\n\n")
	}
	return io.WriteString(w.output, b.String())
}
