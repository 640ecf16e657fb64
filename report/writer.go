package report

import (
	"io"

	"github.com/jwach/adoc"
)

// Writer renders a sequence of crawled pages to a destination.
// Implementations write pages, not raw bytes, so writing to files, stdout,
// or both goes through the same API.
type Writer interface {
	// Write renders the pages to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(pages []*adoc.DocPage) (int, error)
}

// NewWriter returns a Writer for the given format writing to out.
func NewWriter(out io.Writer, format Format) Writer {
	switch format {
	case FormatPrettyJSON:
		return NewJSONWriter(out, WithPrettyPrint())
	case FormatText:
		return NewTextWriter(out)
	case FormatMarkdown:
		return NewMarkdownWriter(out)
	default:
		return NewJSONWriter(out)
	}
}

// MultiWriter writes to multiple Writers simultaneously, for example a
// terminal and a file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the pages to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(pages []*adoc.DocPage) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(pages)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
