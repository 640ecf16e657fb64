package report

import (
	"encoding/json"
	"io"

	"github.com/jwach/adoc"
)

// Ensure JSONWriter implements Writer at compile time.
var _ Writer = (*JSONWriter)(nil)

// JSONWriter renders pages as JSON for tool integration and programmatic
// processing.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write renders the pages as a JSON array.
func (w *JSONWriter) Write(pages []*adoc.DocPage) (int, error) {
	if pages == nil {
		pages = []*adoc.DocPage{}
	}

	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(pages, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(pages)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
