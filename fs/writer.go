// Package fs persists rendered crawl results to the local filesystem.
package fs

import (
	"os"
	"path/filepath"

	"github.com/jwach/adoc"
	"github.com/jwach/adoc/report"
)

// Writer saves crawl results to a file path in a fixed format.
type Writer struct {
	path   string
	format report.Format
}

// NewWriter creates a Writer for the given path and format.
func NewWriter(path string, format report.Format) *Writer {
	return &Writer{path: path, format: format}
}

// NewWriterForPath creates a Writer whose format is inferred from the
// path's extension. Unrecognized extensions return an EINVALID error;
// pass an explicit format through NewWriter instead.
func NewWriterForPath(path string) (*Writer, error) {
	format, ok := report.FormatFromPath(path)
	if !ok {
		return nil, adoc.Errorf(adoc.EINVALID, "cannot infer output format from path %q", path)
	}
	return NewWriter(path, format), nil
}

// Save renders the pages and writes them to the configured path,
// creating parent directories as needed.
func (w *Writer) Save(pages []*adoc.DocPage) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return err
	}

	if _, err := report.NewWriter(f, w.format).Write(pages); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
