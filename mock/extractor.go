package mock

import "github.com/jwach/adoc"

var _ adoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of adoc.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string) (*adoc.DocPage, error)
}

func (e *Extractor) Extract(html string, sourceURL string) (*adoc.DocPage, error) {
	return e.ExtractFn(html, sourceURL)
}
