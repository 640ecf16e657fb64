package adoc

// Extractor parses an HTML document into a DocPage.
type Extractor interface {
	// Extract produces a page record from raw HTML. The sourceURL is the
	// absolute URL the document was fetched from; it becomes the page URL
	// and the base for resolving relative links.
	//
	// Missing title, content, or links degrade to empty values rather than
	// errors. A sourceURL that does not parse as an absolute URL returns
	// an EINVALID error.
	Extract(html string, sourceURL string) (*DocPage, error)
}
