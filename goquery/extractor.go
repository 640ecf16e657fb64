// Package goquery provides a CSS-selector-based implementation of
// adoc.Extractor built on PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jwach/adoc"
)

// Ensure Extractor implements adoc.Extractor at compile time.
var _ adoc.Extractor = (*Extractor)(nil)

// Extractor parses documentation pages into DocPage records.
// The title is taken from the first h1, the content from the first article
// element, and outbound links from every anchor carrying an href. Links are
// resolved against the source URL and kept only when their host equals the
// configured crawl domain.
type Extractor struct {
	domain string
}

// NewExtractor creates an Extractor scoped to the given crawl domain.
func NewExtractor(domain string) *Extractor {
	return &Extractor{domain: domain}
}

// Extract produces a page record from raw HTML.
func (e *Extractor) Extract(html string, sourceURL string) (*adoc.DocPage, error) {
	base, err := url.Parse(sourceURL)
	if err != nil || !base.IsAbs() {
		return nil, adoc.Errorf(adoc.EINVALID, "invalid source URL %q", sourceURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, adoc.Errorf(adoc.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &adoc.DocPage{
		Title:   collapseSpace(doc.Find("h1").First().Text()),
		Content: normalizeText(doc.Find("article").First().Text()),
		URL:     sourceURL,
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Resolution failures are dropped silently; a bad href on the page
		// is not an extraction error.
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !e.inDomain(resolved) {
			return
		}

		page.RelatedLinks = append(page.RelatedLinks, resolved)
	})

	return page, nil
}

// inDomain reports whether the URL's host equals the configured crawl domain.
func (e *Extractor) inDomain(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == e.domain
}

// resolveURL resolves a relative URL against a base URL.
// Returns the empty string when the href does not parse.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// collapseSpace collapses all whitespace runs to single spaces and trims
// the result. Used for titles, which are single logical lines.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeText normalizes multi-line text content: intra-line whitespace
// runs collapse to single spaces, lines that become empty are dropped, and
// the surviving lines are rejoined with single newlines.
func normalizeText(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
