package crawl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jwach/adoc"
)

// DefaultDomain is the crawl target host.
const DefaultDomain = "developer.apple.com"

// searchPath is the search endpoint on the documentation site.
const searchPath = "/search/index.php"

// SearchURL builds a search-results URL for a keyword on the given domain.
func SearchURL(domain, keyword string) string {
	return fmt.Sprintf("https://%s%s?q=%s", domain, searchPath, url.QueryEscape(keyword))
}

// SearchAndCrawl builds the search-results URL for the keyword and crawls
// it like any other seed.
func (c *Crawler) SearchAndCrawl(ctx context.Context, keyword string, recursive bool, progress ProgressFunc) ([]*adoc.DocPage, error) {
	domain := c.Domain
	if domain == "" {
		domain = DefaultDomain
	}
	return c.Crawl(ctx, SearchURL(domain, keyword), recursive, progress)
}
