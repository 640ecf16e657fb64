package main

import (
	"context"

	"github.com/jwach/adoc"
	"github.com/jwach/adoc/crawl"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	return runCrawl(deps, c.crawlFlags, func(ctx context.Context, crawler *crawl.Crawler, progress crawl.ProgressFunc) ([]*adoc.DocPage, error) {
		return crawler.SearchAndCrawl(ctx, c.Keyword, c.Recursive, progress)
	})
}
