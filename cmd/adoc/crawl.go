package main

import (
	"context"

	"github.com/jwach/adoc"
	"github.com/jwach/adoc/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	return runCrawl(deps, c.crawlFlags, func(ctx context.Context, crawler *crawl.Crawler, progress crawl.ProgressFunc) ([]*adoc.DocPage, error) {
		return crawler.Crawl(ctx, c.URL, c.Recursive, progress)
	})
}
