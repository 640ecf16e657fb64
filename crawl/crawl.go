// Package crawl provides the crawl engine: a seed URL is claimed in the
// visited registry, fetched, and extracted; in recursive mode the crawler
// fans out over the seed page's in-domain links with bounded parallelism.
package crawl

import (
	"context"

	"github.com/jwach/adoc"
	"golang.org/x/sync/errgroup"
)

// Crawler orchestrates a crawl session. All collaborator fields must be
// set before use; Registry is created per session and must not be shared
// across unrelated crawls.
type Crawler struct {
	Fetcher   adoc.Fetcher
	Extractor adoc.Extractor
	Registry  adoc.VisitedRegistry
	Config    adoc.CrawlerConfig

	// Domain is the crawl target host, used to build search URLs.
	// Defaults to DefaultDomain when empty.
	Domain string

	// Backoff overrides the retry policy. When nil, DefaultBackoff with
	// Config.Timeout as the wall-clock budget is used.
	Backoff *Backoff

	// Log receives retry notices. May be nil.
	Log LogFunc
}

// ProgressEvent reports progress during a recursive crawl.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single descendant link.
type crawlResult struct {
	url     string
	page    *adoc.DocPage
	skipped bool
	err     error
}

// Crawl fetches the seed URL and, when recursive, every in-domain link on
// the seed page that has not already been claimed this session. Fan-out is
// one hop deep: links discovered on descendant pages are recorded in their
// DocPage but not fetched.
//
// A seed that was already claimed returns an empty result and no error.
// A seed fetch or extraction failure aborts the invocation with no partial
// result. Descendant failures are reported through progress and contribute
// zero pages. The seed page is always first in the result; descendants
// follow in completion order.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, recursive bool, progress ProgressFunc) ([]*adoc.DocPage, error) {
	if !c.Registry.TryClaim(seedURL) {
		return []*adoc.DocPage{}, nil
	}

	seed, err := c.fetchPage(ctx, seedURL)
	if err != nil {
		return nil, err
	}

	pages := []*adoc.DocPage{seed}
	if !recursive {
		return pages, nil
	}

	// All candidates are enumerated before fan-out begins; the concurrency
	// limit throttles execution, not discovery.
	links := seed.RelatedLinks
	total := len(links)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := c.Config.Concurrency
	if concurrency <= 0 {
		concurrency = adoc.DefaultConcurrency
	}

	resultCh := make(chan crawlResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, link := range links {
			link := link
			g.Go(func() error {
				resultCh <- c.processLink(gctx, link)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for result := range resultCh {
		completed++

		switch {
		case result.skipped:
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: completed,
					Total:     total,
					URL:       result.url,
				})
			}
		case result.err != nil:
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		default:
			pages = append(pages, result.page)
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: completed,
					Total:     total,
					URL:       result.url,
				})
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return pages, nil
}

// processLink claims and fetches a single descendant link.
// A lost claim means another task owns the URL; the result is a skip, not
// an error.
func (c *Crawler) processLink(ctx context.Context, link string) crawlResult {
	if !c.Registry.TryClaim(link) {
		return crawlResult{url: link, skipped: true}
	}

	page, err := c.fetchPage(ctx, link)
	if err != nil {
		return crawlResult{url: link, err: err}
	}
	return crawlResult{url: link, page: page}
}

// fetchPage retrieves and extracts one page, applying the retry policy.
func (c *Crawler) fetchPage(ctx context.Context, url string) (*adoc.DocPage, error) {
	backoff := DefaultBackoff(c.Config.Timeout)
	if c.Backoff != nil {
		backoff = *c.Backoff
	}

	fetchFn := func(ctx context.Context, url string) (string, error) {
		return c.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithBackoff(ctx, url, fetchFn, c.Log, backoff, c.Config.MaxRetries)
	if err != nil {
		return nil, err
	}

	return c.Extractor.Extract(html, url)
}
