package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jwach/adoc"
	"github.com/jwach/adoc/crawl"
	"github.com/jwach/adoc/fs"
	"github.com/jwach/adoc/goquery"
	adochttp "github.com/jwach/adoc/http"
	"github.com/jwach/adoc/report"
	adocslog "github.com/jwach/adoc/slog"
)

// crawlFn runs a crawl session against a fully wired crawler.
type crawlFn func(ctx context.Context, c *crawl.Crawler, progress crawl.ProgressFunc) ([]*adoc.DocPage, error)

// runCrawl wires up the crawler from the shared flags, runs the session,
// and renders the result to the selected destination.
func runCrawl(deps *Dependencies, flags crawlFlags, run crawlFn) error {
	config := adoc.CrawlerConfig{
		MaxRetries:  flags.MaxRetries,
		Concurrency: flags.Concurrency,
		Timeout:     flags.Timeout,
	}
	if err := config.Validate(); err != nil {
		return err
	}

	format, err := resolveFormat(flags)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if flags.Verbose {
		logger = slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	var fetcher adoc.Fetcher = adochttp.NewFetcher(adochttp.WithTimeout(flags.Timeout))
	defer fetcher.Close()

	var registry adoc.VisitedRegistry = crawl.NewRegistry()

	var log crawl.LogFunc
	if logger != nil {
		fetcher = adocslog.NewLoggingFetcher(fetcher, logger)
		registry = adocslog.NewLoggingRegistry(registry, logger)
		log = func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		}
	}

	crawler := &crawl.Crawler{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(flags.Domain),
		Registry:  registry,
		Config:    config,
		Domain:    flags.Domain,
		Log:       log,
	}

	pages, err := run(deps.Ctx, crawler, progressPrinter(deps.Stderr))
	if err != nil {
		return err
	}

	if flags.Output != "" {
		if err := fs.NewWriter(flags.Output, format).Save(pages); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved %d page(s) to %s\n", len(pages), flags.Output)
		return nil
	}

	_, err = report.NewWriter(deps.Stdout, format).Write(pages)
	return err
}

// resolveFormat picks the output format: an explicit --format wins, then
// the output path's extension, then JSON.
func resolveFormat(flags crawlFlags) (report.Format, error) {
	if flags.Format != "" {
		return report.ParseFormat(flags.Format)
	}
	if flags.Output != "" {
		if format, ok := report.FormatFromPath(flags.Output); ok {
			return format, nil
		}
	}
	return report.FormatJSON, nil
}

// progressPrinter reports crawl progress on w. Failures are printed as
// they happen; skips and successes only move the counter.
func progressPrinter(w io.Writer) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(w, "Found %d link(s)\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(w, "skip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressFinished:
			fmt.Fprintf(w, "Processed %d of %d link(s)\n", event.Completed, event.Total)
		}
	}
}
