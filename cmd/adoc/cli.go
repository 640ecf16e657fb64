package main

import (
	"context"
	"io"
	"time"
)

// Dependencies holds configuration and output streams for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Crawl a documentation URL"`
	Search SearchCmd `cmd:"" help:"Search the documentation and crawl the results page"`
}

// crawlFlags are the flags shared by the crawl and search commands.
type crawlFlags struct {
	Recursive   bool          `short:"r" help:"Follow in-domain links one hop"`
	Output      string        `short:"o" help:"Output file path (stdout if omitted)"`
	Format      string        `short:"f" help:"Output format: json, pretty-json, text, markdown (inferred from output extension when omitted)"`
	MaxRetries  uint          `default:"3" help:"Maximum retry attempts per request"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"30s" help:"Per-request timeout and retry budget"`
	Domain      string        `default:"developer.apple.com" help:"Crawl target domain"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL string `arg:"" help:"Documentation URL"`
	crawlFlags
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Keyword string `arg:"" help:"Search keyword"`
	crawlFlags
}
