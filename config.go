package adoc

import "time"

// Default crawler configuration values.
const (
	DefaultMaxRetries  = 3
	DefaultConcurrency = 10
	DefaultTimeout     = 30 * time.Second
)

// CrawlerConfig holds the immutable configuration for a crawl session.
// It is supplied once at crawler construction and never mutated during
// a crawl.
type CrawlerConfig struct {
	// MaxRetries caps the number of retry attempts per request.
	// The retry budget is primarily bounded by Timeout; see crawl.Backoff.
	MaxRetries uint

	// Concurrency is the maximum number of simultaneous in-flight fetches
	// during recursive fan-out. Must be greater than zero.
	Concurrency int

	// Timeout bounds a single request and sets the wall-clock ceiling for
	// the retry backoff budget.
	Timeout time.Duration
}

// DefaultCrawlerConfig returns a CrawlerConfig with default values.
func DefaultCrawlerConfig() CrawlerConfig {
	return CrawlerConfig{
		MaxRetries:  DefaultMaxRetries,
		Concurrency: DefaultConcurrency,
		Timeout:     DefaultTimeout,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c CrawlerConfig) Validate() error {
	if c.Concurrency <= 0 {
		return Errorf(EINVALID, "concurrency must be greater than zero")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be greater than zero")
	}
	return nil
}
