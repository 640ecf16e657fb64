package crawl

import (
	"context"
	"time"

	"github.com/jwach/adoc"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// FetchWithBackoff attempts to fetch a URL, retrying transient failures
// with exponential backoff until the backoff budget is exhausted or
// maxRetries retry attempts have been made, whichever comes first. A
// successful attempt short-circuits further retries.
//
// On exhaustion the last underlying cause is wrapped in an EUNAVAILABLE
// error. The logger function, if provided, is called for each retry.
func FetchWithBackoff(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, backoff Backoff, maxRetries uint) (string, error) {
	start := time.Now()

	var lastErr error
	for attempt := uint(0); ; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxRetries {
			break
		}

		delay, ok := backoff.Next(int(attempt), time.Since(start))
		if !ok {
			break
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", adoc.Errorf(adoc.EUNAVAILABLE, "fetch %s: %v", url, lastErr)
}
