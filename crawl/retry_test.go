package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jwach/adoc"
	"github.com/jwach/adoc/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastBackoff returns a backoff with no real delays for tests.
func fastBackoff(budget time.Duration) crawl.Backoff {
	return crawl.Backoff{
		Initial:    time.Nanosecond,
		Multiplier: 1,
		MaxElapsed: budget,
	}
}

func TestFetchWithBackoff(t *testing.T) {
	t.Parallel()

	t.Run("success short-circuits retries", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := crawl.FetchWithBackoff(context.Background(), "https://example.com", fetch, nil, fastBackoff(time.Minute), 3)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection refused")
			}
			return "ok", nil
		}

		html, err := crawl.FetchWithBackoff(context.Background(), "https://example.com", fetch, nil, fastBackoff(time.Minute), 3)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns EUNAVAILABLE with last cause after retry cap", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("still down")
		}

		_, err := crawl.FetchWithBackoff(context.Background(), "https://example.com", fetch, nil, fastBackoff(time.Minute), 2)

		require.Error(t, err)
		assert.Equal(t, adoc.EUNAVAILABLE, adoc.ErrorCode(err))
		assert.Contains(t, adoc.ErrorMessage(err), "still down")
		assert.Equal(t, 3, calls) // 1 initial + 2 retries
	})

	t.Run("stops when the elapsed budget is exhausted", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			time.Sleep(5 * time.Millisecond)
			return "", errors.New("timeout")
		}

		backoff := crawl.Backoff{
			Initial:    time.Millisecond,
			Multiplier: 2,
			MaxElapsed: 15 * time.Millisecond,
		}

		_, err := crawl.FetchWithBackoff(context.Background(), "https://example.com", fetch, nil, backoff, 100)

		require.Error(t, err)
		assert.Equal(t, adoc.EUNAVAILABLE, adoc.ErrorCode(err))
		// The generous retry cap never binds; the wall-clock budget does.
		assert.Less(t, calls, 10)
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		var logged []string
		logger := func(format string, args ...any) {
			logged = append(logged, format)
		}
		fetch := func(_ context.Context, _ string) (string, error) {
			return "", errors.New("boom")
		}

		_, err := crawl.FetchWithBackoff(context.Background(), "https://example.com", fetch, logger, fastBackoff(time.Minute), 2)

		require.Error(t, err)
		assert.Len(t, logged, 2)
	})

	t.Run("respects context cancellation between attempts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", errors.New("failing")
		}

		backoff := crawl.Backoff{
			Initial:    time.Hour, // would hang without cancellation
			Multiplier: 2,
		}

		_, err := crawl.FetchWithBackoff(ctx, "https://example.com", fetch, nil, backoff, 3)

		require.ErrorIs(t, err, context.Canceled)
	})
}
