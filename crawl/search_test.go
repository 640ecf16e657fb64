package crawl_test

import (
	"context"
	"testing"

	"github.com/jwach/adoc"
	"github.com/jwach/adoc/crawl"
	"github.com/jwach/adoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURL(t *testing.T) {
	t.Parallel()

	t.Run("builds search endpoint URL", func(t *testing.T) {
		t.Parallel()

		got := crawl.SearchURL("developer.apple.com", "SwiftUI")
		assert.Equal(t, "https://developer.apple.com/search/index.php?q=SwiftUI", got)
	})

	t.Run("escapes the keyword", func(t *testing.T) {
		t.Parallel()

		got := crawl.SearchURL("developer.apple.com", "swift concurrency & actors")
		assert.Equal(t, "https://developer.apple.com/search/index.php?q=swift+concurrency+%26+actors", got)
	})
}

func TestCrawler_SearchAndCrawl(t *testing.T) {
	t.Parallel()

	t.Run("crawls the search results URL", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetchedURL = url
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, sourceURL string) (*adoc.DocPage, error) {
					return &adoc.DocPage{URL: sourceURL}, nil
				},
			},
			Registry: crawl.NewRegistry(),
			Config:   adoc.DefaultCrawlerConfig(),
		}

		pages, err := c.SearchAndCrawl(context.Background(), "SwiftUI", false, nil)

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://developer.apple.com/search/index.php?q=SwiftUI", fetchedURL)
	})

	t.Run("uses the configured domain", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetchedURL = url
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, sourceURL string) (*adoc.DocPage, error) {
					return &adoc.DocPage{URL: sourceURL}, nil
				},
			},
			Registry: crawl.NewRegistry(),
			Config:   adoc.DefaultCrawlerConfig(),
			Domain:   "docs.example.org",
		}

		_, err := c.SearchAndCrawl(context.Background(), "widgets", false, nil)

		require.NoError(t, err)
		assert.Equal(t, "https://docs.example.org/search/index.php?q=widgets", fetchedURL)
	})
}
