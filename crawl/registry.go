package crawl

import (
	"strings"
	"sync"

	"github.com/jwach/adoc"
	"github.com/jwach/adoc/bloom"
)

// Registry sizing defaults. Documentation sites are densely cross-linked,
// so the filter is sized well above the expected page count of one session.
const (
	registryExpectedURLs      = 10000
	registryFalsePositiveRate = 0.01
)

// Compile-time interface verification.
var _ adoc.VisitedRegistry = (*Registry)(nil)

// Registry is a concurrency-safe set of claimed URLs. A Bloom filter
// answers the common "never seen" case without touching the exact set;
// the map behind it keeps TryClaim exact, since a false positive from the
// filter alone would silently drop an unvisited page.
// It is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	exact map[string]struct{}
}

// NewRegistry creates a Registry for a single crawl session.
func NewRegistry() *Registry {
	return &Registry{
		seen:  bloom.NewFilter(registryExpectedURLs, registryFalsePositiveRate),
		exact: make(map[string]struct{}),
	}
}

// TryClaim atomically marks the URL as claimed, returning true only for
// the first claimer. URL fragments are stripped before deduplication, so
// URLs differing only by fragment are considered the same page.
func (r *Registry) TryClaim(rawURL string) bool {
	url := stripFragment(rawURL)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen.Test(url) {
		if _, ok := r.exact[url]; ok {
			return false
		}
	}

	r.seen.Add(url)
	r.exact[url] = struct{}{}
	return true
}

// Len returns the number of URLs claimed so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.exact)
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
