package adoc

// VisitedRegistry is the shared set of URLs already claimed during a crawl
// session. It is the sole deduplication authority: every concurrent task
// must claim a URL here before fetching it.
type VisitedRegistry interface {
	// TryClaim atomically marks the URL as claimed. It returns true if and
	// only if the URL was not previously claimed; otherwise it returns
	// false with no side effect. The operation is linearizable across all
	// concurrent callers: a separate contains/insert pair would reintroduce
	// a race window, so none is exposed.
	TryClaim(url string) bool
}
