package mock

import "github.com/jwach/adoc"

var _ adoc.VisitedRegistry = (*VisitedRegistry)(nil)

// VisitedRegistry is a mock implementation of adoc.VisitedRegistry.
type VisitedRegistry struct {
	TryClaimFn func(url string) bool
}

func (r *VisitedRegistry) TryClaim(url string) bool {
	return r.TryClaimFn(url)
}
