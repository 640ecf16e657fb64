package slog

import (
	"log/slog"

	"github.com/jwach/adoc"
)

// Ensure LoggingRegistry implements adoc.VisitedRegistry at compile time.
var _ adoc.VisitedRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a VisitedRegistry with debug logging of claim
// outcomes.
type LoggingRegistry struct {
	next   adoc.VisitedRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next adoc.VisitedRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// TryClaim delegates to the wrapped registry and logs the outcome.
func (r *LoggingRegistry) TryClaim(url string) bool {
	claimed := r.next.TryClaim(url)
	r.logger.Debug("claim",
		"url", url,
		"claimed", claimed,
	)
	return claimed
}
