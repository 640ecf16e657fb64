package crawl

import "time"

// Default backoff parameters.
const (
	DefaultInitialDelay = 500 * time.Millisecond
	DefaultMultiplier   = 2.0
)

// Backoff computes retry delays with exponential growth bounded by a
// wall-clock budget rather than an attempt count: a slow link gets fewer
// attempts than a fast one before the budget runs out. The zero value of
// MaxElapsed means no budget.
//
// Backoff is a pure value; it holds no clock and no transport, which keeps
// the give-up decision unit-testable without real network calls.
type Backoff struct {
	// Initial is the delay before the first retry.
	Initial time.Duration

	// Multiplier scales the delay after each retry.
	Multiplier float64

	// MaxElapsed is the wall-clock ceiling for the whole retry sequence.
	MaxElapsed time.Duration
}

// DefaultBackoff returns a Backoff with default growth parameters and the
// given wall-clock budget.
func DefaultBackoff(budget time.Duration) Backoff {
	return Backoff{
		Initial:    DefaultInitialDelay,
		Multiplier: DefaultMultiplier,
		MaxElapsed: budget,
	}
}

// Next returns the delay to wait before retry number retry (zero-based),
// given the time elapsed since the first attempt. The second result is
// false when the budget is exhausted: either elapsed already reached the
// ceiling, or sleeping the computed delay would cross it.
func (b Backoff) Next(retry int, elapsed time.Duration) (time.Duration, bool) {
	if b.MaxElapsed > 0 && elapsed >= b.MaxElapsed {
		return 0, false
	}

	delay := b.Initial
	for i := 0; i < retry; i++ {
		delay = time.Duration(float64(delay) * b.Multiplier)
	}

	if b.MaxElapsed > 0 && elapsed+delay > b.MaxElapsed {
		return 0, false
	}
	return delay, true
}
