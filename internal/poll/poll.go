// Package poll implements the one polling loop shared by every
// asynchronous backend job (CV extraction, cover-letter generation,
// skill-gap analysis): hit a lightweight status endpoint on a fixed
// interval until a terminal state appears, then fetch the full record
// exactly once.
package poll

import (
	"context"
	"time"
)

// DefaultInterval matches the short-interval polling the backend expects.
const DefaultInterval = 3 * time.Second

// Until polls status every interval until isTerminal reports true, then
// calls full exactly once and returns its result.
//
// The initial status is checked before any timer fires, so a job that is
// already terminal on creation skips polling entirely. A FAILED job is a
// normal terminal state here; the error return is reserved for transport
// failures and context cancellation. Cancelling ctx stops the loop without
// leaking the timer.
func Until[S, R any](
	ctx context.Context,
	interval time.Duration,
	initial S,
	isTerminal func(S) bool,
	status func(context.Context) (S, error),
	full func(context.Context) (R, error),
) (R, error) {
	var zero R
	if interval <= 0 {
		interval = DefaultInterval
	}

	current := initial
	if !isTerminal(current) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-ticker.C:
			}

			next, err := status(ctx)
			if err != nil {
				return zero, err
			}
			current = next
			if isTerminal(current) {
				break
			}
		}
	}

	return full(ctx)
}
