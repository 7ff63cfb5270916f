package llm

import (
	"fmt"
	"sync"
	"time"
)

// RateLimitError reports an exhausted quota with a retry hint. Callers get it
// immediately; nothing is queued.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("llm: rate limit exceeded, retry after %ds", int(e.RetryAfter.Seconds())+1)
}

// RateLimiter enforces a fixed quota over a sliding window. State is
// process-wide and mutex-guarded so concurrent handlers see exact counts.
type RateLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	stamps []time.Time
	now    func() time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{max: max, window: window, now: time.Now}
}

// Allow records one call against the quota, or returns a *RateLimitError if
// the window is full.
func (r *RateLimiter) Allow() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	kept := r.stamps[:0]
	for _, t := range r.stamps {
		if now.Sub(t) < r.window {
			kept = append(kept, t)
		}
	}
	r.stamps = kept

	if len(r.stamps) >= r.max {
		return &RateLimitError{RetryAfter: r.window - now.Sub(r.stamps[0])}
	}
	r.stamps = append(r.stamps, now)
	return nil
}
