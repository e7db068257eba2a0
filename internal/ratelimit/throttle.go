// Package ratelimit provides the two rate-limiting disciplines used by the
// lens engine: a leading-edge throttle for continuous pointer motion and a
// trailing-edge debouncer for bursty re-measurement triggers.
package ratelimit

import (
	"sync"
	"time"
)

// Throttle is a leading-edge rate gate. The first call in an interval is
// allowed; calls arriving inside the interval are dropped, not queued.
// There is no trailing-edge flush, so the final sample of a burst is
// intentionally lost rather than deferred.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewThrottle creates a throttle with the given minimum interval between
// allowed calls. An interval <= 0 allows every call.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{
		interval: interval,
		now:      time.Now,
	}
}

// Allow reports whether a call arriving now should be executed. The first
// call is always allowed.
func (t *Throttle) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset clears the gate so the next call is allowed immediately.
func (t *Throttle) Reset() {
	t.mu.Lock()
	t.last = time.Time{}
	t.mu.Unlock()
}
