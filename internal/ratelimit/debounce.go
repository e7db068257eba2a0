package ratelimit

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of calls into a single callback invocation
// after the burst has been quiet for the configured delay.
//
// The callback never runs concurrently with itself from the debouncer, and
// Cancel guarantees a pending callback will not fire afterwards.
type Debouncer struct {
	mu       sync.Mutex
	delay    time.Duration
	timer    *time.Timer
	seq      uint64 // invalidates stale timer callbacks
	callback func()
}

// NewDebouncer creates a debouncer that invokes callback after delay of
// quiescence.
func NewDebouncer(delay time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		delay:    delay,
		callback: callback,
	}
}

// Call schedules the callback. Repeated calls inside the delay window reset
// the timer, so only the last call's timing matters.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	current := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := d.seq != current
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if !stale && d.callback != nil {
			d.callback()
		}
	})
}

// Cancel drops any pending invocation. Safe to call with nothing pending.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

// Pending reports whether an invocation is currently scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
