package ratelimit

import (
	"testing"
	"time"
)

func TestThrottle_LeadingEdge(t *testing.T) {
	th := NewThrottle(50 * time.Millisecond)

	if !th.Allow() {
		t.Fatal("first call must be allowed")
	}
	if th.Allow() {
		t.Error("call inside the window must be dropped")
	}
}

func TestThrottle_BurstExecutesOnce(t *testing.T) {
	now := time.Unix(0, 0)
	th := NewThrottle(time.Second / 120)
	th.now = func() time.Time { return now }

	// Two calls 5ms apart land inside the ~8.33ms window.
	allowed := 0
	if th.Allow() {
		allowed++
	}
	now = now.Add(5 * time.Millisecond)
	if th.Allow() {
		allowed++
	}

	if allowed != 1 {
		t.Errorf("allowed %d calls, want 1 (no trailing flush)", allowed)
	}
}

func TestThrottle_AllowsAfterInterval(t *testing.T) {
	now := time.Unix(0, 0)
	th := NewThrottle(10 * time.Millisecond)
	th.now = func() time.Time { return now }

	th.Allow()
	now = now.Add(10 * time.Millisecond)
	if !th.Allow() {
		t.Error("call at the interval boundary must be allowed")
	}
}

func TestThrottle_WindowRestartsOnAllowedCall(t *testing.T) {
	now := time.Unix(0, 0)
	th := NewThrottle(10 * time.Millisecond)
	th.now = func() time.Time { return now }

	th.Allow()

	// Dropped calls must not push the window forward.
	now = now.Add(5 * time.Millisecond)
	th.Allow()
	now = now.Add(5 * time.Millisecond)
	if !th.Allow() {
		t.Error("window must be measured from the last allowed call")
	}
}

func TestThrottle_Reset(t *testing.T) {
	th := NewThrottle(time.Hour)

	th.Allow()
	th.Reset()
	if !th.Allow() {
		t.Error("call after Reset must be allowed")
	}
}
