package ratelimit

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_BurstCollapses(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func() {
		calls.Add(1)
	})

	// Ten calls in ~50ms, then silence.
	for i := 0; i < 10; i++ {
		d.Call()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if n := calls.Load(); n != 1 {
		t.Errorf("callback ran %d times, want 1", n)
	}
}

func TestDebouncer_SpacedCallsEachFire(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() {
		calls.Add(1)
	})

	d.Call()
	time.Sleep(80 * time.Millisecond)
	d.Call()
	time.Sleep(80 * time.Millisecond)

	if n := calls.Load(); n != 2 {
		t.Errorf("callback ran %d times, want 2", n)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func() {
		calls.Add(1)
	})

	d.Call()
	d.Cancel()

	time.Sleep(150 * time.Millisecond)

	if n := calls.Load(); n != 0 {
		t.Errorf("callback ran %d times after Cancel, want 0", n)
	}
}

func TestDebouncer_Pending(t *testing.T) {
	d := NewDebouncer(50*time.Millisecond, func() {})

	if d.Pending() {
		t.Error("pending before any call")
	}

	d.Call()
	if !d.Pending() {
		t.Error("not pending after Call")
	}

	time.Sleep(150 * time.Millisecond)
	if d.Pending() {
		t.Error("still pending after the callback fired")
	}
}
