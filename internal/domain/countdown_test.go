package domain

import (
	"testing"
)

func TestNewCountdown(t *testing.T) {
	c := NewCountdown(90)

	if c.Remaining() != 90 {
		t.Errorf("Remaining() = %v, want 90", c.Remaining())
	}
	if c.Running() {
		t.Error("new countdown should not be running")
	}
}

func TestNewCountdown_NegativeDuration(t *testing.T) {
	c := NewCountdown(-5)

	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", c.Remaining())
	}
}

func TestCountdown_StartStop(t *testing.T) {
	c := NewCountdown(10)

	c.Start()
	if !c.Running() {
		t.Error("countdown should be running after Start()")
	}

	c.Stop()
	if c.Running() {
		t.Error("countdown should not be running after Stop()")
	}
	if c.Remaining() != 10 {
		t.Errorf("Stop() changed remaining = %v, want 10", c.Remaining())
	}

	// Resume keeps the remaining time
	c.Start()
	if !c.Running() {
		t.Error("countdown should resume after Start()")
	}
}

func TestCountdown_ZeroDurationNeverStarts(t *testing.T) {
	c := NewCountdown(0)

	c.Start()
	if c.Running() {
		t.Error("zero-duration countdown should not start")
	}
	if c.Tick() {
		t.Error("zero-duration countdown should never complete")
	}
}

func TestCountdown_TickDecrements(t *testing.T) {
	c := NewCountdown(3)
	c.Start()

	if c.Tick() {
		t.Error("Tick() completed too early")
	}
	if c.Remaining() != 2 {
		t.Errorf("Remaining() = %v, want 2", c.Remaining())
	}
}

func TestCountdown_TickWhileStopped(t *testing.T) {
	c := NewCountdown(5)

	if c.Tick() {
		t.Error("Tick() on a stopped countdown should not complete")
	}
	if c.Remaining() != 5 {
		t.Errorf("Tick() on a stopped countdown changed remaining = %v, want 5", c.Remaining())
	}
}

func TestCountdown_CompletesExactlyOnce(t *testing.T) {
	c := NewCountdown(2)
	c.Start()

	completions := 0
	for i := 0; i < 10; i++ {
		if c.Tick() {
			completions++
		}
	}

	if completions != 1 {
		t.Errorf("completions = %v, want 1", completions)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", c.Remaining())
	}
	if c.Running() {
		t.Error("countdown should stop at zero")
	}

	// An exhausted countdown cannot be restarted without Reset
	c.Start()
	if c.Running() {
		t.Error("exhausted countdown should not restart")
	}
}

func TestCountdown_NeverNegative(t *testing.T) {
	c := NewCountdown(1)
	c.Start()

	c.Tick()
	c.Start()
	c.Tick()

	if c.Remaining() < 0 {
		t.Errorf("Remaining() = %v, want >= 0", c.Remaining())
	}
}

func TestCountdown_Reset(t *testing.T) {
	c := NewCountdown(1)
	c.Start()
	c.Tick() // completes

	c.Reset(2)
	if c.Remaining() != 2 {
		t.Errorf("Remaining() = %v, want 2", c.Remaining())
	}
	if c.Running() {
		t.Error("Reset() should leave the countdown stopped")
	}

	// Reset re-arms completion
	c.Start()
	c.Tick()
	if !c.Tick() {
		t.Error("countdown should complete again after Reset()")
	}
}

func TestCountdown_Progress(t *testing.T) {
	c := NewCountdown(100)
	c.Start()

	if got := c.Progress(100); got != 0 {
		t.Errorf("Progress() = %v, want 0", got)
	}

	for i := 0; i < 25; i++ {
		c.Tick()
	}
	if got := c.Progress(100); got != 0.25 {
		t.Errorf("Progress() = %v, want 0.25", got)
	}

	if got := c.Progress(0); got != 0 {
		t.Errorf("Progress(0) = %v, want 0", got)
	}
}
