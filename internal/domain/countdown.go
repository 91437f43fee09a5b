// Package domain contains the core state machines for PauseQuest: the
// countdown timer, the gamification ledger, and the smart break scheduler.
// These entities are independent of any external frameworks or
// infrastructure.
package domain

// Countdown tracks the remaining seconds of a focus session.
// It is a pure state machine: something external (the TUI tick, a
// time.Ticker) must call Tick once per elapsed second while running.
type Countdown struct {
	remaining int
	running   bool
	completed bool // latch: completion already reported for this run
}

// NewCountdown creates a countdown with the given duration in seconds.
// Negative durations are clamped to zero.
func NewCountdown(seconds int) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{remaining: seconds}
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Running returns true while the countdown is advancing.
func (c *Countdown) Running() bool {
	return c.running
}

// Start begins counting down. Starting an already-running countdown is a
// no-op. A countdown at zero never starts: callers must Reset first, so an
// exhausted run cannot fire a second completion signal.
func (c *Countdown) Start() {
	if c.running || c.remaining == 0 {
		return
	}
	c.running = true
}

// Stop halts the countdown without clearing the remaining time.
// Stopping an already-stopped countdown is a no-op.
func (c *Countdown) Stop() {
	c.running = false
}

// Reset stops the countdown, sets a new duration, and re-arms completion.
func (c *Countdown) Reset(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.remaining = seconds
	c.running = false
	c.completed = false
}

// Tick advances the countdown by one second. It does nothing unless the
// countdown is running. When the counter reaches zero the countdown stops
// and Tick returns true exactly once for this run.
func (c *Countdown) Tick() bool {
	if !c.running {
		return false
	}

	c.remaining--
	if c.remaining > 0 {
		return false
	}

	c.remaining = 0
	c.running = false
	if c.completed {
		return false
	}
	c.completed = true
	return true
}

// Progress returns how far the countdown has advanced (0.0 to 1.0) relative
// to the given full duration in seconds.
func (c *Countdown) Progress(totalSeconds int) float64 {
	if totalSeconds <= 0 {
		return 0
	}
	p := 1 - float64(c.remaining)/float64(totalSeconds)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
