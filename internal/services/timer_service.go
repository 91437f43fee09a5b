package services

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

// TimerService runs a countdown headlessly: a one-second ticker drives the
// domain state machine, and the completion callback fires exactly once when
// the counter reaches zero. The TUI drives its own countdown through
// Bubble Tea ticks instead of using this runner.
type TimerService struct {
	countdown  *domain.Countdown
	duration   int // seconds, for progress reporting
	onComplete func()
}

// NewTimerService creates a timer for the given duration in seconds.
func NewTimerService(seconds int, onComplete func()) *TimerService {
	return &TimerService{
		countdown:  domain.NewCountdown(seconds),
		duration:   seconds,
		onComplete: onComplete,
	}
}

// Countdown exposes the underlying state machine (read-only use).
func (t *TimerService) Countdown() *domain.Countdown {
	return t.countdown
}

// Run starts the countdown and blocks until it completes or the context is
// cancelled. Cancellation stops the ticker without firing completion.
func (t *TimerService) Run(ctx context.Context) error {
	if t.countdown.Running() {
		return domain.ErrTimerAlreadyRunning
	}
	t.countdown.Start()
	if !t.countdown.Running() {
		// Zero-duration timers never start; callers must Reset first.
		return domain.ErrNoActiveTimer
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	log.Debug("countdown started", "seconds", t.duration)
	for {
		select {
		case <-ctx.Done():
			t.countdown.Stop()
			return ctx.Err()
		case <-ticker.C:
			if t.countdown.Tick() {
				log.Debug("countdown completed")
				if t.onComplete != nil {
					t.onComplete()
				}
				return nil
			}
		}
	}
}
