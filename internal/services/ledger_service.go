// Package services contains the application services wiring the domain
// state machines to the storage, clock, and notification ports.
package services

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pausequest/pausequest-cli/internal/domain"
	"github.com/pausequest/pausequest-cli/internal/ports"
)

// LedgerService owns the gamification ledger: it loads the record, applies
// session rewards and achievement unlocks, and persists after every
// mutation.
type LedgerService struct {
	storage ports.Storage
	clock   ports.Clock
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(storage ports.Storage, clock ports.Clock) *LedgerService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &LedgerService{storage: storage, clock: clock}
}

// Stats returns the current ledger record.
func (s *LedgerService) Stats(ctx context.Context) (*domain.UserStats, error) {
	return s.storage.Stats().Load(ctx)
}

// RecordCompletedSession applies one completed focus session of the given
// duration (minutes) to the ledger, persists the result, and returns the
// updated record plus the achievements newly unlocked by this call.
func (s *LedgerService) RecordCompletedSession(ctx context.Context, durationMinutes int) (*domain.UserStats, []domain.Achievement, error) {
	stats, err := s.storage.Stats().Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stats: %w", err)
	}

	unlocked := stats.RecordSession(durationMinutes, s.clock.Now())

	if err := s.storage.Stats().Save(ctx, stats); err != nil {
		return nil, nil, fmt.Errorf("failed to save stats: %w", err)
	}

	log.Debug("recorded session",
		"duration_min", durationMinutes,
		"total_sessions", stats.TotalSessions,
		"streak", stats.CurrentStreak,
		"unlocked", len(unlocked))

	return stats, unlocked, nil
}

// RecordAction applies a non-session action of the given kind (break, mood)
// to the ledger: it awards a small point bonus, re-evaluates locked
// achievements, and persists the updated record.
func (s *LedgerService) RecordAction(ctx context.Context, kind string) (*domain.UserStats, []domain.Achievement, error) {
	stats, err := s.storage.Stats().Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stats: %w", err)
	}

	unlocked := stats.RecordAction(domain.PointsPerAction, s.clock.Now())

	if err := s.storage.Stats().Save(ctx, stats); err != nil {
		return nil, nil, fmt.Errorf("failed to save stats: %w", err)
	}

	log.Debug("recorded action",
		"kind", kind,
		"points", stats.FocusPoints,
		"unlocked", len(unlocked))

	return stats, unlocked, nil
}

// ResetStats returns the ledger to its zero/locked defaults and persists.
// There is no undo.
func (s *LedgerService) ResetStats(ctx context.Context) (*domain.UserStats, error) {
	stats := domain.DefaultUserStats()
	if err := s.storage.Stats().Save(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to reset stats: %w", err)
	}
	log.Debug("reset gamification stats")
	return stats, nil
}
