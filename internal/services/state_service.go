package services

import (
	"context"

	"github.com/pausequest/pausequest-cli/internal/domain"
	"github.com/pausequest/pausequest-cli/internal/ports"
)

// StateService implements the MCPStateProvider interface on top of the
// ledger, scheduler, and session services.
type StateService struct {
	ledger    *LedgerService
	scheduler *SchedulerService
	sessions  *SessionService
}

// Ensure StateService implements ports.MCPStateProvider.
var _ ports.MCPStateProvider = (*StateService)(nil)

// NewStateService creates a new state service.
func NewStateService(ledger *LedgerService, scheduler *SchedulerService, sessions *SessionService) *StateService {
	return &StateService{ledger: ledger, scheduler: scheduler, sessions: sessions}
}

// GetStats implements ports.MCPStateProvider.
func (s *StateService) GetStats(ctx context.Context) (*domain.UserStats, error) {
	return s.ledger.Stats(ctx)
}

// GetUpcomingBreaks implements ports.MCPStateProvider.
func (s *StateService) GetUpcomingBreaks(ctx context.Context, limit int) ([]domain.BreakSchedule, error) {
	return s.scheduler.UpcomingBreaks(ctx, limit)
}

// GetPreferences implements ports.MCPStateProvider.
func (s *StateService) GetPreferences(ctx context.Context) (domain.Preferences, error) {
	return s.scheduler.Preferences(), nil
}

// RecordSession implements ports.MCPStateProvider.
func (s *StateService) RecordSession(ctx context.Context, durationMinutes int) (*domain.UserStats, []domain.Achievement, error) {
	result, err := s.sessions.CompleteFocusSession(ctx, durationMinutes)
	if err != nil {
		return nil, nil, err
	}
	return result.Stats, result.Unlocked, nil
}

// CompleteBreak implements ports.MCPStateProvider.
func (s *StateService) CompleteBreak(ctx context.Context, id string) error {
	return s.scheduler.CompleteBreak(ctx, id)
}

// UpdatePreferences implements ports.MCPStateProvider.
func (s *StateService) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.Preferences, error) {
	return s.scheduler.UpdatePreferences(ctx, patch)
}
