package services

import (
	"context"

	"github.com/pausequest/pausequest-cli/internal/domain"
)

// SessionResult is everything a completed focus session produced: the
// updated ledger, the achievements it unlocked, and the next proposed
// break.
type SessionResult struct {
	Stats     *domain.UserStats
	Unlocked  []domain.Achievement
	NextBreak *domain.BreakSchedule
}

// SessionService fans a "session completed" command out to the ledger and
// the scheduler. The two components have no direct dependency on each
// other; this service establishes the ordering: the ledger consumes the
// session duration first, then the scheduler advances its count.
type SessionService struct {
	ledger    *LedgerService
	scheduler *SchedulerService
}

// NewSessionService creates the fan-out service.
func NewSessionService(ledger *LedgerService, scheduler *SchedulerService) *SessionService {
	return &SessionService{ledger: ledger, scheduler: scheduler}
}

// CompleteFocusSession applies one completed focus session atomically from
// the caller's point of view: ledger update with the known duration, then
// scheduler advance.
func (s *SessionService) CompleteFocusSession(ctx context.Context, durationMinutes int) (*SessionResult, error) {
	stats, unlocked, err := s.ledger.RecordCompletedSession(ctx, durationMinutes)
	if err != nil {
		return nil, err
	}

	state, err := s.scheduler.CompleteWorkSession(ctx)
	if err != nil {
		return nil, err
	}

	result := &SessionResult{Stats: stats, Unlocked: unlocked}
	if len(state.ScheduledBreaks) > 0 {
		next := state.ScheduledBreaks[0]
		result.NextBreak = &next
	}
	return result, nil
}
