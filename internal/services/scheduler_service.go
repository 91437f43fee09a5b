package services

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pausequest/pausequest-cli/internal/domain"
	"github.com/pausequest/pausequest-cli/internal/ports"
)

// SchedulerService owns the smart break scheduler. The durable part of the
// state (session count, break history) is loaded once and persisted after
// every mutation; the scheduled-break queue is held in memory so the break
// IDs it hands out stay valid for later CompleteBreak calls, and is
// rederived only when the count or the preferences change.
type SchedulerService struct {
	storage ports.Storage
	clock   ports.Clock
	prefs   domain.Preferences
	state   *domain.SchedulerState
}

// NewSchedulerService creates a scheduler service with the given
// preferences (callers usually pass the configured defaults).
func NewSchedulerService(storage ports.Storage, clock ports.Clock, prefs domain.Preferences) *SchedulerService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &SchedulerService{storage: storage, clock: clock, prefs: prefs}
}

// load materializes the scheduler state on first use: durable fields from
// storage, queue derived from count and preferences. Subsequent calls
// return the cached state.
func (s *SchedulerService) load(ctx context.Context) (*domain.SchedulerState, error) {
	if s.state != nil {
		return s.state, nil
	}
	count, history, err := s.storage.Scheduler().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduler state: %w", err)
	}
	state := &domain.SchedulerState{
		Preferences:      s.prefs,
		WorkSessionCount: count,
		BreakHistory:     history,
	}
	state.Regenerate(s.clock.Now())
	s.state = state
	return state, nil
}

// save persists the durable scheduler fields.
func (s *SchedulerService) save(ctx context.Context, state *domain.SchedulerState) error {
	if err := s.storage.Scheduler().Save(ctx, state.WorkSessionCount, state.BreakHistory); err != nil {
		return fmt.Errorf("failed to save scheduler state: %w", err)
	}
	return nil
}

// Preferences returns the current scheduler preferences.
func (s *SchedulerService) Preferences() domain.Preferences {
	return s.prefs
}

// UpdatePreferences merges the patch into the preferences, rederives the
// queue, and returns the merged result.
func (s *SchedulerService) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.Preferences, error) {
	state, err := s.load(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}
	state.Preferences.Apply(patch)
	state.Regenerate(s.clock.Now())
	s.prefs = state.Preferences
	log.Debug("updated scheduler preferences",
		"work_min", s.prefs.WorkSessionDuration,
		"long_interval", s.prefs.LongBreakInterval,
		"smart", s.prefs.EnableSmartScheduling)
	return s.prefs, nil
}

// CompleteWorkSession advances the rolling work session count, regenerates
// the scheduled-break queue, and persists the count.
func (s *SchedulerService) CompleteWorkSession(ctx context.Context) (*domain.SchedulerState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	state.CompleteWorkSession(s.clock.Now())
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	log.Debug("work session completed", "count", state.WorkSessionCount)
	return state, nil
}

// UpcomingBreaks returns up to limit pending future breaks.
func (s *SchedulerService) UpcomingBreaks(ctx context.Context, limit int) ([]domain.BreakSchedule, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return state.UpcomingBreaks(s.clock.Now(), limit), nil
}

// WorkSessionCount returns the rolling completed-session count.
func (s *SchedulerService) WorkSessionCount(ctx context.Context) (int, error) {
	state, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return state.WorkSessionCount, nil
}

// BreakHistory returns the completed breaks, oldest first.
func (s *SchedulerService) BreakHistory(ctx context.Context) ([]domain.BreakSchedule, error) {
	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return state.BreakHistory, nil
}

// CompleteBreak marks a scheduled break as taken and persists the history.
// Unknown or already-completed ids are a no-op, not an error.
func (s *SchedulerService) CompleteBreak(ctx context.Context, id string) error {
	state, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !state.CompleteBreak(id) {
		log.Debug("complete break ignored", "id", id)
		return nil
	}
	return s.save(ctx, state)
}
