package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

func TestSchedulerService_CompleteWorkSession(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	service := NewSchedulerService(store, clock, domain.DefaultPreferences())
	ctx := context.Background()

	state, err := service.CompleteWorkSession(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, state.WorkSessionCount)
	require.Len(t, state.ScheduledBreaks, 1)
	assert.Equal(t, domain.BreakKindShort, state.ScheduledBreaks[0].Kind)

	// Count survives a reload
	count, err := service.WorkSessionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSchedulerService_LongBreakEveryFourth(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	service := NewSchedulerService(store, clock, domain.DefaultPreferences())
	ctx := context.Background()

	var state *domain.SchedulerState
	var err error
	for i := 0; i < 4; i++ {
		state, err = service.CompleteWorkSession(ctx)
		require.NoError(t, err)
	}

	require.Len(t, state.ScheduledBreaks, 1)
	b := state.ScheduledBreaks[0]
	assert.Equal(t, domain.BreakKindLong, b.Kind)
	assert.Equal(t, 15, b.Duration)
	assert.Equal(t, clock.now.Add(50*time.Minute), b.StartTime)
}

func TestSchedulerService_UpcomingBreaks(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	service := NewSchedulerService(store, clock, domain.DefaultPreferences())
	ctx := context.Background()

	// A standing short-break proposal exists even before the first session
	breaks, err := service.UpcomingBreaks(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, breaks, 1)

	_, err = service.CompleteWorkSession(ctx)
	require.NoError(t, err)

	breaks, err = service.UpcomingBreaks(ctx, 3)
	require.NoError(t, err)
	require.Len(t, breaks, 1)
	assert.True(t, breaks[0].StartTime.After(clock.now))
}

func TestSchedulerService_CompleteBreak(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	service := NewSchedulerService(store, clock, domain.DefaultPreferences())
	ctx := context.Background()

	breaks, err := service.UpcomingBreaks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, breaks, 1)

	err = service.CompleteBreak(ctx, breaks[0].ID)
	require.NoError(t, err)

	history, err := service.BreakHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Completed)

	// Unknown ids are accepted silently
	assert.NoError(t, service.CompleteBreak(ctx, "no-such-break"))
}

func TestSchedulerService_BreakIDsStableAcrossReads(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	service := NewSchedulerService(store, clock, domain.DefaultPreferences())
	ctx := context.Background()

	first, err := service.UpcomingBreaks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := service.UpcomingBreaks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)

	// The listed id stays valid for a later completion and the completed
	// break leaves the queue
	require.NoError(t, service.CompleteBreak(ctx, first[0].ID))

	history, err := service.BreakHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, first[0].ID, history[0].ID)

	breaks, err := service.UpcomingBreaks(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, breaks)
}

func TestSchedulerService_SmartSchedulingDisabled(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	prefs := domain.DefaultPreferences()
	prefs.EnableSmartScheduling = false

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	service := NewSchedulerService(store, clock, prefs)
	ctx := context.Background()

	state, err := service.CompleteWorkSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.ScheduledBreaks)
}

func TestSchedulerService_UpdatePreferences(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	service := NewSchedulerService(store, clock, domain.DefaultPreferences())
	ctx := context.Background()

	work := 30
	prefs, err := service.UpdatePreferences(ctx, domain.PreferencesPatch{WorkSessionDuration: &work})
	require.NoError(t, err)
	assert.Equal(t, 30, prefs.WorkSessionDuration)

	// The next proposal starts one (new) work session from now
	breaks, err := service.UpcomingBreaks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, breaks, 1)
	assert.Equal(t, clock.now.Add(30*time.Minute), breaks[0].StartTime)
}
