package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

func TestSessionService_CompleteFocusSession(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	ledger := NewLedgerService(store, clock)
	scheduler := NewSchedulerService(store, clock, domain.DefaultPreferences())
	service := NewSessionService(ledger, scheduler)
	ctx := context.Background()

	result, err := service.CompleteFocusSession(ctx, 50)
	require.NoError(t, err)

	// Ledger side
	require.NotNil(t, result.Stats)
	assert.Equal(t, 1, result.Stats.TotalSessions)
	assert.Equal(t, 50, result.Stats.TotalFocusTime)
	require.Len(t, result.Unlocked, 1)
	assert.Equal(t, "first-session", result.Unlocked[0].ID)

	// Scheduler side
	require.NotNil(t, result.NextBreak)
	assert.Equal(t, domain.BreakKindShort, result.NextBreak.Kind)
	assert.Equal(t, clock.now.Add(50*time.Minute), result.NextBreak.StartTime)

	count, err := scheduler.WorkSessionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionService_FourthSessionProposesLongBreak(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	ledger := NewLedgerService(store, clock)
	scheduler := NewSchedulerService(store, clock, domain.DefaultPreferences())
	service := NewSessionService(ledger, scheduler)
	ctx := context.Background()

	var result *SessionResult
	var err error
	for i := 0; i < 4; i++ {
		result, err = service.CompleteFocusSession(ctx, 50)
		require.NoError(t, err)
	}

	require.NotNil(t, result.NextBreak)
	assert.Equal(t, domain.BreakKindLong, result.NextBreak.Kind)
	assert.Equal(t, 4, result.Stats.TotalSessions)
	assert.Equal(t, 200, result.Stats.TotalFocusTime)
}

func TestSessionService_NoBreakWhenSchedulingDisabled(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	prefs := domain.DefaultPreferences()
	prefs.EnableSmartScheduling = false

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	ledger := NewLedgerService(store, clock)
	scheduler := NewSchedulerService(store, clock, prefs)
	service := NewSessionService(ledger, scheduler)

	result, err := service.CompleteFocusSession(context.Background(), 50)
	require.NoError(t, err)
	assert.Nil(t, result.NextBreak)
	assert.Equal(t, 1, result.Stats.TotalSessions)
}
