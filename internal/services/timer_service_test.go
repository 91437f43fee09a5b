package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

func TestTimerService_ZeroDuration(t *testing.T) {
	timer := NewTimerService(0, nil)

	err := timer.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveTimer)
}

func TestTimerService_CancelStopsWithoutCompleting(t *testing.T) {
	completed := false
	timer := NewTimerService(60, func() { completed = true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := timer.Run(ctx)
	require.Error(t, err)
	assert.False(t, completed)
	assert.False(t, timer.Countdown().Running())
}

func TestTimerService_CompletesAndFiresCallback(t *testing.T) {
	completed := false
	timer := NewTimerService(1, func() { completed = true })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := timer.Run(ctx)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, 0, timer.Countdown().Remaining())
}
