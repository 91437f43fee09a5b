package ports

import (
	"context"

	"github.com/pausequest/pausequest-cli/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// MCPStateProvider provides PauseQuest state to the MCP server.
// This is a driven port (implemented by the services layer).
type MCPStateProvider interface {
	// GetStats returns the current gamification ledger.
	GetStats(ctx context.Context) (*domain.UserStats, error)

	// GetUpcomingBreaks returns pending future breaks, ascending.
	GetUpcomingBreaks(ctx context.Context, limit int) ([]domain.BreakSchedule, error)

	// GetPreferences returns the current scheduler preferences.
	GetPreferences(ctx context.Context) (domain.Preferences, error)

	// RecordSession records a completed focus session and returns the
	// updated ledger plus any achievements unlocked by it.
	RecordSession(ctx context.Context, durationMinutes int) (*domain.UserStats, []domain.Achievement, error)

	// CompleteBreak marks a scheduled break as taken.
	CompleteBreak(ctx context.Context, id string) error

	// UpdatePreferences merges a partial preferences update.
	UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.Preferences, error)
}
