// Package ports defines the interfaces (driven and driving ports)
// for the PauseQuest application following hexagonal architecture
// principles. These interfaces define the contracts between the domain
// layer and external infrastructure.
package ports

import (
	"context"

	"github.com/pausequest/pausequest-cli/internal/domain"
)

// KeyValueStore is the abstract persistence capability: opaque JSON blobs
// under fixed keys. Each Put replaces the whole record atomically from the
// caller's point of view. This is a driven port (implemented by adapters).
type KeyValueStore interface {
	// Get returns the blob stored under key, or ok=false when absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put stores the blob under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the record under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// StatsRepository persists the gamification ledger record.
// A missing or unreadable record loads as the zero/locked defaults.
type StatsRepository interface {
	Load(ctx context.Context) (*domain.UserStats, error)
	Save(ctx context.Context, stats *domain.UserStats) error
}

// SchedulerRepository persists the durable part of the scheduler state:
// the work session count and the break history. The scheduled-break queue
// is derived and never stored.
type SchedulerRepository interface {
	Load(ctx context.Context) (workSessionCount int, history []domain.BreakSchedule, err error)
	Save(ctx context.Context, workSessionCount int, history []domain.BreakSchedule) error
}

// SettingsRepository persists the user display/sound settings record.
type SettingsRepository interface {
	Load(ctx context.Context) (*domain.UserSettings, error)
	Save(ctx context.Context, settings *domain.UserSettings) error
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Stats provides access to the gamification ledger record.
	Stats() StatsRepository

	// Scheduler provides access to the scheduler record.
	Scheduler() SchedulerRepository

	// Settings provides access to the user settings record.
	Settings() SettingsRepository

	// KV exposes the raw key-value capability.
	KV() KeyValueStore

	// Close closes the storage connection.
	Close() error
}
