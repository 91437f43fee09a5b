package storage

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/pausequest/pausequest-cli/internal/domain"
	"github.com/pausequest/pausequest-cli/internal/ports"
)

// Storage keys. These match the records the original PauseQuest persisted,
// so they must remain stable.
const (
	statsKey     = "pausequest-stats"
	schedulerKey = "smartSchedulerState"
	settingsKey  = "appSettings"
)

// statsRepository stores the gamification ledger as one JSON blob.
type statsRepository struct {
	kv ports.KeyValueStore
}

var _ ports.StatsRepository = (*statsRepository)(nil)

// Load reads the ledger record. A missing or unparseable record degrades
// to the zero/locked defaults rather than surfacing an error.
func (r *statsRepository) Load(ctx context.Context) (*domain.UserStats, error) {
	value, ok, err := r.kv.Get(ctx, statsKey)
	if err != nil || !ok {
		if err != nil {
			log.Debug("stats record unreadable, using defaults", "err", err)
		}
		return domain.DefaultUserStats(), nil
	}

	var stats domain.UserStats
	if err := json.Unmarshal(value, &stats); err != nil {
		log.Debug("stats record corrupt, using defaults", "err", err)
		return domain.DefaultUserStats(), nil
	}
	// Reconcile stored unlock state with the compiled catalog so records
	// written by older versions still load.
	stored := stats.Achievements
	stats.MergeAchievements(stored)
	return &stats, nil
}

// Save writes the full ledger record.
func (r *statsRepository) Save(ctx context.Context, stats *domain.UserStats) error {
	value, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, statsKey, value)
}

// schedulerRecord is the persisted scheduler shape: the scheduled-break
// queue is derived and deliberately absent. StartTime round-trips as
// RFC3339 via encoding/json so the record survives storage.
type schedulerRecord struct {
	BreakHistory     []domain.BreakSchedule `json:"breakHistory"`
	WorkSessionCount int                    `json:"workSessionCount"`
}

// schedulerRepository stores the durable scheduler state as one JSON blob.
type schedulerRepository struct {
	kv ports.KeyValueStore
}

var _ ports.SchedulerRepository = (*schedulerRepository)(nil)

// Load reads the scheduler record, degrading to an empty state when the
// record is missing or corrupt.
func (r *schedulerRepository) Load(ctx context.Context) (int, []domain.BreakSchedule, error) {
	value, ok, err := r.kv.Get(ctx, schedulerKey)
	if err != nil || !ok {
		if err != nil {
			log.Debug("scheduler record unreadable, using defaults", "err", err)
		}
		return 0, nil, nil
	}

	var record schedulerRecord
	if err := json.Unmarshal(value, &record); err != nil {
		log.Debug("scheduler record corrupt, using defaults", "err", err)
		return 0, nil, nil
	}
	if record.WorkSessionCount < 0 {
		record.WorkSessionCount = 0
	}
	return record.WorkSessionCount, record.BreakHistory, nil
}

// Save writes the scheduler record.
func (r *schedulerRepository) Save(ctx context.Context, count int, history []domain.BreakSchedule) error {
	value, err := json.Marshal(schedulerRecord{
		BreakHistory:     history,
		WorkSessionCount: count,
	})
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, schedulerKey, value)
}

// settingsRepository stores the user settings record as one JSON blob.
type settingsRepository struct {
	kv ports.KeyValueStore
}

var _ ports.SettingsRepository = (*settingsRepository)(nil)

// Load reads the settings record, degrading to defaults.
func (r *settingsRepository) Load(ctx context.Context) (*domain.UserSettings, error) {
	value, ok, err := r.kv.Get(ctx, settingsKey)
	if err != nil || !ok {
		if err != nil {
			log.Debug("settings record unreadable, using defaults", "err", err)
		}
		return domain.DefaultUserSettings(), nil
	}

	settings := domain.DefaultUserSettings()
	if err := json.Unmarshal(value, settings); err != nil {
		log.Debug("settings record corrupt, using defaults", "err", err)
		return domain.DefaultUserSettings(), nil
	}
	return settings, nil
}

// Save writes the settings record.
func (r *settingsRepository) Save(ctx context.Context, settings *domain.UserSettings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, settingsKey, value)
}
