package services

import (
	"context"
	"fmt"

	"github.com/pausequest/pausequest-cli/internal/domain"
	"github.com/pausequest/pausequest-cli/internal/ports"
)

// SettingsService owns the persisted user display/sound settings record.
type SettingsService struct {
	storage ports.Storage
}

// NewSettingsService creates a new settings service.
func NewSettingsService(storage ports.Storage) *SettingsService {
	return &SettingsService{storage: storage}
}

// Settings returns the current settings record.
func (s *SettingsService) Settings(ctx context.Context) (*domain.UserSettings, error) {
	return s.storage.Settings().Load(ctx)
}

// Update merges the patch into the settings record and persists it.
func (s *SettingsService) Update(ctx context.Context, patch domain.SettingsPatch) (*domain.UserSettings, error) {
	settings, err := s.storage.Settings().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	settings.Apply(patch)
	if err := s.storage.Settings().Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
