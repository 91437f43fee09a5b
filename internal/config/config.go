// Package config provides configuration management for PauseQuest.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

// Config holds all configuration for the PauseQuest application.
type Config struct {
	Scheduler     SchedulerConfig    `mapstructure:"scheduler"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	API           APIConfig          `mapstructure:"api"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// SchedulerConfig holds the smart break scheduler settings.
type SchedulerConfig struct {
	WorkSessionDuration Duration `mapstructure:"work_session_duration"`
	ShortBreak          Duration `mapstructure:"short_break"`
	LongBreak           Duration `mapstructure:"long_break"`
	LongBreakInterval   int      `mapstructure:"long_break_interval"`
	SmartScheduling     bool     `mapstructure:"smart_scheduling"`
	CalendarIntegration bool     `mapstructure:"calendar_integration"`
	WorkdayStart        string   `mapstructure:"workday_start"`
	WorkdayEnd          string   `mapstructure:"workday_end"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// APIConfig holds the remote session-log service settings.
type APIConfig struct {
	BaseURL string   `mapstructure:"base_url"`
	Timeout Duration `mapstructure:"timeout"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorFocus  string `mapstructure:"color_focus"`
	ColorBreak  string `mapstructure:"color_break"`
	ColorPaused string `mapstructure:"color_paused"`
	ColorTitle  string `mapstructure:"color_title"`
	ColorHelp   string `mapstructure:"color_help"`
	IconApp     string `mapstructure:"icon_app"`
	IconStats   string `mapstructure:"icon_stats"`
	IconBreak   string `mapstructure:"icon_break"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorFocus:  "#7C6FE0",
		ColorBreak:  "#4ECDC4",
		ColorPaused: "#6B7280",
		ColorTitle:  "#6B7280",
		ColorHelp:   "#95A5A6",
		IconApp:     "🛸",
		IconStats:   "📊",
		IconBreak:   "☕",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			WorkSessionDuration: Duration(50 * time.Minute),
			ShortBreak:          Duration(5 * time.Minute),
			LongBreak:           Duration(15 * time.Minute),
			LongBreakInterval:   4,
			SmartScheduling:     true,
			WorkdayStart:        "09:00",
			WorkdayEnd:          "17:00",
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		API: APIConfig{
			BaseURL: "http://127.0.0.1:5000",
			Timeout: Duration(10 * time.Second),
		},
		Storage: StorageConfig{
			DataDir: "~/.pausequest",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.pausequest" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".pausequest")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("scheduler.work_session_duration", cfg.Scheduler.WorkSessionDuration.String())
	viper.Set("scheduler.short_break", cfg.Scheduler.ShortBreak.String())
	viper.Set("scheduler.long_break", cfg.Scheduler.LongBreak.String())
	viper.Set("scheduler.long_break_interval", cfg.Scheduler.LongBreakInterval)
	viper.Set("scheduler.smart_scheduling", cfg.Scheduler.SmartScheduling)
	viper.Set("scheduler.calendar_integration", cfg.Scheduler.CalendarIntegration)
	viper.Set("scheduler.workday_start", cfg.Scheduler.WorkdayStart)
	viper.Set("scheduler.workday_end", cfg.Scheduler.WorkdayEnd)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("api.base_url", cfg.API.BaseURL)
	viper.Set("api.timeout", cfg.API.Timeout.String())
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_focus", cfg.Theme.ColorFocus)
	viper.Set("theme.color_break", cfg.Theme.ColorBreak)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)
	viper.Set("theme.icon_stats", cfg.Theme.IconStats)
	viper.Set("theme.icon_break", cfg.Theme.IconBreak)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pausequest", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "pausequest.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("scheduler.work_session_duration", "50m")
	viper.SetDefault("scheduler.short_break", "5m")
	viper.SetDefault("scheduler.long_break", "15m")
	viper.SetDefault("scheduler.long_break_interval", 4)
	viper.SetDefault("scheduler.smart_scheduling", true)
	viper.SetDefault("scheduler.calendar_integration", false)
	viper.SetDefault("scheduler.workday_start", "09:00")
	viper.SetDefault("scheduler.workday_end", "17:00")
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("api.base_url", "http://127.0.0.1:5000")
	viper.SetDefault("api.timeout", "10s")
	viper.SetDefault("storage.data_dir", "~/.pausequest")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_focus", defaults.ColorFocus)
	viper.SetDefault("theme.color_break", defaults.ColorBreak)
	viper.SetDefault("theme.color_paused", defaults.ColorPaused)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.icon_app", defaults.IconApp)
	viper.SetDefault("theme.icon_stats", defaults.IconStats)
	viper.SetDefault("theme.icon_break", defaults.IconBreak)
}

// ToPreferences converts the scheduler config to domain preferences.
func (c *Config) ToPreferences() domain.Preferences {
	prefs := domain.DefaultPreferences()
	if m := int(time.Duration(c.Scheduler.WorkSessionDuration).Minutes()); m > 0 {
		prefs.WorkSessionDuration = m
	}
	if m := int(time.Duration(c.Scheduler.ShortBreak).Minutes()); m > 0 {
		prefs.ShortBreakDuration = m
	}
	if m := int(time.Duration(c.Scheduler.LongBreak).Minutes()); m > 0 {
		prefs.LongBreakDuration = m
	}
	if c.Scheduler.LongBreakInterval > 0 {
		prefs.LongBreakInterval = c.Scheduler.LongBreakInterval
	}
	prefs.EnableSmartScheduling = c.Scheduler.SmartScheduling
	prefs.EnableCalendarIntegration = c.Scheduler.CalendarIntegration
	if c.Scheduler.WorkdayStart != "" {
		prefs.WorkingHours.Start = c.Scheduler.WorkdayStart
	}
	if c.Scheduler.WorkdayEnd != "" {
		prefs.WorkingHours.End = c.Scheduler.WorkdayEnd
	}
	return prefs
}
