package domain

// TimerAnimation selects the countdown visualization style.
type TimerAnimation string

const (
	AnimationDefault TimerAnimation = "default"
	AnimationBattery TimerAnimation = "battery"
	AnimationRocket  TimerAnimation = "rocket"
	AnimationCoffee  TimerAnimation = "coffee"
)

// UserSettings is the persisted display/sound settings record.
type UserSettings struct {
	Theme           string         `json:"theme"`
	TimerPreset     string         `json:"timerPreset"`
	SoundEnabled    bool           `json:"soundEnabled"`
	Sound           string         `json:"sound"`
	Animation       TimerAnimation `json:"animation"`
	ShowMoodAvatars bool           `json:"showMoodAvatars"`
	VisualEffects   bool           `json:"visualEffects"`
}

// DefaultUserSettings returns the settings used when no record is stored.
func DefaultUserSettings() *UserSettings {
	return &UserSettings{
		Theme:           "dark",
		TimerPreset:     "focus",
		SoundEnabled:    true,
		Sound:           "chime",
		Animation:       AnimationDefault,
		ShowMoodAvatars: true,
		VisualEffects:   true,
	}
}

// SettingsPatch carries a partial settings update; nil fields are kept.
type SettingsPatch struct {
	Theme           *string         `json:"theme,omitempty"`
	TimerPreset     *string         `json:"timerPreset,omitempty"`
	SoundEnabled    *bool           `json:"soundEnabled,omitempty"`
	Sound           *string         `json:"sound,omitempty"`
	Animation       *TimerAnimation `json:"animation,omitempty"`
	ShowMoodAvatars *bool           `json:"showMoodAvatars,omitempty"`
	VisualEffects   *bool           `json:"visualEffects,omitempty"`
}

// Apply merges the patch into the settings.
func (s *UserSettings) Apply(patch SettingsPatch) {
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.TimerPreset != nil {
		s.TimerPreset = *patch.TimerPreset
	}
	if patch.SoundEnabled != nil {
		s.SoundEnabled = *patch.SoundEnabled
	}
	if patch.Sound != nil {
		s.Sound = *patch.Sound
	}
	if patch.Animation != nil {
		s.Animation = *patch.Animation
	}
	if patch.ShowMoodAvatars != nil {
		s.ShowMoodAvatars = *patch.ShowMoodAvatars
	}
	if patch.VisualEffects != nil {
		s.VisualEffects = *patch.VisualEffects
	}
}
