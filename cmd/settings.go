package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

var (
	settingsTheme     string
	settingsPreset    string
	settingsSound     string
	settingsSoundOn   bool
	settingsAnimation string
	settingsAvatars   bool
	settingsEffects   bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and edit display and sound settings",
	Long:  `Display the persisted user settings record, or change individual fields with flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		patch := domain.SettingsPatch{}
		changed := false

		if cmd.Flags().Changed("theme") {
			patch.Theme = &settingsTheme
			changed = true
		}
		if cmd.Flags().Changed("preset") {
			patch.TimerPreset = &settingsPreset
			changed = true
		}
		if cmd.Flags().Changed("sound") {
			patch.Sound = &settingsSound
			changed = true
		}
		if cmd.Flags().Changed("sound-enabled") {
			patch.SoundEnabled = &settingsSoundOn
			changed = true
		}
		if cmd.Flags().Changed("animation") {
			anim := domain.TimerAnimation(settingsAnimation)
			switch anim {
			case domain.AnimationDefault, domain.AnimationBattery, domain.AnimationRocket, domain.AnimationCoffee:
			default:
				return fmt.Errorf("invalid animation %q: expected default, battery, rocket, or coffee", settingsAnimation)
			}
			patch.Animation = &anim
			changed = true
		}
		if cmd.Flags().Changed("mood-avatars") {
			patch.ShowMoodAvatars = &settingsAvatars
			changed = true
		}
		if cmd.Flags().Changed("visual-effects") {
			patch.VisualEffects = &settingsEffects
			changed = true
		}

		var settings *domain.UserSettings
		var err error
		if changed {
			settings, err = app.settings.Update(ctx, patch)
			if err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}
			fmt.Println("Settings saved.")
			fmt.Println()
		} else {
			settings, err = app.settings.Settings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal settings: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println("  Settings:")
		fmt.Println()
		fmt.Printf("    Theme:           %s\n", settings.Theme)
		fmt.Printf("    Timer preset:    %s\n", settings.TimerPreset)
		fmt.Printf("    Sound:           %s (enabled: %v)\n", settings.Sound, settings.SoundEnabled)
		fmt.Printf("    Animation:       %s\n", settings.Animation)
		fmt.Printf("    Mood avatars:    %v\n", settings.ShowMoodAvatars)
		fmt.Printf("    Visual effects:  %v\n", settings.VisualEffects)
		return nil
	},
}

func init() {
	settingsCmd.Flags().StringVar(&settingsTheme, "theme", "", "Color theme name")
	settingsCmd.Flags().StringVar(&settingsPreset, "preset", "", "Default timer preset")
	settingsCmd.Flags().StringVar(&settingsSound, "sound", "", "Completion sound name")
	settingsCmd.Flags().BoolVar(&settingsSoundOn, "sound-enabled", true, "Play a sound when a timer completes")
	settingsCmd.Flags().StringVar(&settingsAnimation, "animation", "", "Countdown animation: default, battery, rocket, or coffee")
	settingsCmd.Flags().BoolVar(&settingsAvatars, "mood-avatars", true, "Show mood avatars")
	settingsCmd.Flags().BoolVar(&settingsEffects, "visual-effects", true, "Enable visual effects")
	rootCmd.AddCommand(settingsCmd)
}
