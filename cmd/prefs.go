package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/pausequest/pausequest-cli/internal/config"
)

var (
	prefsWork     int
	prefsShort    int
	prefsLong     int
	prefsInterval int
	prefsSmart    bool
	prefsStart    string
	prefsEnd      string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "View and edit break scheduling preferences",
	Long: `Display the smart scheduler preferences, or change them with flags.

Preferences are stored in the config file and take effect on the next
scheduled break.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.config
		changed := false

		if cmd.Flags().Changed("work") {
			if prefsWork <= 0 {
				return fmt.Errorf("work session duration must be positive")
			}
			cfg.Scheduler.WorkSessionDuration = config.Duration(time.Duration(prefsWork) * time.Minute)
			changed = true
		}
		if cmd.Flags().Changed("short") {
			if prefsShort <= 0 {
				return fmt.Errorf("short break duration must be positive")
			}
			cfg.Scheduler.ShortBreak = config.Duration(time.Duration(prefsShort) * time.Minute)
			changed = true
		}
		if cmd.Flags().Changed("long") {
			if prefsLong <= 0 {
				return fmt.Errorf("long break duration must be positive")
			}
			cfg.Scheduler.LongBreak = config.Duration(time.Duration(prefsLong) * time.Minute)
			changed = true
		}
		if cmd.Flags().Changed("interval") {
			if prefsInterval <= 0 {
				return fmt.Errorf("long break interval must be positive")
			}
			cfg.Scheduler.LongBreakInterval = prefsInterval
			changed = true
		}
		if cmd.Flags().Changed("smart") {
			cfg.Scheduler.SmartScheduling = prefsSmart
			changed = true
		}
		if cmd.Flags().Changed("workday-start") {
			if _, err := time.Parse("15:04", prefsStart); err != nil {
				return fmt.Errorf("invalid workday start %q: expected HH:MM", prefsStart)
			}
			cfg.Scheduler.WorkdayStart = prefsStart
			changed = true
		}
		if cmd.Flags().Changed("workday-end") {
			if _, err := time.Parse("15:04", prefsEnd); err != nil {
				return fmt.Errorf("invalid workday end %q: expected HH:MM", prefsEnd)
			}
			cfg.Scheduler.WorkdayEnd = prefsEnd
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Println("Preferences saved.")
			fmt.Println()
		}

		smart := "off"
		if cfg.Scheduler.SmartScheduling {
			smart = "on"
		}
		fmt.Println("  Break scheduling preferences:")
		fmt.Println()
		fmt.Printf("    Work session:           %s\n", time.Duration(cfg.Scheduler.WorkSessionDuration))
		fmt.Printf("    Short break:            %s\n", time.Duration(cfg.Scheduler.ShortBreak))
		fmt.Printf("    Long break:             %s\n", time.Duration(cfg.Scheduler.LongBreak))
		fmt.Printf("    Sessions before long:   %d\n", cfg.Scheduler.LongBreakInterval)
		fmt.Printf("    Smart scheduling:       %s\n", smart)
		fmt.Printf("    Workday:                %s-%s\n", cfg.Scheduler.WorkdayStart, cfg.Scheduler.WorkdayEnd)
		return nil
	},
}

func init() {
	prefsCmd.Flags().IntVar(&prefsWork, "work", 0, "Work session duration in minutes")
	prefsCmd.Flags().IntVar(&prefsShort, "short", 0, "Short break duration in minutes")
	prefsCmd.Flags().IntVar(&prefsLong, "long", 0, "Long break duration in minutes")
	prefsCmd.Flags().IntVar(&prefsInterval, "interval", 0, "Work sessions before a long break")
	prefsCmd.Flags().BoolVar(&prefsSmart, "smart", true, "Enable smart break scheduling")
	prefsCmd.Flags().StringVar(&prefsStart, "workday-start", "", "Workday start time (HH:MM)")
	prefsCmd.Flags().StringVar(&prefsEnd, "workday-end", "", "Workday end time (HH:MM)")
	rootCmd.AddCommand(prefsCmd)
}
