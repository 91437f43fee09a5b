package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/pausequest/pausequest-cli/internal/adapters/api"
	"github.com/pausequest/pausequest-cli/internal/adapters/tui"
	"github.com/pausequest/pausequest-cli/internal/domain"
	"github.com/pausequest/pausequest-cli/internal/services"
)

var (
	startMinutes int
	startPlain   bool
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a focus session",
	Long: `Start a countdown focus session. When the countdown reaches zero the
session is recorded: focus points and streak are awarded, achievements are
checked, and the smart scheduler proposes your next break.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := setupSignalHandler()

		minutes := startMinutes
		if minutes <= 0 {
			minutes = app.scheduler.Preferences().WorkSessionDuration
		}

		if startPlain {
			return runHeadless(ctx, minutes)
		}
		return runTimerUI(ctx, minutes)
	},
}

func init() {
	startCmd.Flags().IntVarP(&startMinutes, "minutes", "m", 0, "Session length in minutes (default: configured work session duration)")
	startCmd.Flags().BoolVar(&startPlain, "plain", false, "Run without the fullscreen timer view")
	rootCmd.AddCommand(startCmd)
}

// runTimerUI runs the Bubble Tea countdown and fans out completion.
func runTimerUI(ctx context.Context, minutes int) error {
	model := tui.NewModel(
		minutes*60,
		app.config.Theme,
		func() *tui.CompletionSummary {
			result, err := completeSession(ctx, minutes)
			if err != nil {
				return &tui.CompletionSummary{Err: err}
			}
			return &tui.CompletionSummary{
				Stats:     result.Stats,
				Unlocked:  result.Unlocked,
				NextBreak: result.NextBreak,
			}
		},
		func() []domain.BreakSchedule {
			breaks, _ := app.scheduler.UpcomingBreaks(ctx, 3)
			return breaks
		},
	)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("timer error: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		if !m.Completed() {
			fmt.Println("Session stopped early — nothing recorded.")
		} else if err := m.Err(); err != nil {
			return err
		}
	}
	return nil
}

// runHeadless runs the countdown without a UI.
func runHeadless(ctx context.Context, minutes int) error {
	fmt.Printf("%s Focus session started: %d minutes. Ctrl+C to abandon.\n",
		app.config.Theme.IconApp, minutes)

	timer := services.NewTimerService(minutes*60, nil)
	if err := timer.Run(ctx); err != nil {
		fmt.Println("Session stopped early — nothing recorded.")
		return nil
	}

	result, err := completeSession(ctx, minutes)
	if err != nil {
		return err
	}
	printSessionResult(result)
	return nil
}

// completeSession applies the completion fan-out and fires notifications.
func completeSession(ctx context.Context, minutes int) (*services.SessionResult, error) {
	result, err := app.sessions.CompleteFocusSession(ctx, minutes)
	if err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	_ = app.notifier.NotifySessionComplete(minutes)
	for _, a := range result.Unlocked {
		_ = app.notifier.NotifyAchievement(a)
	}
	_ = app.notifier.NotifyBreakDue(result.NextBreak)

	// Best effort: the local ledger is the source of truth, the remote
	// log is advisory.
	breakMinutes := 0
	if result.NextBreak != nil {
		breakMinutes = result.NextBreak.Duration
	}
	if _, err := app.apiClient.LogSession(ctx, api.SessionLog{
		FocusDuration: minutes,
		BreakDuration: breakMinutes,
	}); err != nil {
		log.Debug("remote session log failed", "err", err)
	}

	return result, nil
}

// printSessionResult prints the completion summary for headless runs.
func printSessionResult(result *services.SessionResult) {
	fmt.Println("✨ Session complete!")
	if result.Stats != nil {
		fmt.Printf("   %d focus points • %d day streak • %d sessions\n",
			result.Stats.FocusPoints, result.Stats.CurrentStreak, result.Stats.TotalSessions)
	}
	for _, a := range result.Unlocked {
		fmt.Printf("   %s Achievement unlocked: %s — %s\n", a.Icon, a.Title, a.Description)
	}
	if result.NextBreak != nil {
		fmt.Printf("   %s Next: %s at %s (%d min)\n",
			app.config.Theme.IconBreak, result.NextBreak.Title,
			result.NextBreak.StartTime.Format("15:04"), result.NextBreak.Duration)
	}
}
