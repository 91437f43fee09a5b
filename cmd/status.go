package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current stats and the next proposed break",
	Long:  `Display the gamification ledger summary and the smart scheduler's upcoming breaks.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	stats, err := app.ledger.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	breaks, err := app.scheduler.UpcomingBreaks(ctx, 3)
	if err != nil {
		return fmt.Errorf("failed to load upcoming breaks: %w", err)
	}

	if jsonOutput {
		return outputStatusJSON(stats, breaks)
	}

	fmt.Printf("%s PauseQuest\n\n", app.config.Theme.IconApp)
	fmt.Printf("%s Stats:\n", app.config.Theme.IconStats)
	fmt.Printf("   Sessions: %d\n", stats.TotalSessions)
	fmt.Printf("   Streak: %d day(s) (best %d)\n", stats.CurrentStreak, stats.LongestStreak)
	fmt.Printf("   Focus time: %s\n", formatMinutes(stats.TotalFocusTime))
	fmt.Printf("   Focus points: %d\n", stats.FocusPoints)
	fmt.Printf("   Achievements: %d/%d\n", len(stats.UnlockedAchievements()), len(stats.Achievements))

	if len(breaks) == 0 {
		fmt.Printf("\n%s No breaks scheduled. Start a session to generate one.\n", app.config.Theme.IconBreak)
		return nil
	}

	fmt.Printf("\n%s Upcoming breaks:\n", app.config.Theme.IconBreak)
	for _, b := range breaks {
		fmt.Printf("   %s at %s (%d min)\n", b.Title, b.StartTime.Format("15:04"), b.Duration)
	}
	return nil
}

// outputStatusJSON outputs the status in JSON format
func outputStatusJSON(stats *domain.UserStats, breaks []domain.BreakSchedule) error {
	result := map[string]interface{}{
		"stats": map[string]interface{}{
			"total_sessions":   stats.TotalSessions,
			"current_streak":   stats.CurrentStreak,
			"longest_streak":   stats.LongestStreak,
			"total_focus_time": stats.TotalFocusTime,
			"focus_points":     stats.FocusPoints,
		},
		"upcoming_breaks": breaks,
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}

// formatMinutes renders a minute count as "Xh Ym" or "Ym".
func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
