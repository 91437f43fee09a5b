package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/pausequest/pausequest-cli/internal/adapters/api"
	"github.com/pausequest/pausequest-cli/internal/domain"
	"github.com/pausequest/pausequest-cli/internal/insights"
)

var (
	logBreakType string
	logBreakMood string
)

var logBreakCmd = &cobra.Command{
	Use:   "log-break",
	Short: "Log a taken break with the remote service",
	Long: `Send a break log to the remote service and print the sentiment score it
returns. Moods: energized, focused, tired, stressed, balanced, distracted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if logBreakMood != "" && !validMood(logBreakMood) {
			return fmt.Errorf("unknown mood %q", logBreakMood)
		}

		result, err := app.apiClient.LogBreak(ctx, api.BreakLog{
			BreakType: logBreakType,
			Mood:      logBreakMood,
		})
		if err != nil {
			return fmt.Errorf("failed to log break: %w", err)
		}

		stats, unlocked, err := app.ledger.RecordAction(ctx, "break")
		if err != nil {
			return fmt.Errorf("failed to record break: %w", err)
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal result: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("%s %s\n", app.config.Theme.IconBreak, result.Message)
		fmt.Printf("Sentiment score: %.2f\n", result.SentimentScore)
		fmt.Printf("+%d focus points (%d total)\n", domain.PointsPerAction, stats.FocusPoints)
		for _, a := range unlocked {
			fmt.Printf("%s Achievement unlocked: %s\n", a.Icon, a.Title)
		}
		if logBreakMood != "" {
			s := insights.BreakSuggestion(logBreakMood)
			fmt.Printf("Next time: %s\n", s.Description)
		}
		return nil
	},
}

func init() {
	logBreakCmd.Flags().StringVarP(&logBreakType, "type", "t", "short", "Break type (short, long)")
	logBreakCmd.Flags().StringVarP(&logBreakMood, "mood", "m", "", "How you feel right now")
	rootCmd.AddCommand(logBreakCmd)
}

func validMood(mood string) bool {
	for _, m := range insights.MoodOptions {
		if m.Mood == mood {
			return true
		}
	}
	return false
}
