package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/pausequest/pausequest-cli/internal/insights"
)

var insightsLimit int

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Analyze mood and sentiment patterns from logged sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		history, err := app.apiClient.SessionHistory(ctx, insightsLimit)
		if err != nil {
			return fmt.Errorf("failed to fetch session history: %w", err)
		}

		patterns := insights.AnalyzePatterns(history.Sessions)
		if patterns == nil {
			fmt.Println("Not enough logged sessions to analyze yet.")
			return nil
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(map[string]interface{}{
				"most_common_mood":  patterns.MostCommonMood,
				"average_sentiment": patterns.AverageSentiment,
				"suggestion":        patterns.Suggestion,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal insights: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0"))
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
		valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

		fmt.Println()
		fmt.Printf("  %s\n\n", titleStyle.Render("Insights"))
		if patterns.MostCommonMood != "" {
			fmt.Printf("  %s  %s\n",
				dimStyle.Render("Most common mood:"),
				valueStyle.Render(patterns.MostCommonMood),
			)
		}
		fmt.Printf("  %s  %s\n",
			dimStyle.Render("Average sentiment:"),
			valueStyle.Render(fmt.Sprintf("%.2f", patterns.AverageSentiment)),
		)
		fmt.Printf("\n  %s\n", patterns.Suggestion)
		return nil
	},
}

func init() {
	insightsCmd.Flags().IntVarP(&insightsLimit, "limit", "n", 50, "Number of recent sessions to analyze")
	rootCmd.AddCommand(insightsCmd)
}
