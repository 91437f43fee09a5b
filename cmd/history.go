package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show logged sessions from the remote service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		history, err := app.apiClient.SessionHistory(ctx, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to fetch session history: %w", err)
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(history, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal history: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(history.Sessions) == 0 {
			fmt.Println("No logged sessions yet.")
			return nil
		}

		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
		valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

		fmt.Println()
		for _, s := range history.Sessions {
			mood := s.MoodEmoji
			if mood == "" {
				mood = "·"
			}
			fmt.Printf("  %s  focus %s, break %s  %s\n",
				mood,
				valueStyle.Render(formatMinutes(s.FocusDuration)),
				formatMinutes(s.BreakDuration),
				dimStyle.Render(s.CreatedAt),
			)
			if s.Notes != "" {
				fmt.Printf("     %s\n", dimStyle.Render(s.Notes))
			}
		}
		fmt.Printf("\n  Total: %s focus, %s breaks\n",
			valueStyle.Render(formatMinutes(history.Totals.FocusDuration)),
			valueStyle.Render(formatMinutes(history.Totals.BreakDuration)),
		)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of sessions to show")
	rootCmd.AddCommand(historyCmd)
}
