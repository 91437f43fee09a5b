package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var breaksLimit int

var breaksCmd = &cobra.Command{
	Use:   "breaks",
	Short: "Show upcoming scheduled breaks",
	Long:  `Display the smart scheduler's pending breaks, soonest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		breaks, err := app.scheduler.UpcomingBreaks(ctx, breaksLimit)
		if err != nil {
			return fmt.Errorf("failed to get upcoming breaks: %w", err)
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(breaks, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal breaks: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(breaks) == 0 {
			fmt.Printf("%s No breaks scheduled. Complete a focus session to generate one.\n", app.config.Theme.IconBreak)
			return nil
		}

		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
		valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

		fmt.Printf("\n%s Upcoming breaks:\n\n", app.config.Theme.IconBreak)
		for _, b := range breaks {
			fmt.Printf("  %s  %s (%d min, %s)\n",
				valueStyle.Render(b.StartTime.Format("15:04")),
				b.Title,
				b.Duration,
				string(b.Kind),
			)
			fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("     %s", b.Description)))
			fmt.Printf("  %s\n\n", dimStyle.Render(fmt.Sprintf("     id: %s", b.ID)))
		}
		return nil
	},
}

var breaksCompleteCmd = &cobra.Command{
	Use:   "complete <break-id>",
	Short: "Mark a scheduled break as taken",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := app.scheduler.CompleteBreak(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to complete break: %w", err)
		}
		fmt.Printf("%s Break marked as taken.\n", app.config.Theme.IconBreak)
		return nil
	},
}

func init() {
	breaksCmd.Flags().IntVarP(&breaksLimit, "limit", "n", 5, "Maximum number of breaks to show")
	breaksCmd.AddCommand(breaksCompleteCmd)
	rootCmd.AddCommand(breaksCmd)
}
