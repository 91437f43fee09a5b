package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a dashboard of focus statistics",
	Long:  `Display a terminal dashboard with session counts, streaks, focus points, and achievement progress.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		stats, err := app.ledger.Stats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal stats: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println()
		renderDashboard(stats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func renderDashboard(stats *domain.UserStats) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	barColor := lipgloss.NewStyle().Foreground(lipgloss.Color("#7C6FE0"))

	// Header
	fmt.Printf("  %s\n", titleStyle.Render("Focus Stats"))
	fmt.Printf("  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	// Summary line
	fmt.Printf("  Total: %s sessions, %s focused\n\n",
		valueStyle.Render(fmt.Sprintf("%d", stats.TotalSessions)),
		valueStyle.Render(formatMinutes(stats.TotalFocusTime)),
	)

	if stats.TotalSessions == 0 {
		fmt.Printf("  %s\n\n", dimStyle.Render("No completed sessions yet. Run 'pausequest start' to begin."))
		return
	}

	fmt.Printf("  %s  %s\n",
		dimStyle.Render("Current streak:"),
		valueStyle.Render(fmt.Sprintf("%d day(s)", stats.CurrentStreak)),
	)
	fmt.Printf("  %s  %s\n",
		dimStyle.Render("Longest streak:"),
		valueStyle.Render(fmt.Sprintf("%d day(s)", stats.LongestStreak)),
	)
	fmt.Printf("  %s  %s\n\n",
		dimStyle.Render("Focus points:  "),
		valueStyle.Render(fmt.Sprintf("%d", stats.FocusPoints)),
	)

	// Achievement progress bar
	unlocked := len(stats.UnlockedAchievements())
	total := len(stats.Achievements)
	fmt.Printf("  %s\n", dimStyle.Render("Achievements"))

	maxBarWidth := 30
	barWidth := 0
	if total > 0 {
		barWidth = int(math.Round(float64(unlocked) / float64(total) * float64(maxBarWidth)))
	}
	if barWidth < 1 && unlocked > 0 {
		barWidth = 1
	}
	bar := buildBar(barWidth)
	rest := dimStyle.Render(strings.Repeat("░", maxBarWidth-barWidth))
	fmt.Printf("  %s%s %d/%d\n\n", barColor.Render(bar), rest, unlocked, total)

	// Recent unlocks, newest first
	recent := stats.UnlockedAchievements()
	if len(recent) > 0 {
		fmt.Printf("  %s\n", dimStyle.Render("Unlocked"))
		for i := len(recent) - 1; i >= 0 && i >= len(recent)-3; i-- {
			a := recent[i]
			fmt.Printf("  %s %s  %s\n",
				a.Icon,
				valueStyle.Render(a.Title),
				dimStyle.Render(a.Description),
			)
		}
		fmt.Println()
	}
}

// buildBar creates a horizontal bar using block characters.
func buildBar(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("█", width)
}
