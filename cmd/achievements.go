package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/pausequest/pausequest-cli/internal/domain"
)

var achievementsFind string

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and their unlock status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		stats, err := app.ledger.Stats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		achievements := stats.Achievements
		if achievementsFind != "" {
			achievements = findAchievements(achievementsFind, achievements)
			if len(achievements) == 0 {
				fmt.Printf("No achievements matching %q.\n", achievementsFind)
				return nil
			}
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(achievements, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal achievements: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
		unlockedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

		fmt.Println()
		for _, a := range achievements {
			if a.Unlocked {
				when := ""
				if a.UnlockedAt != nil {
					when = dimStyle.Render(a.UnlockedAt.Format("Jan 2, 2006"))
				}
				fmt.Printf("  %s %s  %s  %s\n", a.Icon, unlockedStyle.Render(a.Title), dimStyle.Render(a.Description), when)
			} else {
				fmt.Printf("  🔒 %s\n", dimStyle.Render(fmt.Sprintf("%s  %s", a.Title, a.Description)))
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	achievementsCmd.Flags().StringVarP(&achievementsFind, "find", "f", "", "Fuzzy search achievements by title")
	rootCmd.AddCommand(achievementsCmd)
}

// findAchievements does a fuzzy search over achievement titles, returning
// matches in relevance order.
func findAchievements(query string, achievements []domain.Achievement) []domain.Achievement {
	titles := make([]string, len(achievements))
	for i, a := range achievements {
		titles[i] = a.Title
	}

	matches := fuzzy.Find(query, titles)
	result := make([]domain.Achievement, 0, len(matches))
	for _, m := range matches {
		result = append(result, achievements[m.Index])
	}
	return result
}
