package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the gamification ledger (stats and achievements)",
	Long: `Permanently resets sessions, streaks, focus points, and achievement unlocks
back to a fresh ledger. This cannot be undone. Use --force to skip the
confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if !resetForce {
			fmt.Println("This will permanently reset all stats and achievements.")
			fmt.Print("Are you sure? Type 'yes' to confirm: ")
			reader := bufio.NewReader(os.Stdin)
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if _, err := app.ledger.ResetStats(ctx); err != nil {
			return fmt.Errorf("failed to reset stats: %w", err)
		}

		fmt.Println("Stats reset. Fresh start.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
