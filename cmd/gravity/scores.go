package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-switch/internal/platform/tui"
	"github.com/vovakirdan/gravity-switch/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best finished runs.

Examples:
  gravity scores
  gravity scores --limit 25
  gravity scores -i          # Browse in a table
  gravity scores --clear     # Delete all runs (the best score is kept)`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fatal("clearing runs: %v", err)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fatal("running scoreboard: %v", err)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fatal("retrieving runs: %v", err)
	}

	fmt.Println("High Scores - Gravity Switch")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gravity play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-9s  %-16s  %s\n", "Rank", "Score", "Distance", "Date", "Run")
	fmt.Printf("  %-4s  %-6s  %-9s  %-16s  %s\n", "----", "-----", "--------", "----", "---")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-9.0f  %-16s  %s\n",
			i+1, r.Score, r.Distance, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.RunID)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Printf("Runs: %d  Average: %.1f  Distance travelled: %.0f\n",
			stats.Runs, stats.AvgScore, stats.TotalDistance)
	}
}
