package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-sim/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top recorded runs, ordered by score.

Examples:
  breakout scores
  breakout scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'breakout run' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-12s  %s\n", "Rank", "Score", "Bricks", "Ticks", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-12s  %s\n", "----", "-----", "------", "-----", "----", "----")

	for i, rec := range runs {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-8d  %-12d  %s\n", i+1, rec.Score, rec.BricksDestroyed, rec.Ticks, rec.Seed, dateStr)
	}
}
