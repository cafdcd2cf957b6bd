// breakout is a headless driver for the Breakout simulation core.
//
// Usage:
//
//	breakout run             - Run a fixed-timestep simulation
//	breakout scores          - Show the best recorded runs
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.breakout-sim/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Headless Breakout simulation core",
	Long: `breakout runs the Breakout simulation core without any rendering:
a fixed-timestep physics and collision loop over paddle, balls, walls and
bricks, with results persisted for later inspection.

Available commands:
  run      - Run a simulation (autopiloted or idle)
  scores   - View the best recorded runs

Examples:
  breakout run --ticks 7200 --seed 42
  breakout run --pilot follow --realtime
  breakout scores`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout-sim/runs.db", "Path to the runs database")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
}
