package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-sim/internal/config"
	"github.com/vovakirdan/breakout-sim/internal/pilot"
	"github.com/vovakirdan/breakout-sim/internal/sim"
	"github.com/vovakirdan/breakout-sim/internal/storage"
)

var (
	flagTicks      uint64
	flagDuration   time.Duration
	flagTickRate   int
	flagSeed       int64
	flagBalls      int
	flagPilot      string
	flagRealtime   bool
	flagConfig     string
	flagDifficulty string
	flagNoSave     bool
	flagVerbose    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless simulation",
	Long: `Run the simulation for a fixed number of ticks (or a wall-clock
duration in realtime mode) and report the resulting score.

Pilots:
  follow - paddle tracks the lowest ball (default)
  idle   - paddle never moves

Difficulty presets: easy, normal, hard.

Examples:
  breakout run --ticks 7200 --seed 42
  breakout run --duration 30s --realtime
  breakout run --balls 3 --pilot idle
  breakout run --config ./my-arena.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().Uint64Var(&flagTicks, "ticks", 3600, "Number of ticks to simulate (0 = until the field is cleared)")
	runCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Simulated duration; overrides --ticks when set")
	runCmd.Flags().IntVar(&flagTickRate, "fps", 0, "Override the configured tick rate")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = derive from current time)")
	runCmd.Flags().IntVar(&flagBalls, "balls", 0, "Override the configured ball count")
	runCmd.Flags().StringVar(&flagPilot, "pilot", "follow", "Input source driving the paddle")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks to wall-clock rate instead of stepping as fast as possible")
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	runCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the database")
	runCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log per-collision detail")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			logger.Fatal("invalid difficulty", "err", err)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagTickRate > 0 {
		cfg.Sim.TickRate = flagTickRate
	}
	if flagBalls > 0 {
		cfg.Ball.Count = flagBalls
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := sim.New(cfg, seed)
	if err != nil {
		logger.Fatal("cannot set up world", "err", err)
	}

	src, err := pilot.New(flagPilot, world)
	if err != nil {
		logger.Fatal("cannot create pilot", "err", err)
	}

	maxTicks := flagTicks
	if flagDuration > 0 {
		maxTicks = uint64(flagDuration.Seconds() * float64(cfg.Sim.TickRate))
	}

	logger.Info("starting run",
		"seed", seed,
		"ticks", maxTicks,
		"tick_rate", cfg.Sim.TickRate,
		"balls", cfg.Ball.Count,
		"pilot", flagPilot,
		"realtime", flagRealtime,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := sim.NewRunner(world, logger)
	runner.Realtime = flagRealtime

	stats, err := runner.Run(ctx, src, maxTicks)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("simulation aborted", "err", err)
	}

	logger.Info("run finished",
		"ticks", stats.Ticks,
		"score", stats.Score,
		"bricks_destroyed", stats.BricksDestroyed,
		"wall_hits", stats.WallHits,
		"paddle_hits", stats.PaddleHits,
		"elapsed", stats.Elapsed,
	)

	if flagNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open runs database", "err", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunRecord{
		Seed:            seed,
		Ticks:           int64(stats.Ticks),
		Score:           int64(stats.Score),
		BricksDestroyed: int64(stats.BricksDestroyed),
		DurationMS:      stats.Elapsed.Milliseconds(),
	})
	if err != nil {
		logger.Error("cannot save run", "err", err)
		return
	}

	best, err := store.BestScore()
	if err != nil {
		logger.Error("cannot read best score", "err", err)
		return
	}
	logger.Info("run recorded", "id", id, "best_score", best)
}
