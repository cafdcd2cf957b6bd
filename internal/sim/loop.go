package sim

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

// InputSource supplies one input frame per simulation tick. Implementations
// live outside the core (keyboard adapters, autopilots, scripted tests).
type InputSource interface {
	Frame(tick uint64) core.InputFrame
}

// RunStats summarizes a finished run.
type RunStats struct {
	Ticks           uint64
	Score           uint64
	BricksDestroyed int
	WallHits        int
	PaddleHits      int
	Elapsed         time.Duration
}

// Runner drives a world at its fixed tick rate. In realtime mode it paces
// ticks with an accumulator so the logical rate stays constant no matter how
// the wall clock jitters; otherwise it steps as fast as possible. Either
// way, the per-tick behavior is identical for a given seed and input
// sequence.
type Runner struct {
	world *World
	log   *log.Logger
	// Realtime paces the simulation to wall-clock tick rate when set.
	Realtime bool
}

// NewRunner creates a runner for the given world. logger may not be nil;
// pass log.New(io.Discard) to silence it.
func NewRunner(w *World, logger *log.Logger) *Runner {
	return &Runner{world: w, log: logger}
}

// Run steps the world until maxTicks is reached (0 means no tick limit),
// the brick field is cleared, the input source raises ActionQuit, or ctx is
// cancelled. It returns the stats of the completed portion of the run and
// the error that stopped it, if any.
func (r *Runner) Run(ctx context.Context, src InputSource, maxTicks uint64) (RunStats, error) {
	var stats RunStats
	start := time.Now()
	defer func() { stats.Elapsed = time.Since(start) }()

	dt := r.world.Config().Sim.Dt()
	tickPeriod := time.Duration(float64(time.Second) * dt)

	last := time.Now()
	var acc float64

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if maxTicks > 0 && stats.Ticks >= maxTicks {
			return stats, nil
		}

		if r.Realtime {
			now := time.Now()
			acc += now.Sub(last).Seconds()
			last = now
			// Cap the backlog so a long stall cannot trigger a catch-up
			// spiral.
			if acc > 0.25 {
				acc = 0.25
			}
			if acc < dt {
				time.Sleep(tickPeriod / 4)
				continue
			}
			acc -= dt
		}

		frame := src.Frame(r.world.Tick())
		if frame.Has(core.ActionQuit) {
			r.log.Debug("input source requested stop", "tick", r.world.Tick())
			return stats, nil
		}

		res, err := r.world.Step(frame)
		if err != nil {
			return stats, err
		}
		stats.Ticks++
		stats.Score = res.Score

		for _, ev := range res.Events {
			switch ev.Kind {
			case EventWallHit:
				stats.WallHits++
			case EventPaddleHit:
				stats.PaddleHits++
			case EventBrickHit:
				if ev.Destroyed {
					stats.BricksDestroyed++
					r.log.Debug("brick destroyed",
						"tick", res.Tick,
						"score", res.Score,
						"side", ev.Side.String(),
						"remaining", r.world.BricksRemaining(),
					)
				}
			}
		}

		if r.world.BricksRemaining() == 0 {
			r.log.Info("brick field cleared",
				"tick", res.Tick,
				"score", res.Score,
			)
			return stats, nil
		}
	}
}
