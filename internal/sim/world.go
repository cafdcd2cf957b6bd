package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/breakout-sim/internal/config"
	"github.com/vovakirdan/breakout-sim/internal/core"
)

// World owns the entity store, the scoreboard and the RNG, and runs the
// ordered tick pipeline: input-apply/paddle controller, motion, collision
// resolution. All mutation is single-writer and strictly ordered; no locking
// is needed because a World is owned by exactly one runner.
type World struct {
	cfg   config.Config
	store *Store
	board *Scoreboard
	rng   *SimpleRNG
	tick  uint64
	seed  int64
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Tick   uint64
	Score  uint64
	Events []Event
}

// New creates a world and populates it: four walls, one paddle, the
// configured number of balls with seed-randomized directions, and the brick
// grid. Walls, paddle and scoreboard persist for the process lifetime;
// bricks are destroyed individually as their health reaches zero.
func New(cfg config.Config, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		cfg:   cfg,
		store: NewStore(),
		board: &Scoreboard{},
		rng:   NewSimpleRNG(seed),
		seed:  seed,
	}

	w.spawnWalls()
	w.spawnPaddle()
	w.spawnBalls()
	w.spawnBricks()

	// Startup invariant: exactly one paddle.
	if _, err := w.store.Paddle(); err != nil {
		return nil, fmt.Errorf("sim: world setup: %w", err)
	}
	return w, nil
}

func (w *World) spawnWalls() {
	a := w.cfg.Arena
	centerX := (a.LeftWall + a.RightWall) / 2
	centerY := (a.BottomWall + a.TopWall) / 2

	vertical := core.Vec2{X: a.WallThickness, Y: a.Height() + a.WallThickness}
	horizontal := core.Vec2{X: a.Width() + a.WallThickness, Y: a.WallThickness}

	walls := []struct {
		pos  core.Vec2
		size core.Vec2
	}{
		{core.Vec2{X: a.LeftWall, Y: centerY}, vertical},
		{core.Vec2{X: a.RightWall, Y: centerY}, vertical},
		{core.Vec2{X: centerX, Y: a.BottomWall}, horizontal},
		{core.Vec2{X: centerX, Y: a.TopWall}, horizontal},
	}
	for _, wall := range walls {
		w.store.Create(Record{
			Kind:     KindWall,
			Pos:      wall.pos,
			Size:     wall.size,
			Collider: true,
			Color:    core.ColorWallGray,
		})
	}
}

func (w *World) spawnPaddle() {
	a := w.cfg.Arena
	p := w.cfg.Paddle
	w.store.Create(Record{
		Kind:     KindPaddle,
		Pos:      core.Vec2{X: (a.LeftWall + a.RightWall) / 2, Y: a.BottomWall + p.StartOffsetY},
		Size:     core.Vec2{X: p.Width, Y: p.Height},
		Collider: true,
		Color:    core.ColorPaddleBlue,
	})
}

func (w *World) spawnBalls() {
	b := w.cfg.Ball
	for i := 0; i < b.Count; i++ {
		// Launch direction is uniform over the full circle.
		angle := 2 * math.Pi * w.rng.Float64()
		dir := core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		w.store.Create(Record{
			Kind:      KindBall,
			Pos:       core.Vec2{X: b.StartX, Y: b.StartY},
			Size:      core.Vec2{X: b.Width, Y: b.Height},
			Vel:       dir.Normalized().Scale(b.Speed),
			Moves:     true,
			Color:     core.BallColors[w.rng.Intn(len(core.BallColors))],
			DrawOrder: 1,
		})
	}
}

func (w *World) spawnBricks() {
	a := w.cfg.Arena
	b := w.cfg.Bricks

	// The paddle gap is measured from the bottom wall and the columns are
	// left-aligned at the side gap; leftover width stays on the right.
	totalWidth := a.Width() - 2*b.SideGap
	totalHeight := a.Height() - b.CeilingGap - b.PaddleGap

	cols := int(totalWidth / (b.Width + b.Gap))
	rows := int(totalHeight / (b.Height + b.Gap))
	if cols <= 0 || rows <= 0 {
		return
	}

	offsetX := a.LeftWall + b.SideGap + b.Width/2
	offsetY := a.BottomWall + b.PaddleGap + b.Height/2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			w.store.Create(Record{
				Kind: KindBrick,
				Pos: core.Vec2{
					X: offsetX + float64(col)*(b.Width+b.Gap),
					Y: offsetY + float64(row)*(b.Height+b.Gap),
				},
				Size:     core.Vec2{X: b.Width, Y: b.Height},
				Collider: true,
				Health:   b.Health,
				Color:    core.ColorBrickPeriwinkle,
			})
		}
	}
}

// Step advances the simulation by one fixed tick: paddle controller first,
// then motion, then collision resolution. The returned events cover every
// collision processed this tick. A non-nil error means an invariant was
// violated and the simulation cannot proceed.
func (w *World) Step(in core.InputFrame) (StepResult, error) {
	dt := w.cfg.Sim.Dt()

	if err := stepPaddle(w.store, w.cfg, in, dt); err != nil {
		return StepResult{}, err
	}
	stepMotion(w.store, dt)
	events := stepCollisions(w.store, w.board)

	w.tick++
	return StepResult{
		Tick:   w.tick,
		Score:  w.board.Value(),
		Events: events,
	}, nil
}

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 {
	return w.tick
}

// Score returns the current scoreboard value.
func (w *World) Score() uint64 {
	return w.board.Value()
}

// Seed returns the RNG seed the world was created with.
func (w *World) Seed() int64 {
	return w.seed
}

// Config returns the configuration the world was created with.
func (w *World) Config() config.Config {
	return w.cfg
}

// BricksRemaining returns the number of live bricks.
func (w *World) BricksRemaining() int {
	return w.store.CountKind(KindBrick)
}

// Store exposes the entity store for systems and tests within this module.
func (w *World) Store() *Store {
	return w.store
}
