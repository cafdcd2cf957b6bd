package sim

import (
	"testing"

	"github.com/vovakirdan/breakout-sim/internal/config"
	"github.com/vovakirdan/breakout-sim/internal/core"
)

func TestWorldSetup(t *testing.T) {
	cfg := config.Default()
	w, err := New(cfg, 42)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	store := w.Store()
	if got := store.CountKind(KindWall); got != 4 {
		t.Errorf("walls = %d, expected 4", got)
	}
	if got := store.CountKind(KindPaddle); got != 1 {
		t.Errorf("paddles = %d, expected 1", got)
	}
	if got := store.CountKind(KindBall); got != cfg.Ball.Count {
		t.Errorf("balls = %d, expected %d", got, cfg.Ball.Count)
	}
	// The default arena fits an 8x8 grid.
	if got := store.CountKind(KindBrick); got != 64 {
		t.Errorf("bricks = %d, expected 64", got)
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, expected 0 at setup", w.Score())
	}

	// Ball speed magnitude is fixed by config regardless of direction.
	for _, h := range store.Balls() {
		rec, _ := store.Get(h)
		if speed := rec.Vel.Length(); speed < cfg.Ball.Speed-1e-9 || speed > cfg.Ball.Speed+1e-9 {
			t.Errorf("ball speed = %g, expected %g", speed, cfg.Ball.Speed)
		}
	}
}

func TestWorldBrickLayout(t *testing.T) {
	// The grid hangs from the bottom wall by the paddle gap and is
	// left-aligned at the side gap: with the default arena the lowest
	// leftmost brick sits at (-380, -15).
	cfg := config.Default()
	w, err := New(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}

	minX, minY := 1e18, 1e18
	w.Store().Each(func(_ Handle, r *Record) {
		if r.Kind != KindBrick {
			return
		}
		if r.Pos.X < minX {
			minX = r.Pos.X
		}
		if r.Pos.Y < minY {
			minY = r.Pos.Y
		}
	})

	wantX := cfg.Arena.LeftWall + cfg.Bricks.SideGap + cfg.Bricks.Width/2
	wantY := cfg.Arena.BottomWall + cfg.Bricks.PaddleGap + cfg.Bricks.Height/2
	if minX != wantX {
		t.Errorf("leftmost brick x = %g, expected %g", minX, wantX)
	}
	if minY != wantY {
		t.Errorf("lowest brick y = %g, expected %g", minY, wantY)
	}
	if wantX != -380 || wantY != -15 {
		t.Errorf("default layout anchors at (%g, %g), expected (-380, -15)", wantX, wantY)
	}
}

func TestWorldBallLaunchCoversFullCircle(t *testing.T) {
	// Launch directions are drawn from the full circle, so a large batch
	// of balls must spread over all four quadrants.
	cfg := config.Default()
	cfg.Ball.Count = 64
	w, err := New(cfg, 9)
	if err != nil {
		t.Fatal(err)
	}

	var up, down, left, right bool
	for _, h := range w.Store().Balls() {
		rec, _ := w.Store().Get(h)
		up = up || rec.Vel.Y > 0
		down = down || rec.Vel.Y < 0
		left = left || rec.Vel.X < 0
		right = right || rec.Vel.X > 0
	}
	if !up || !down || !left || !right {
		t.Errorf("directions missing: up=%v down=%v left=%v right=%v", up, down, left, right)
	}
}

func TestWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.TickRate = 0
	if _, err := New(cfg, 1); err == nil {
		t.Error("New() should reject an invalid config")
	}
}

func TestWorldStepFatalWithoutPaddle(t *testing.T) {
	w, err := New(config.Default(), 1)
	if err != nil {
		t.Fatal(err)
	}

	h, err := w.Store().Paddle()
	if err != nil {
		t.Fatal(err)
	}
	w.Store().Remove(h)

	if _, err := w.Step(core.NewInputFrame()); err == nil {
		t.Error("Step() should fail once the paddle invariant is broken")
	}
}

func TestWorldDeterminism(t *testing.T) {
	// Identical seeds and input sequences must produce identical worlds.
	run := func() Snapshot {
		w, err := New(config.Default(), 12345)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%5 < 3 {
				in.Set(core.ActionRight)
			} else {
				in.Set(core.ActionLeft)
			}
			if _, err := w.Step(in); err != nil {
				t.Fatal(err)
			}
		}
		return w.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ, %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ, %d vs %d", snap1.Score, snap2.Score)
	}
}

func TestWorldBottomWallBouncesBall(t *testing.T) {
	// There is no ball-loss mechanic: the bottom wall reflects like any
	// other wall and balls are never destroyed.
	w, err := New(config.Default(), 7)
	if err != nil {
		t.Fatal(err)
	}

	store := w.Store()
	balls := store.Balls()
	if len(balls) != 1 {
		t.Fatalf("expected 1 ball, got %d", len(balls))
	}
	rec, _ := store.GetMut(balls[0])
	// Drop the ball well clear of the paddle so the bottom wall is the
	// first thing it meets.
	rec.Pos = core.Vec2{X: -300, Y: -50}
	rec.Vel = core.Vec2{X: 0, Y: -400}

	bounced := false
	for i := 0; i < 600 && !bounced; i++ {
		res, err := w.Step(core.NewInputFrame())
		if err != nil {
			t.Fatal(err)
		}
		for _, ev := range res.Events {
			if ev.Kind == EventWallHit {
				if ev.Side != core.SideTop {
					t.Errorf("falling ball struck side %v, expected the wall's top face", ev.Side)
				}
				bounced = true
			}
		}
	}
	if !bounced {
		t.Fatal("ball never reached the bottom wall")
	}

	after, ok := store.Get(balls[0])
	if !ok {
		t.Fatal("ball must survive a bottom-wall hit")
	}
	if after.Vel.Y <= 0 {
		t.Errorf("vy = %g, expected upward after the bounce", after.Vel.Y)
	}
	if w.Score() != 0 {
		t.Errorf("wall bounces must not score, got %d", w.Score())
	}
}

func TestWorldSnapshot(t *testing.T) {
	w, err := New(config.Default(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Step(core.NewInputFrame()); err != nil {
		t.Fatal(err)
	}

	snap := w.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("snapshot tick = %d, expected 1", snap.Tick)
	}
	if len(snap.Entities) != w.Store().Len() {
		t.Errorf("snapshot has %d entities, store has %d", len(snap.Entities), w.Store().Len())
	}

	kinds := make(map[Kind]int)
	for _, e := range snap.Entities {
		kinds[e.Kind]++
		if e.Kind == KindBall && e.DrawOrder != 1 {
			t.Errorf("ball draw order = %d, expected 1", e.DrawOrder)
		}
		if e.Kind == KindBrick && e.Color != core.ColorBrickPeriwinkle {
			t.Errorf("brick color hint = %v", e.Color)
		}
	}
	if kinds[KindPaddle] != 1 || kinds[KindWall] != 4 {
		t.Errorf("snapshot kinds = %v", kinds)
	}
}

func TestScenarioBallDestroysBrick(t *testing.T) {
	// A ball at the origin moving right at 400 units/s toward a brick:
	// no collision on the first tick, then the brick's left face is
	// struck, the x velocity flips, the score reaches 1 and the brick is
	// gone.
	dt := 1.0 / 60.0
	s := NewStore()
	board := &Scoreboard{}

	ball := s.Create(ballRecord(core.Vec2{X: 0, Y: 0}, core.Vec2{X: 400, Y: 0}))
	brick := s.Create(Record{
		Kind:     KindBrick,
		Pos:      core.Vec2{X: 80, Y: 0},
		Size:     core.Vec2{X: 100, Y: 30},
		Collider: true,
		Health:   1,
	})

	stepMotion(s, dt)
	if events := stepCollisions(s, board); len(events) != 0 {
		t.Fatalf("tick 1: got %d events, expected none yet", len(events))
	}

	var hit *Event
	for tick := 2; tick <= 10 && hit == nil; tick++ {
		stepMotion(s, dt)
		events := stepCollisions(s, board)
		if len(events) > 0 {
			hit = &events[0]
		}
	}
	if hit == nil {
		t.Fatal("ball never reached the brick")
	}

	if hit.Side != core.SideLeft {
		t.Errorf("side = %v, expected Left", hit.Side)
	}
	if !hit.Destroyed {
		t.Error("hit should destroy a health-1 brick")
	}
	rec, _ := s.Get(ball)
	if rec.Vel.X != -400 {
		t.Errorf("vx = %g, expected -400 after reflection", rec.Vel.X)
	}
	if board.Value() != 1 {
		t.Errorf("score = %d, expected 1", board.Value())
	}
	if _, ok := s.Get(brick); ok {
		t.Error("brick should be removed from the store")
	}
}
