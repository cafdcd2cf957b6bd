package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

func TestMotionAdvancesMovers(t *testing.T) {
	s := NewStore()
	ball := s.Create(Record{
		Kind:  KindBall,
		Size:  core.Vec2{X: 30, Y: 30},
		Vel:   core.Vec2{X: 60, Y: -120},
		Moves: true,
	})
	wall := s.Create(Record{Kind: KindWall, Collider: true, Size: core.Vec2{X: 10, Y: 600}})

	stepMotion(s, 0.5)

	rec, _ := s.Get(ball)
	if rec.Pos.X != 30 || rec.Pos.Y != -60 {
		t.Errorf("ball moved to (%g, %g), expected (30, -60)", rec.Pos.X, rec.Pos.Y)
	}

	wrec, _ := s.Get(wall)
	if wrec.Pos.X != 0 || wrec.Pos.Y != 0 {
		t.Error("non-mover should not move")
	}
}

func TestMotionDeterminism(t *testing.T) {
	// 60 ticks at dt=1/60 with velocity (100, 0) must displace by 100
	// units, independent of wall-clock timing.
	s := NewStore()
	ball := s.Create(Record{
		Kind:  KindBall,
		Size:  core.Vec2{X: 30, Y: 30},
		Vel:   core.Vec2{X: 100, Y: 0},
		Moves: true,
	})

	dt := 1.0 / 60.0
	for i := 0; i < 60; i++ {
		stepMotion(s, dt)
	}

	rec, _ := s.Get(ball)
	if math.Abs(rec.Pos.X-100) > 1e-9 {
		t.Errorf("displacement = %g, expected 100 within tolerance", rec.Pos.X)
	}
}
