package pilot

import (
	"github.com/vovakirdan/breakout-sim/internal/core"
	"github.com/vovakirdan/breakout-sim/internal/sim"
)

// idle never presses anything; the paddle stays put and the balls bounce on
// their own.
type idle struct{}

func (idle) Frame(uint64) core.InputFrame {
	return core.NewInputFrame()
}

// follow steers the paddle toward the lowest ball, with a dead zone of a
// quarter paddle width to avoid jitter around the target.
type follow struct {
	world *sim.World
}

func (f *follow) Frame(uint64) core.InputFrame {
	frame := core.NewInputFrame()
	snap := f.world.Snapshot()

	var paddle *sim.EntitySnapshot
	var target *sim.EntitySnapshot
	for i := range snap.Entities {
		e := &snap.Entities[i]
		switch e.Kind {
		case sim.KindPaddle:
			paddle = e
		case sim.KindBall:
			if target == nil || e.Pos.Y < target.Pos.Y {
				target = e
			}
		}
	}
	if paddle == nil || target == nil {
		return frame
	}

	dead := paddle.Size.X / 4
	switch {
	case target.Pos.X < paddle.Pos.X-dead:
		frame.Set(core.ActionLeft)
	case target.Pos.X > paddle.Pos.X+dead:
		frame.Set(core.ActionRight)
	}
	return frame
}

// Script replays a fixed per-tick frame sequence; ticks beyond the sequence
// get empty frames, or the sequence wraps when Loop is set. Used by tests
// and reproducible runs.
type Script struct {
	Frames []core.InputFrame
	Loop   bool
}

// Frame returns the scripted frame for the given tick.
func (s *Script) Frame(tick uint64) core.InputFrame {
	if len(s.Frames) == 0 {
		return core.NewInputFrame()
	}
	idx := int(tick)
	if idx >= len(s.Frames) {
		if !s.Loop {
			return core.NewInputFrame()
		}
		idx %= len(s.Frames)
	}
	return s.Frames[idx]
}
