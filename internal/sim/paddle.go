package sim

import (
	"fmt"

	"github.com/vovakirdan/breakout-sim/internal/config"
	"github.com/vovakirdan/breakout-sim/internal/core"
)

// stepPaddle maps the held input signals to paddle movement. The paddle is
// position-driven from input and bypasses the generic motion path; it runs
// before the motion system each tick. The x position is clamped so the
// paddle never enters a side wall; y never changes after setup.
func stepPaddle(store *Store, cfg config.Config, in core.InputFrame, dt float64) error {
	h, err := store.Paddle()
	if err != nil {
		return err
	}
	rec, ok := store.GetMut(h)
	if !ok {
		return fmt.Errorf("sim: paddle handle went stale mid-tick")
	}

	x := rec.Pos.X + in.Direction()*cfg.Paddle.Speed*dt

	margin := (cfg.Arena.WallThickness + cfg.Paddle.Width) / 2
	rec.Pos.X = core.ClampF(x, cfg.Arena.LeftWall+margin, cfg.Arena.RightWall-margin)
	return nil
}
