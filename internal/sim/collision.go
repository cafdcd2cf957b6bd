package sim

import "github.com/vovakirdan/breakout-sim/internal/core"

// stepCollisions runs every ball against every collider, reflecting ball
// velocities and applying brick damage. O(balls x colliders) per tick, which
// is fine at arena entity counts.
//
// Handle lists are collected before the pass, so removals mid-pass never
// corrupt iteration; a brick destroyed earlier in the pass turns its handle
// stale and later checks skip it. A ball colliding with several colliders in
// the same tick processes each collision independently in iteration order,
// so a double-reflection within one tick is possible and intentional.
func stepCollisions(store *Store, board *Scoreboard) []Event {
	balls := store.Balls()
	colliders := store.Colliders()

	var events []Event
	for _, bh := range balls {
		ball, ok := store.GetMut(bh)
		if !ok {
			continue
		}
		for _, ch := range colliders {
			if ch == bh {
				continue
			}
			other, ok := store.Get(ch)
			if !ok || other.Kind == KindBall {
				continue
			}

			side, hit := core.Collide(ball.Pos, ball.Size, other.Pos, other.Size)
			if !hit {
				continue
			}

			// Reflect only when the ball is travelling into the struck face.
			// SideInside reflects nothing. Both axes may fire on a corner hit.
			reflectX := (side == core.SideLeft && ball.Vel.X > 0) ||
				(side == core.SideRight && ball.Vel.X < 0)
			reflectY := (side == core.SideTop && ball.Vel.Y < 0) ||
				(side == core.SideBottom && ball.Vel.Y > 0)
			if reflectX {
				ball.Vel.X = -ball.Vel.X
			}
			if reflectY {
				ball.Vel.Y = -ball.Vel.Y
			}

			ev := Event{
				Ball:   bh,
				Struck: ch,
				Side:   side,
				Pos:    other.Pos,
			}
			switch other.Kind {
			case KindPaddle:
				ev.Kind = EventPaddleHit
			case KindBrick:
				ev.Kind = EventBrickHit
				// One point per collision event, regardless of how many
				// axes reflected.
				board.Add(1)
				brick, ok := store.GetMut(ch)
				if ok {
					brick.Health--
					if brick.Health <= 0 {
						brick.Health = 0
						store.Remove(ch)
						ev.Destroyed = true
					}
				}
			default:
				ev.Kind = EventWallHit
			}
			events = append(events, ev)
		}
	}
	return events
}
