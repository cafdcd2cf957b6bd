package sim

import "github.com/vovakirdan/breakout-sim/internal/core"

// EventKind classifies a collision event.
type EventKind int

const (
	// EventWallHit is emitted when a ball bounces off an arena wall.
	EventWallHit EventKind = iota
	// EventPaddleHit is emitted when a ball bounces off the paddle.
	EventPaddleHit
	// EventBrickHit is emitted when a ball strikes a brick. The presentation
	// layer uses these to trigger sound effects.
	EventBrickHit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "wall-hit"
	case EventPaddleHit:
		return "paddle-hit"
	case EventBrickHit:
		return "brick-hit"
	default:
		return "unknown"
	}
}

// Event describes one collision processed during a tick. Events carry no
// audio or rendering data; they only notify the presentation layer.
type Event struct {
	Kind   EventKind
	Ball   Handle
	Struck Handle
	Side   core.Side
	Pos    core.Vec2 // position of the struck entity
	// Destroyed is set on EventBrickHit when the hit removed the brick.
	Destroyed bool
}
