package sim

import (
	"math"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

// EntitySnapshot is one live entity as seen by the presentation layer.
type EntitySnapshot struct {
	Handle    Handle
	Kind      Kind
	Pos       core.Vec2
	Size      core.Vec2
	Color     core.Color
	DrawOrder int
	Health    int
}

// Snapshot is the complete per-tick view of the world: every live entity in
// insertion order plus the scoreboard value. It is what a renderer consumes;
// the core itself never draws.
type Snapshot struct {
	Tick     uint64
	Score    uint64
	Entities []EntitySnapshot
}

// Snapshot enumerates all live entities.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     w.tick,
		Score:    w.board.Value(),
		Entities: make([]EntitySnapshot, 0, w.store.Len()),
	}
	w.store.Each(func(h Handle, r *Record) {
		snap.Entities = append(snap.Entities, EntitySnapshot{
			Handle:    h,
			Kind:      r.Kind,
			Pos:       r.Pos,
			Size:      r.Size,
			Color:     r.Color,
			DrawOrder: r.DrawOrder,
			Health:    r.Health,
		})
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + s.Score
	for _, e := range s.Entities {
		h = h*31 + uint64(e.Kind)
		h = h*31 + math.Float64bits(e.Pos.X)
		h = h*31 + math.Float64bits(e.Pos.Y)
		h = h*31 + uint64(e.Health)
	}
	return h
}
