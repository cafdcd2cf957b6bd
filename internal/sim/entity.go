// Package sim implements the fixed-timestep Breakout simulation core: an
// entity store, motion and collision systems, the paddle controller and the
// scoreboard. The package has no UI dependencies; a presentation layer reads
// snapshots and per-tick events and feeds input frames back in.
package sim

import (
	"fmt"

	"github.com/vovakirdan/breakout-sim/internal/core"
)

// Kind identifies what a stored entity is.
type Kind uint8

const (
	KindPaddle Kind = iota
	KindBall
	KindWall
	KindBrick
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindWall:
		return "wall"
	case KindBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Handle is a stable, opaque reference to a stored entity. Handles survive
// removals of other entities; a handle to a removed entity is detectably
// stale (lookups report not found) and never dangles. The zero Handle is
// never issued.
type Handle struct {
	index uint32
	gen   uint32
}

// Record holds the component data of one entity. Optional capabilities are
// expressed with flags rather than separate storage: Moves marks the entity
// for the motion system, Collider enters it into collision checks.
type Record struct {
	Kind     Kind
	Pos      core.Vec2 // world-space center of the bounding box
	Size     core.Vec2 // full width and height
	Vel      core.Vec2 // units per second, meaningful only when Moves
	Moves    bool
	Collider bool
	Health   int // bricks only, clamped at 0
	Color    core.Color
	// DrawOrder is a presentation hint; higher draws on top.
	DrawOrder int
}

type slot struct {
	gen  uint32
	live bool
	rec  Record
}

// Store owns all entity records. Iteration is in insertion order and is
// stable within a tick: systems that may remove entities mid-pass collect
// handles up front and tolerate stale ones.
type Store struct {
	slots []slot
	free  []uint32
	order []uint32
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{}
}

// Create adds a record to the store and returns its handle.
func (s *Store) Create(rec Record) Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[idx].live = true
		s.slots[idx].rec = rec
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{gen: 1, live: true, rec: rec})
	}
	s.order = append(s.order, idx)
	return Handle{index: idx, gen: s.slots[idx].gen}
}

// Remove deletes the entity behind h. Removing an already-removed or
// otherwise stale handle is a no-op.
func (s *Store) Remove(h Handle) {
	if !s.valid(h) {
		return
	}
	s.slots[h.index].live = false
	s.slots[h.index].gen++
	s.free = append(s.free, h.index)
	for i, idx := range s.order {
		if idx == h.index {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) valid(h Handle) bool {
	return h.gen != 0 && int(h.index) < len(s.slots) &&
		s.slots[h.index].live && s.slots[h.index].gen == h.gen
}

// Get returns a copy of the record behind h, or ok=false for stale handles.
func (s *Store) Get(h Handle) (Record, bool) {
	if !s.valid(h) {
		return Record{}, false
	}
	return s.slots[h.index].rec, true
}

// GetMut returns a pointer to the record behind h for in-place mutation, or
// ok=false for stale handles. The pointer is valid until the next Create.
func (s *Store) GetMut(h Handle) (*Record, bool) {
	if !s.valid(h) {
		return nil, false
	}
	return &s.slots[h.index].rec, true
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.order)
}

// Each calls fn for every live entity in insertion order. fn must not
// create or remove entities.
func (s *Store) Each(fn func(Handle, *Record)) {
	for _, idx := range s.order {
		sl := &s.slots[idx]
		fn(Handle{index: idx, gen: sl.gen}, &sl.rec)
	}
}

// Colliders returns the handles of all collider-bearing entities in
// insertion order. The slice is a snapshot: entities removed afterwards
// simply turn stale.
func (s *Store) Colliders() []Handle {
	return s.collect(func(r *Record) bool { return r.Collider })
}

// Balls returns the handles of all ball entities in insertion order.
func (s *Store) Balls() []Handle {
	return s.collect(func(r *Record) bool { return r.Kind == KindBall })
}

// CountKind returns the number of live entities of the given kind.
func (s *Store) CountKind(k Kind) int {
	n := 0
	for _, idx := range s.order {
		if s.slots[idx].rec.Kind == k {
			n++
		}
	}
	return n
}

func (s *Store) collect(pred func(*Record) bool) []Handle {
	var out []Handle
	for _, idx := range s.order {
		sl := &s.slots[idx]
		if pred(&sl.rec) {
			out = append(out, Handle{index: idx, gen: sl.gen})
		}
	}
	return out
}

// Paddle returns the handle of the single paddle entity. Exactly one paddle
// must exist at all times after setup; zero or multiple matches is a
// programming error the simulation cannot recover from.
func (s *Store) Paddle() (Handle, error) {
	var found Handle
	n := 0
	for _, idx := range s.order {
		sl := &s.slots[idx]
		if sl.rec.Kind == KindPaddle {
			found = Handle{index: idx, gen: sl.gen}
			n++
		}
	}
	if n != 1 {
		return Handle{}, fmt.Errorf("sim: expected exactly one paddle, found %d", n)
	}
	return found, nil
}
