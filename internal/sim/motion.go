package sim

// stepMotion advances every velocity-bearing entity by velocity * dt.
// dt is the constant tick period, never a wall-clock delta, so displacement
// per tick is deterministic. Bounds clamping is each mover's own concern.
func stepMotion(store *Store, dt float64) {
	store.Each(func(_ Handle, r *Record) {
		if r.Moves {
			r.Pos = r.Pos.Add(r.Vel.Scale(dt))
		}
	})
}
