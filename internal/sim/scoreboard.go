package sim

// Scoreboard holds the score counter. It is incremented by exactly 1 per
// brick-hit collision event and read every tick by the presentation layer.
type Scoreboard struct {
	score uint64
}

// Add increments the score by n.
func (b *Scoreboard) Add(n uint64) {
	b.score += n
}

// Value returns the current score.
func (b *Scoreboard) Value() uint64 {
	return b.score
}
