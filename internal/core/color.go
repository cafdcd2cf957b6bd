package core

// Color is a coarse appearance hint attached to entity snapshots. The core
// does no rendering; the presentation layer maps hints to whatever palette
// it has.
type Color uint8

// Predefined hints for game elements, mirroring the reference palette:
// a bluish paddle, salmon balls, light gray walls and periwinkle bricks.
const (
	ColorDefault Color = iota
	ColorPaddleBlue
	ColorBallSalmon
	ColorBallGold
	ColorBallMint
	ColorBallViolet
	ColorWallGray
	ColorBrickPeriwinkle
)

// String returns a human-readable name for the hint.
func (c Color) String() string {
	switch c {
	case ColorPaddleBlue:
		return "paddle-blue"
	case ColorBallSalmon:
		return "ball-salmon"
	case ColorBallGold:
		return "ball-gold"
	case ColorBallMint:
		return "ball-mint"
	case ColorBallViolet:
		return "ball-violet"
	case ColorWallGray:
		return "wall-gray"
	case ColorBrickPeriwinkle:
		return "brick-periwinkle"
	default:
		return "default"
	}
}

// BallColors lists the hints a newly spawned ball may be assigned.
var BallColors = []Color{ColorBallSalmon, ColorBallGold, ColorBallMint, ColorBallViolet}
