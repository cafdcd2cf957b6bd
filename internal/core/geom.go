// Package core provides fundamental types and utilities for the simulation:
// 2D vectors, AABB collision detection, and input frames. It contains no
// external dependencies to keep the simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector with float64 components. Used for positions
// (world-space center of an entity's bounding box), sizes (full width and
// height) and velocities (units per second).
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Side identifies which face of the other box a probe box struck.
type Side int

const (
	// SideLeft means the probe hit the left face of the other box.
	SideLeft Side = iota
	// SideRight means the probe hit the right face of the other box.
	SideRight
	// SideTop means the probe hit the top face of the other box.
	SideTop
	// SideBottom means the probe hit the bottom face of the other box.
	SideBottom
	// SideInside means the boxes overlap too deeply to pick a face.
	SideInside
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Collide performs an AABB overlap test between a probe box a and another
// box b, both given as center position plus full size. It reports which face
// of b the probe struck, or ok=false when the boxes do not overlap at all.
//
// The overlap interval on each axis is computed from half-extents; the
// collision is classified by whichever axis has the smaller penetration
// depth relative to that axis's combined extent. If one box's interval is
// fully contained in the other's on an axis, that axis cannot name a face;
// containment on both axes, or an exact tie between the two axes, classifies
// as SideInside. Boxes with a non-positive size never collide.
func Collide(aPos, aSize, bPos, bSize Vec2) (Side, bool) {
	if aSize.X <= 0 || aSize.Y <= 0 || bSize.X <= 0 || bSize.Y <= 0 {
		return SideInside, false
	}

	dx := bPos.X - aPos.X
	dy := bPos.Y - aPos.Y
	extentX := (aSize.X + bSize.X) / 2
	extentY := (aSize.Y + bSize.Y) / 2
	overlapX := extentX - math.Abs(dx)
	overlapY := extentY - math.Abs(dy)

	if overlapX <= 0 || overlapY <= 0 {
		return SideInside, false
	}

	// An axis where one interval fully contains the other cannot name
	// a struck face.
	containedX := math.Abs(dx) <= math.Abs(aSize.X-bSize.X)/2
	containedY := math.Abs(dy) <= math.Abs(aSize.Y-bSize.Y)/2

	ratioX := overlapX / extentX
	ratioY := overlapY / extentY

	xWins := !containedX && (containedY || ratioX < ratioY)
	yWins := !containedY && (containedX || ratioY < ratioX)

	switch {
	case xWins:
		if dx > 0 {
			return SideLeft, true
		}
		return SideRight, true
	case yWins:
		if dy < 0 {
			return SideTop, true
		}
		return SideBottom, true
	default:
		return SideInside, true
	}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
