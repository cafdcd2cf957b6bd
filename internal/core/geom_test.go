package core

import (
	"math"
	"testing"
)

func TestCollideNoOverlap(t *testing.T) {
	size := Vec2{X: 30, Y: 30}

	tests := []struct {
		name string
		bPos Vec2
	}{
		{"separated on x", Vec2{X: 100, Y: 0}},
		{"separated on y", Vec2{X: 0, Y: 100}},
		{"separated diagonally", Vec2{X: 100, Y: 100}},
		{"touching on x (no overlap)", Vec2{X: 30, Y: 0}},
		{"touching on y (no overlap)", Vec2{X: 0, Y: 30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if side, ok := Collide(Vec2{}, size, tc.bPos, size); ok {
				t.Errorf("Collide() = %v, expected no collision", side)
			}
		})
	}
}

func TestCollideSides(t *testing.T) {
	ballSize := Vec2{X: 30, Y: 30}
	brickSize := Vec2{X: 100, Y: 30}

	tests := []struct {
		name     string
		aPos     Vec2
		bPos     Vec2
		expected Side
	}{
		// Other box to the probe's right: its left face is struck.
		{"left face", Vec2{X: 0, Y: 0}, Vec2{X: 60, Y: 0}, SideLeft},
		{"right face", Vec2{X: 0, Y: 0}, Vec2{X: -60, Y: 0}, SideRight},
		// Other box below the probe: its top face is struck.
		{"top face", Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: -25}, SideTop},
		{"bottom face", Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: 25}, SideBottom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, ok := Collide(tc.aPos, ballSize, tc.bPos, brickSize)
			if !ok {
				t.Fatalf("Collide() reported no collision")
			}
			if side != tc.expected {
				t.Errorf("Collide() = %v, expected %v", side, tc.expected)
			}
		})
	}
}

func TestCollideInside(t *testing.T) {
	tests := []struct {
		name         string
		aPos, aSize  Vec2
		bPos, bSize  Vec2
	}{
		{
			name: "probe fully contained",
			aPos: Vec2{X: 2, Y: 1}, aSize: Vec2{X: 10, Y: 10},
			bPos: Vec2{}, bSize: Vec2{X: 100, Y: 50},
		},
		{
			name: "probe fully containing",
			aPos: Vec2{}, aSize: Vec2{X: 100, Y: 50},
			bPos: Vec2{X: 2, Y: 1}, bSize: Vec2{X: 10, Y: 10},
		},
		{
			name: "identical boxes",
			aPos: Vec2{}, aSize: Vec2{X: 30, Y: 30},
			bPos: Vec2{}, bSize: Vec2{X: 30, Y: 30},
		},
		{
			name: "exact corner tie",
			aPos: Vec2{}, aSize: Vec2{X: 10, Y: 10},
			bPos: Vec2{X: 5, Y: 5}, bSize: Vec2{X: 10, Y: 10},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, ok := Collide(tc.aPos, tc.aSize, tc.bPos, tc.bSize)
			if !ok {
				t.Fatalf("Collide() reported no collision")
			}
			if side != SideInside {
				t.Errorf("Collide() = %v, expected Inside", side)
			}
		})
	}
}

func TestCollideDegenerateSize(t *testing.T) {
	tests := []struct {
		name  string
		aSize Vec2
		bSize Vec2
	}{
		{"zero probe width", Vec2{X: 0, Y: 30}, Vec2{X: 30, Y: 30}},
		{"negative probe height", Vec2{X: 30, Y: -1}, Vec2{X: 30, Y: 30}},
		{"zero other size", Vec2{X: 30, Y: 30}, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if side, ok := Collide(Vec2{}, tc.aSize, Vec2{}, tc.bSize); ok {
				t.Errorf("Collide() = %v, expected no collision for degenerate size", side)
			}
		})
	}
}

func TestCollideDeterministic(t *testing.T) {
	aPos := Vec2{X: 1.5, Y: -2.25}
	bPos := Vec2{X: 20, Y: 3}
	size := Vec2{X: 30, Y: 30}

	first, firstOK := Collide(aPos, size, bPos, size)
	for i := 0; i < 100; i++ {
		side, ok := Collide(aPos, size, bPos, size)
		if side != first || ok != firstOK {
			t.Fatalf("Collide() not deterministic: got (%v, %v) then (%v, %v)", first, firstOK, side, ok)
		}
	}
}

func TestVec2Normalized(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalized()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Normalized().Length() = %g, expected 1", v.Length())
	}

	zero := Vec2{}.Normalized()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("Normalized() of zero vector = %v, expected zero", zero)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		expected      float64
	}{
		{"below", -500, -385, 385, -385},
		{"above", 500, -385, 385, 385},
		{"inside", 10, -385, 385, 10},
		{"at min", -385, -385, 385, -385},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("ClampF(%g) = %g, expected %g", tc.val, got, tc.expected)
			}
		})
	}
}
