package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the reference arena.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			LeftWall:      -450,
			RightWall:     450,
			TopWall:       300,
			BottomWall:    -300,
			WallThickness: 10,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       20,
			Speed:        500,
			StartOffsetY: 60,
		},
		Ball: BallConfig{
			Width:  30,
			Height: 30,
			Speed:  400,
			StartX: 0,
			StartY: -50,
			Count:  1,
		},
		Bricks: BrickConfig{
			Width:      100,
			Height:     30,
			Gap:        5,
			CeilingGap: 20,
			SideGap:    20,
			PaddleGap:  270,
			Health:     1,
		},
		Sim: SimConfig{
			TickRate: 60,
		},
	}
}
