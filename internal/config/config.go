// Package config provides YAML-based configuration loading and difficulty
// presets for the simulation.
package config

import "fmt"

// Config contains all tunables of the simulation. Every field has a default
// matching the reference arena; any of them can be overridden from YAML.
type Config struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Bricks BrickConfig  `yaml:"bricks"`
	Sim    SimConfig    `yaml:"sim"`
}

// ArenaConfig defines the static rectangular boundary.
type ArenaConfig struct {
	LeftWall      float64 `yaml:"left_wall"`
	RightWall     float64 `yaml:"right_wall"`
	TopWall       float64 `yaml:"top_wall"`
	BottomWall    float64 `yaml:"bottom_wall"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// Width returns the inner width of the arena.
func (a ArenaConfig) Width() float64 {
	return a.RightWall - a.LeftWall
}

// Height returns the inner height of the arena.
func (a ArenaConfig) Height() float64 {
	return a.TopWall - a.BottomWall
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Speed is the paddle movement speed in units per second.
	Speed float64 `yaml:"speed"`
	// StartOffsetY positions the paddle this many units above the bottom wall.
	StartOffsetY float64 `yaml:"start_offset_y"`
}

// BallConfig defines ball geometry, speed and spawning.
type BallConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Speed is the constant ball speed magnitude in units per second.
	Speed  float64 `yaml:"speed"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	// Count is the number of balls spawned at setup.
	Count int `yaml:"count"`
}

// BrickConfig defines the brick grid layout and brick durability.
type BrickConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Gap is the spacing between adjacent bricks.
	Gap float64 `yaml:"gap"`
	// CeilingGap is the spacing between the top brick row and the ceiling.
	CeilingGap float64 `yaml:"ceiling_gap"`
	// SideGap is the spacing between the brick field and the side walls.
	SideGap float64 `yaml:"side_gap"`
	// PaddleGap is the spacing between the paddle's row and the brick field.
	PaddleGap float64 `yaml:"paddle_gap"`
	// Health is the number of hits a brick absorbs before it is destroyed.
	Health int `yaml:"health"`
}

// SimConfig defines the fixed-timestep parameters.
type SimConfig struct {
	// TickRate is the number of simulation ticks per second.
	TickRate int `yaml:"tick_rate"`
}

// Dt returns the fixed tick period in seconds.
func (s SimConfig) Dt() float64 {
	return 1.0 / float64(s.TickRate)
}

// Validate checks the configuration for values the simulation cannot run
// with. It returns the first problem found.
func (c Config) Validate() error {
	if c.Arena.LeftWall >= c.Arena.RightWall {
		return fmt.Errorf("config: left_wall (%g) must be less than right_wall (%g)", c.Arena.LeftWall, c.Arena.RightWall)
	}
	if c.Arena.BottomWall >= c.Arena.TopWall {
		return fmt.Errorf("config: bottom_wall (%g) must be less than top_wall (%g)", c.Arena.BottomWall, c.Arena.TopWall)
	}
	if c.Arena.WallThickness <= 0 {
		return fmt.Errorf("config: wall_thickness must be positive, got %g", c.Arena.WallThickness)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("config: paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width >= c.Arena.Width() {
		return fmt.Errorf("config: paddle width %g does not fit the arena width %g", c.Paddle.Width, c.Arena.Width())
	}
	if c.Paddle.Speed < 0 {
		return fmt.Errorf("config: paddle speed must not be negative, got %g", c.Paddle.Speed)
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		return fmt.Errorf("config: ball size must be positive, got %gx%g", c.Ball.Width, c.Ball.Height)
	}
	if c.Ball.Speed <= 0 {
		return fmt.Errorf("config: ball speed must be positive, got %g", c.Ball.Speed)
	}
	if c.Ball.Count < 1 {
		return fmt.Errorf("config: ball count must be at least 1, got %d", c.Ball.Count)
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		return fmt.Errorf("config: brick size must be positive, got %gx%g", c.Bricks.Width, c.Bricks.Height)
	}
	if c.Bricks.Health < 1 {
		return fmt.Errorf("config: brick health must be at least 1, got %d", c.Bricks.Health)
	}
	if c.Sim.TickRate < 1 {
		return fmt.Errorf("config: tick_rate must be at least 1, got %d", c.Sim.TickRate)
	}
	return nil
}
