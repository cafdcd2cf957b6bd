package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a difficulty name from user input.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (available: easy, normal, hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset. Unknown
// presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed *= 0.75
		cfg.Paddle.Speed *= 1.25
	case DifficultyNormal:
		// Config values as loaded.
	case DifficultyHard:
		cfg.Ball.Speed *= 1.25
		cfg.Bricks.Health++
	}
}
