package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the simulation configuration.
// Search order: customPath -> ~/.breakout-sim/config.yaml ->
// ./configs/breakout.yaml -> embedded default.
// Loaded configurations are validated; an explicit customPath that fails to
// read, parse or validate is an error, fallback tiers fail silently to the
// next tier.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if cfg, err := loadFile(userPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		return cfg, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	if err := cfg.Validate(); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// loadFile reads, parses and validates a single config file.
func loadFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout-sim", filename)
}
