package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the tuning file name looked up in the config directories.
const FileName = "gravity.yaml"

// ErrInvalidConfig is returned when a tuning file parses but is unusable.
var ErrInvalidConfig = errors.New("config: invalid tuning")

// LoadGravity loads the game tuning.
// Search order: customPath -> ~/.gravity/configs/gravity.yaml -> ./configs/gravity.yaml -> embedded default.
// Files are applied on top of the built-in defaults, so they may set only
// the values they want to change. A broken customPath is an error; broken
// files in the implicit locations are skipped.
func LoadGravity(customPath string) (GravityConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GravityConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GravityConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultGravityYAML)
	if err != nil {
		return DefaultGravityConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML tuning over the built-in defaults and validates it.
func Parse(data []byte) (GravityConfig, error) {
	cfg := DefaultGravityConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GravityConfig{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GravityConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the tuning as YAML.
func Marshal(cfg GravityConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tuning: %w", err)
	}
	return data, nil
}

// Validate checks every invariant the simulation relies on.
func (c GravityConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"reference.width", c.Reference.Width},
		{"reference.height", c.Reference.Height},
		{"player.size", c.Player.Size},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.max_fall_speed", c.Physics.MaxFallSpeed},
		{"physics.flip_speed", c.Physics.FlipSpeed},
		{"physics.rotation_ease", c.Physics.RotationEase},
		{"speed.base", c.Speed.Base},
		{"speed.max", c.Speed.Max},
		{"speed.increment", c.Speed.Increment},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.spike_size", c.Obstacles.SpikeSize},
		{"obstacles.min_gap", c.Obstacles.MinGap},
		{"obstacles.max_gap", c.Obstacles.MaxGap},
		{"obstacles.block_height_ratio", c.Obstacles.BlockHeightRatio},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"physics.surface_margin", c.Physics.SurfaceMargin},
		{"obstacles.gap_shrink_per_point", c.Obstacles.GapShrinkPerPoint},
		{"obstacles.spawn_offset", c.Obstacles.SpawnOffset},
	}
	for _, p := range nonNegative {
		if !(p.value >= 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	pf := c.Playfield
	if !(pf.CeilingRatio >= 0 && pf.CeilingRatio < pf.FloorRatio && pf.FloorRatio <= 1) {
		return fmt.Errorf("%w: need 0 <= ceiling_ratio < floor_ratio <= 1, got %v/%v",
			ErrInvalidConfig, pf.CeilingRatio, pf.FloorRatio)
	}
	if !(c.Player.XRatio > 0 && c.Player.XRatio < 1) {
		return fmt.Errorf("%w: player.x_ratio must be in (0, 1), got %v", ErrInvalidConfig, c.Player.XRatio)
	}
	if c.Physics.RotationEase > 1 {
		return fmt.Errorf("%w: physics.rotation_ease must not exceed 1, got %v", ErrInvalidConfig, c.Physics.RotationEase)
	}
	if c.Speed.Base > c.Speed.Max {
		return fmt.Errorf("%w: speed.base %v exceeds speed.max %v", ErrInvalidConfig, c.Speed.Base, c.Speed.Max)
	}
	if c.Obstacles.MinGap > c.Obstacles.MaxGap {
		return fmt.Errorf("%w: obstacles.min_gap %v exceeds max_gap %v", ErrInvalidConfig, c.Obstacles.MinGap, c.Obstacles.MaxGap)
	}

	return ValidateTiers(c.Difficulty.Tiers)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gravity", "configs", filename)
}
