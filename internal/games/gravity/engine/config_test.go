package engine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/gravity-switch/internal/config"
	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
)

func TestBuildConfigReferenceSize(t *testing.T) {
	cfg, err := engine.BuildConfig(400, 700, config.DefaultGravityConfig())
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Scale", cfg.Scale, 1},
		{"FloorY", cfg.FloorY, 525},
		{"CeilingY", cfg.CeilingY, 175},
		{"PlayerSize", cfg.PlayerSize, 28},
		{"PlayerX", cfg.PlayerX, 80},
		{"Gravity", cfg.Gravity, 0.8},
		{"MaxFallSpeed", cfg.MaxFallSpeed, 15},
		{"FlipSpeed", cfg.FlipSpeed, 12},
		{"BaseSpeed", cfg.BaseSpeed, 4},
		{"MaxSpeed", cfg.MaxSpeed, 10},
		{"ObstacleWidth", cfg.ObstacleWidth, 30},
		{"SpikeSize", cfg.SpikeSize, 25},
		{"BlockHeight", cfg.BlockHeight, 45},
		{"MinGap", cfg.MinGap, 180},
		{"MaxGap", cfg.MaxGap, 280},
		{"FloorRest", cfg.FloorRest(), 509},
		{"CeilingRest", cfg.CeilingRest(), 191},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestBuildConfigScalesBySmallerAxis(t *testing.T) {
	// Twice as wide but the same height: height limits the scale.
	cfg, err := engine.BuildConfig(800, 700, config.DefaultGravityConfig())
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}
	if cfg.Scale != 1 {
		t.Errorf("Scale = %v, want 1", cfg.Scale)
	}
	if cfg.PlayerX != 160 {
		t.Errorf("PlayerX = %v, want 160 (fraction of width)", cfg.PlayerX)
	}

	cfg, err = engine.BuildConfig(200, 700, config.DefaultGravityConfig())
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}
	if cfg.Scale != 0.5 {
		t.Errorf("Scale = %v, want 0.5", cfg.Scale)
	}
	if cfg.PlayerSize != 14 {
		t.Errorf("PlayerSize = %v, want 14", cfg.PlayerSize)
	}
}

func TestBuildConfigInvariants(t *testing.T) {
	sizes := [][2]float64{
		{1, 1}, {40, 70}, {80, 24}, {400, 700}, {1920, 1080}, {3840, 400}, {0.5, 10000},
	}

	for _, s := range sizes {
		cfg, err := engine.BuildConfig(s[0], s[1], config.DefaultGravityConfig())
		if err != nil {
			t.Fatalf("BuildConfig(%v, %v): %v", s[0], s[1], err)
		}
		if !(cfg.CeilingY < cfg.FloorY) {
			t.Errorf("%vx%v: ceiling %v not above floor %v", s[0], s[1], cfg.CeilingY, cfg.FloorY)
		}
		positive := map[string]float64{
			"PlayerSize":     cfg.PlayerSize,
			"PlayerX":        cfg.PlayerX,
			"Gravity":        cfg.Gravity,
			"MaxFallSpeed":   cfg.MaxFallSpeed,
			"FlipSpeed":      cfg.FlipSpeed,
			"BaseSpeed":      cfg.BaseSpeed,
			"MaxSpeed":       cfg.MaxSpeed,
			"SpeedIncrement": cfg.SpeedIncrement,
			"ObstacleWidth":  cfg.ObstacleWidth,
			"SpikeSize":      cfg.SpikeSize,
			"MinGap":         cfg.MinGap,
			"MaxGap":         cfg.MaxGap,
		}
		for name, v := range positive {
			if !(v > 0) {
				t.Errorf("%vx%v: %s = %v, want > 0", s[0], s[1], name, v)
			}
		}
		if cfg.BaseSpeed > cfg.MaxSpeed {
			t.Errorf("%vx%v: base speed %v above max %v", s[0], s[1], cfg.BaseSpeed, cfg.MaxSpeed)
		}
	}
}

func TestBuildConfigRejectsInvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"zero width", 0, 700},
		{"zero height", 400, 0},
		{"negative", -400, 700},
		{"NaN", math.NaN(), 700},
		{"infinite", math.Inf(1), 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.BuildConfig(tt.width, tt.height, config.DefaultGravityConfig())
			if !errors.Is(err, engine.ErrInvalidSize) {
				t.Errorf("expected ErrInvalidSize, got %v", err)
			}
		})
	}
}

func TestConfigWeightsFollowTiers(t *testing.T) {
	cfg, err := engine.BuildConfig(400, 700, config.DefaultGravityConfig())
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}

	if got := cfg.Weights(4); got[2] != 0 || got[5] != 0 {
		t.Errorf("score 4 weights = %v, want no spike-both or block-gap", got)
	}
	if got := cfg.Weights(5); got[5] != 1 {
		t.Errorf("score 5 weights = %v, want block-gap weight 1", got)
	}

	// A zero Config still answers with the built-in tiers.
	var zero engine.Config
	if got := zero.Weights(0); len(got) != config.ObstacleKinds {
		t.Errorf("zero Config weights = %v", got)
	}
}
