package engine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/gravity-switch/internal/config"
	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
)

// fixedRand always returns the same draw.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func referenceConfig(t *testing.T) engine.Config {
	t.Helper()
	cfg, err := engine.BuildConfig(400, 700, config.DefaultGravityConfig())
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}
	return cfg
}

func TestGenerateObstacleFields(t *testing.T) {
	cfg := referenceConfig(t)

	// score >= 15 weights [1,1,3,2,2,2], total 11.
	tests := []struct {
		draw      float64
		wantType  engine.ObstacleType
		wantWidth float64
	}{
		{0, engine.SpikeFloor, 25},
		{1.5 / 11, engine.SpikeCeiling, 25},
		{4.5 / 11, engine.SpikeBoth, 25},
		{6.5 / 11, engine.BlockFloor, 30},
		{8.5 / 11, engine.BlockCeiling, 30},
		{10.5 / 11, engine.BlockGap, 30},
	}

	for _, tt := range tests {
		t.Run(tt.wantType.String(), func(t *testing.T) {
			o := engine.GenerateObstacle(450, cfg, 20, fixedRand(tt.draw))
			if o.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", o.Type, tt.wantType)
			}
			if o.Width != tt.wantWidth {
				t.Errorf("Width = %v, want %v", o.Width, tt.wantWidth)
			}
			if o.X != 450 {
				t.Errorf("X = %v, want 450", o.X)
			}
			if o.Passed {
				t.Error("new obstacle should not be passed")
			}
		})
	}
}

func TestGenerateObstacleNeverPicksZeroWeight(t *testing.T) {
	cfg := referenceConfig(t)

	// The easy tier has zero weight for spike-both and block-gap.
	for i := 0; i < 1000; i++ {
		u := float64(i) / 1000
		o := engine.GenerateObstacle(0, cfg, 0, fixedRand(u))
		if o.Type == engine.SpikeBoth || o.Type == engine.BlockGap {
			t.Fatalf("draw %v picked zero-weight type %v", u, o.Type)
		}
	}
}

func TestGenerateObstacleConvergesToWeights(t *testing.T) {
	cfg := referenceConfig(t)
	rng := rand.New(rand.NewSource(42))

	const draws = 100000
	for _, score := range []int{0, 5, 15} {
		weights := cfg.Weights(score)
		total := 0
		for _, w := range weights {
			total += w
		}

		counts := make([]int, len(weights))
		for i := 0; i < draws; i++ {
			counts[engine.GenerateObstacle(0, cfg, score, rng).Type]++
		}

		for i, w := range weights {
			want := float64(w) / float64(total)
			got := float64(counts[i]) / draws
			if math.Abs(got-want) > 0.01 {
				t.Errorf("score %d type %v: frequency %.4f, want %.4f", score, engine.ObstacleType(i), got, want)
			}
		}
	}
}

func TestNextGap(t *testing.T) {
	cfg := referenceConfig(t)

	tests := []struct {
		name  string
		score int
		u     float64
		want  float64
	}{
		{"low draw", 0, 0, 180},
		{"mid draw", 0, 0.5, 230},
		{"shrunk upper bound", 25, 0.5, 205},
		{"upper bound floors at min gap", 50, 0.9, 180},
		{"far past floor", 500, 0.9, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.NextGap(cfg, tt.score, tt.u)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NextGap(%d, %v) = %v, want %v", tt.score, tt.u, got, tt.want)
			}
		})
	}
}

func TestObstacleTypesAreExhaustive(t *testing.T) {
	types := engine.ObstacleTypes()
	if len(types) != config.ObstacleKinds {
		t.Fatalf("expected %d obstacle types, got %d", config.ObstacleKinds, len(types))
	}

	cfg := referenceConfig(t)
	for _, typ := range types {
		if typ.String() == "unknown" {
			t.Errorf("type %d has no name", typ)
		}
		floor, ceiling := engine.Obstacle{Type: typ}.Bands(cfg)
		if floor == 0 && ceiling == 0 {
			t.Errorf("type %v has no hazard band", typ)
		}
	}
}
