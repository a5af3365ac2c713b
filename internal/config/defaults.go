package config

import (
	_ "embed"
)

//go:embed defaults/gravity.yaml
var defaultGravityYAML []byte

// ObstacleKinds is the number of obstacle categories every tier must weight.
const ObstacleKinds = 6

// DefaultGravityConfig returns the built-in tuning.
func DefaultGravityConfig() GravityConfig {
	return GravityConfig{
		Reference: ReferenceSize{
			Width:  400,
			Height: 700,
		},
		Playfield: PlayfieldRatios{
			FloorRatio:   0.75,
			CeilingRatio: 0.25,
		},
		Player: PlayerTuning{
			Size:   28,
			XRatio: 0.2,
		},
		Physics: PhysicsTuning{
			Gravity:       0.8,
			MaxFallSpeed:  15,
			FlipSpeed:     12,
			RotationEase:  0.15,
			SurfaceMargin: 2,
		},
		Speed: SpeedTuning{
			Base:      4,
			Max:       10,
			Increment: 0.0005,
		},
		Obstacles: ObstacleTuning{
			Width:             30,
			SpikeSize:         25,
			MinGap:            180,
			MaxGap:            280,
			GapShrinkPerPoint: 2,
			SpawnOffset:       50,
			BlockHeightRatio:  1.5,
		},
		Difficulty: DifficultyConfig{
			Tiers: DefaultTiers(),
		},
	}
}

// DefaultTiers returns the easy/medium/hard obstacle tiers.
func DefaultTiers() []Tier {
	return []Tier{
		{MinScore: 0, Weights: []int{3, 3, 0, 1, 1, 0}},  // mostly single spikes
		{MinScore: 5, Weights: []int{2, 2, 2, 2, 2, 1}},  // balanced
		{MinScore: 15, Weights: []int{1, 1, 3, 2, 2, 2}}, // double spikes and blocks
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultGravityYAML
}
