// Package config provides YAML-based tuning loading and difficulty tier
// management for the gravity game.
package config

// GravityConfig contains all tunable parameters of the game.
// Values under Player, Physics, Speed and Obstacles are expressed at the
// reference resolution and are multiplied by the playfield scale factor.
type GravityConfig struct {
	Reference  ReferenceSize    `yaml:"reference"`
	Playfield  PlayfieldRatios  `yaml:"playfield"`
	Player     PlayerTuning     `yaml:"player"`
	Physics    PhysicsTuning    `yaml:"physics"`
	Speed      SpeedTuning      `yaml:"speed"`
	Obstacles  ObstacleTuning   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ReferenceSize is the playfield size at which the scale factor is 1.
type ReferenceSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayfieldRatios places the floor and ceiling as fractions of the height.
type PlayfieldRatios struct {
	FloorRatio   float64 `yaml:"floor_ratio"`
	CeilingRatio float64 `yaml:"ceiling_ratio"`
}

// PlayerTuning defines the player square.
type PlayerTuning struct {
	Size   float64 `yaml:"size"`
	XRatio float64 `yaml:"x_ratio"` // Fixed X as a fraction of the width
}

// PhysicsTuning defines vertical motion parameters.
type PhysicsTuning struct {
	Gravity       float64 `yaml:"gravity"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	FlipSpeed     float64 `yaml:"flip_speed"`
	RotationEase  float64 `yaml:"rotation_ease"`  // Unscaled, fraction per frame
	SurfaceMargin float64 `yaml:"surface_margin"` // Unscaled gap kept above floor/below ceiling
}

// SpeedTuning defines horizontal scroll speed.
type SpeedTuning struct {
	Base      float64 `yaml:"base"`
	Max       float64 `yaml:"max"`
	Increment float64 `yaml:"increment"`
}

// ObstacleTuning defines obstacle geometry and spacing.
type ObstacleTuning struct {
	Width             float64 `yaml:"width"`
	SpikeSize         float64 `yaml:"spike_size"`
	MinGap            float64 `yaml:"min_gap"`
	MaxGap            float64 `yaml:"max_gap"`
	GapShrinkPerPoint float64 `yaml:"gap_shrink_per_point"` // Unscaled
	SpawnOffset       float64 `yaml:"spawn_offset"`         // Unscaled, past the right edge
	BlockHeightRatio  float64 `yaml:"block_height_ratio"`   // Block height / obstacle width
}

// DifficultyConfig holds the score tiers driving obstacle selection.
type DifficultyConfig struct {
	Tiers []Tier `yaml:"tiers"`
}

// Tier assigns obstacle weights to every score at or above MinScore.
// Weights follow the obstacle enumeration order: spike-floor, spike-ceiling,
// spike-both, block-floor, block-ceiling, block-gap.
type Tier struct {
	MinScore int   `yaml:"min_score"`
	Weights  []int `yaml:"weights"`
}
