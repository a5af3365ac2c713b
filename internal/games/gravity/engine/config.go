package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/gravity-switch/internal/config"
)

// ErrInvalidSize is returned when a playfield size is not strictly positive.
var ErrInvalidSize = errors.New("engine: playfield size must be positive")

// Config holds every constant of one game instance, in playfield units.
// It is immutable once built; a resize builds a new one.
type Config struct {
	Width, Height float64
	Scale         float64

	FloorY   float64
	CeilingY float64

	PlayerSize float64
	PlayerX    float64

	Gravity       float64
	MaxFallSpeed  float64
	FlipSpeed     float64
	RotationEase  float64
	SurfaceMargin float64

	BaseSpeed      float64
	MaxSpeed       float64
	SpeedIncrement float64

	ObstacleWidth     float64
	SpikeSize         float64
	BlockHeight       float64
	MinGap            float64
	MaxGap            float64
	GapShrinkPerPoint float64
	SpawnOffset       float64

	difficulty *config.DifficultyManager
}

// BuildConfig derives a Config for a width x height playfield.
// Every size and speed is scaled by min(width/ref.width, height/ref.height)
// so the game feels the same at any resolution.
func BuildConfig(width, height float64, t config.GravityConfig) (Config, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Config{}, fmt.Errorf("%w: got %vx%v", ErrInvalidSize, width, height)
	}

	scale := math.Min(width/t.Reference.Width, height/t.Reference.Height)
	obstacleWidth := t.Obstacles.Width * scale

	return Config{
		Width:  width,
		Height: height,
		Scale:  scale,

		FloorY:   height * t.Playfield.FloorRatio,
		CeilingY: height * t.Playfield.CeilingRatio,

		PlayerSize: t.Player.Size * scale,
		PlayerX:    width * t.Player.XRatio,

		Gravity:       t.Physics.Gravity * scale,
		MaxFallSpeed:  t.Physics.MaxFallSpeed * scale,
		FlipSpeed:     t.Physics.FlipSpeed * scale,
		RotationEase:  t.Physics.RotationEase,
		SurfaceMargin: t.Physics.SurfaceMargin,

		BaseSpeed:      t.Speed.Base * scale,
		MaxSpeed:       t.Speed.Max * scale,
		SpeedIncrement: t.Speed.Increment * scale,

		ObstacleWidth:     obstacleWidth,
		SpikeSize:         t.Obstacles.SpikeSize * scale,
		BlockHeight:       obstacleWidth * t.Obstacles.BlockHeightRatio,
		MinGap:            t.Obstacles.MinGap * scale,
		MaxGap:            t.Obstacles.MaxGap * scale,
		GapShrinkPerPoint: t.Obstacles.GapShrinkPerPoint,
		SpawnOffset:       t.Obstacles.SpawnOffset,

		difficulty: config.NewDifficultyManager(t.Difficulty),
	}, nil
}

// Weights returns the obstacle weights for the difficulty tier of score.
func (c Config) Weights(score int) []int {
	if c.difficulty == nil {
		return config.NewDifficultyManager(config.DifficultyConfig{}).Weights(score)
	}
	return c.difficulty.Weights(score)
}

// HalfPlayer returns half the player size.
func (c Config) HalfPlayer() float64 {
	return c.PlayerSize / 2
}

// FloorRest is the player Y while resting on the floor.
func (c Config) FloorRest() float64 {
	return c.FloorY - c.HalfPlayer() - c.SurfaceMargin
}

// CeilingRest is the player Y while resting on the ceiling.
func (c Config) CeilingRest() float64 {
	return c.CeilingY + c.HalfPlayer() + c.SurfaceMargin
}
