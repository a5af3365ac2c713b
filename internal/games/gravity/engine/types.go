// Package engine is the deterministic simulation of the gravity game.
// It owns the game state machine, per-frame physics, obstacle generation
// and collision detection. It performs no I/O: persistence, audio and
// drawing are reached through narrow collaborator interfaces.
package engine

import (
	"time"

	"github.com/vovakirdan/gravity-switch/internal/core"
)

// ReferenceFrame is the frame duration that dt = 1.0 stands for.
const ReferenceFrame = time.Second / 60

// DeltaFrames converts a wall-clock delta into a dt multiplier.
func DeltaFrames(elapsed time.Duration) float64 {
	return float64(elapsed) / float64(ReferenceFrame)
}

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first tap
	PhasePlaying               // Physics running
	PhaseGameOver              // Frozen after a collision; next tap restarts
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ObstacleType is the closed set of obstacle shapes.
// The order is significant: difficulty weights are listed in this order.
type ObstacleType int

const (
	SpikeFloor ObstacleType = iota
	SpikeCeiling
	SpikeBoth
	BlockFloor
	BlockCeiling
	BlockGap

	obstacleTypeCount
)

// ObstacleTypes lists every obstacle type in enumeration order.
func ObstacleTypes() []ObstacleType {
	types := make([]ObstacleType, obstacleTypeCount)
	for i := range types {
		types[i] = ObstacleType(i)
	}
	return types
}

// String returns the obstacle type tag.
func (t ObstacleType) String() string {
	switch t {
	case SpikeFloor:
		return "spike_floor"
	case SpikeCeiling:
		return "spike_ceiling"
	case SpikeBoth:
		return "spike_both"
	case BlockFloor:
		return "block_floor"
	case BlockCeiling:
		return "block_ceiling"
	case BlockGap:
		return "block_gap"
	default:
		return "unknown"
	}
}

// IsBlock reports whether the obstacle is a block rather than a spike.
func (t ObstacleType) IsBlock() bool {
	switch t {
	case BlockFloor, BlockCeiling, BlockGap:
		return true
	default:
		return false
	}
}

// Player is the controlled square. Its X position is fixed by Config.
type Player struct {
	Y              float64
	VY             float64
	GravityDir     int // +1 pulls toward the floor, -1 toward the ceiling
	Rotation       float64
	TargetRotation float64
}

// Obstacle scrolls from right to left. X is its horizontal center.
type Obstacle struct {
	X      float64
	Type   ObstacleType
	Passed bool
	Width  float64
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
	Color  core.Color
}

// TrailPoint is one past player position.
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}

// GameData is the complete simulation state.
type GameData struct {
	State          Phase
	Config         Config
	Player         Player
	Obstacles      []Obstacle
	Particles      []Particle
	Trail          []TrailPoint
	Score          int
	HighScore      int
	Distance       float64
	Speed          float64
	NextObstacleIn float64
}

// Clone returns a deep copy that shares no slices with d.
func (d GameData) Clone() GameData {
	d.Obstacles = append([]Obstacle(nil), d.Obstacles...)
	d.Particles = append([]Particle(nil), d.Particles...)
	d.Trail = append([]TrailPoint(nil), d.Trail...)
	return d
}

// Event is a discrete notification for the audio collaborator.
type Event int

const (
	EventFlip Event = iota + 1
	EventScore
	EventDeath
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventFlip:
		return "flip"
	case EventScore:
		return "score"
	case EventDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Rand is the random source used for obstacle and particle draws.
// *math/rand.Rand satisfies it. Float64 must return values in [0, 1).
type Rand interface {
	Float64() float64
}
