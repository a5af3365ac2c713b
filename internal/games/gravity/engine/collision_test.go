package engine_test

import (
	"testing"

	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
)

func TestCollides(t *testing.T) {
	cfg := referenceConfig(t)
	// Reference playfield: floor 525, ceiling 175, player 28 at x=80.
	// Spike band reaches 500 / 200, block band 480 / 220.
	onFloor := cfg.FloorRest()
	onCeiling := cfg.CeilingRest()
	middle := (cfg.FloorY + cfg.CeilingY) / 2

	tests := []struct {
		name    string
		playerY float64
		typ     engine.ObstacleType
		want    bool
	}{
		{"spike floor hits player on floor", onFloor, engine.SpikeFloor, true},
		{"spike floor misses player on ceiling", onCeiling, engine.SpikeFloor, false},
		{"spike ceiling hits player on ceiling", onCeiling, engine.SpikeCeiling, true},
		{"spike ceiling misses player on floor", onFloor, engine.SpikeCeiling, false},
		{"spike both hits floor", onFloor, engine.SpikeBoth, true},
		{"spike both hits ceiling", onCeiling, engine.SpikeBoth, true},
		{"spike both misses middle", middle, engine.SpikeBoth, false},
		{"block floor hits player on floor", onFloor, engine.BlockFloor, true},
		{"block floor misses player on ceiling", onCeiling, engine.BlockFloor, false},
		{"block ceiling hits player on ceiling", onCeiling, engine.BlockCeiling, true},
		{"block gap misses middle", middle, engine.BlockGap, false},
		{"block gap hits floor", onFloor, engine.BlockGap, true},
		{"block gap hits ceiling", onCeiling, engine.BlockGap, true},

		// Bottom edge exactly on the band top counts as a hit.
		{"spike floor flush", 500 - 14, engine.SpikeFloor, true},
		{"spike floor just above", 500 - 14 - 0.01, engine.SpikeFloor, false},
		{"spike ceiling flush", 200 + 14, engine.SpikeCeiling, true},
		{"spike ceiling just below", 200 + 14 + 0.01, engine.SpikeCeiling, false},
		{"spike both flush with floor spikes", 500 - 14, engine.SpikeBoth, true},
		{"spike both just above floor spikes", 500 - 14 - 0.01, engine.SpikeBoth, false},
		{"spike both flush with ceiling spikes", 200 + 14, engine.SpikeBoth, true},
		{"spike both just below ceiling spikes", 200 + 14 + 0.01, engine.SpikeBoth, false},
		{"block floor flush", 480 - 14, engine.BlockFloor, true},
		{"block floor just above", 480 - 14 - 0.01, engine.BlockFloor, false},
		{"block ceiling flush", 220 + 14, engine.BlockCeiling, true},
		{"block ceiling just below", 220 + 14 + 0.01, engine.BlockCeiling, false},
		{"block gap flush with lower block", 480 - 14, engine.BlockGap, true},
		{"block gap flush with upper block", 220 + 14, engine.BlockGap, true},
		{"block gap strictly inside", 220 + 14 + 0.01, engine.BlockGap, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := engine.Player{Y: tt.playerY, GravityDir: 1}
			width := cfg.SpikeSize
			if tt.typ.IsBlock() {
				width = cfg.ObstacleWidth
			}
			o := engine.Obstacle{X: cfg.PlayerX, Type: tt.typ, Width: width}
			if got := engine.Collides(p, o, cfg); got != tt.want {
				t.Errorf("Collides = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollidesRejectsHorizontalSeparation(t *testing.T) {
	cfg := referenceConfig(t)
	// Player spans x in [66, 94]. A block of width 30 spans [x-15, x+15].

	for _, typ := range engine.ObstacleTypes() {
		for _, y := range []float64{cfg.FloorRest(), cfg.CeilingRest(), 350} {
			p := engine.Player{Y: y, GravityDir: 1}

			right := engine.Obstacle{X: 109.01, Type: typ, Width: 30}
			if engine.Collides(p, right, cfg) {
				t.Errorf("%v at y=%v: collided with obstacle to the right", typ, y)
			}
			left := engine.Obstacle{X: 50.99, Type: typ, Width: 30}
			if engine.Collides(p, left, cfg) {
				t.Errorf("%v at y=%v: collided with obstacle to the left", typ, y)
			}
		}
	}
}

func TestCollidesTouchingHorizontalEdge(t *testing.T) {
	cfg := referenceConfig(t)
	p := engine.Player{Y: cfg.FloorRest(), GravityDir: 1}

	// Left edge of the obstacle exactly on the right edge of the player.
	o := engine.Obstacle{X: 109, Type: engine.BlockFloor, Width: 30}
	if !engine.Collides(p, o, cfg) {
		t.Error("touching horizontal edges should collide")
	}
}
