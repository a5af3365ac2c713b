package engine

import "github.com/vovakirdan/gravity-switch/internal/core"

// PlayerBox returns the axis-aligned bounds of the player.
func PlayerBox(p Player, cfg Config) core.Box {
	half := cfg.HalfPlayer()
	return core.CenteredBox(cfg.PlayerX, p.Y, half, half)
}

// Collides reports whether the player overlaps the hazard of o.
// All comparisons are inclusive: touching edges count as a hit.
func Collides(p Player, o Obstacle, cfg Config) bool {
	pb := PlayerBox(p, cfg)
	if pb.Right < o.Left() || pb.Left > o.Right() {
		return false
	}

	floor, ceiling := o.Bands(cfg)
	if floor > 0 && pb.Bottom >= cfg.FloorY-floor {
		return true
	}
	if ceiling > 0 && pb.Top <= cfg.CeilingY+ceiling {
		return true
	}
	return false
}
