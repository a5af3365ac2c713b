package engine

import (
	"math"

	"github.com/vovakirdan/gravity-switch/internal/core"
)

// Effect constants, per reference frame.
const (
	ParticleGravity = 0.1
	ParticleFade    = 0.03
	TrailLength     = 15

	FlipBurstSize  = 8
	DeathBurstSize = 20
)

// Particle colors.
const (
	PlayerColor = core.ColorBrightGreen
	HazardColor = core.ColorBrightRed
)

// StepParticles advances every particle by dt and drops the ones that
// have faded out. The input slice is not modified.
func StepParticles(ps []Particle, dt float64) []Particle {
	out := make([]Particle, 0, len(ps))
	for _, p := range ps {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += ParticleGravity * dt
		p.Alpha -= ParticleFade * dt
		if p.Alpha > 0 {
			out = append(out, p)
		}
	}
	return out
}

// StepTrail prepends the current position, keeps at most maxLen points
// and reassigns alphas by rank: the point at index i gets 1 - i/maxLen.
func StepTrail(trail []TrailPoint, x, y float64, maxLen int) []TrailPoint {
	if maxLen <= 0 {
		return []TrailPoint{}
	}
	n := min(len(trail)+1, maxLen)
	out := make([]TrailPoint, n)
	out[0] = TrailPoint{X: x, Y: y}
	copy(out[1:], trail)
	for i := range out {
		out[i].Alpha = 1 - float64(i)/float64(maxLen)
	}
	return out
}

// FlipParticles spawns a small fan of particles in the new gravity
// direction. dir is the gravity direction after the flip.
func FlipParticles(x, y float64, dir int, rng Rand) []Particle {
	ps := make([]Particle, FlipBurstSize)
	for i := range ps {
		angle := math.Pi*float64(i)/4 + rng.Float64()*0.3
		speed := 2 + rng.Float64()*3
		ps[i] = Particle{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed * 0.5,
			VY:     math.Sin(angle) * speed * float64(dir),
			Radius: 2 + rng.Float64()*2,
			Alpha:  1,
			Color:  PlayerColor,
		}
	}
	return ps
}

// DeathParticles spawns a radial burst mixing player and hazard colors.
func DeathParticles(x, y float64, rng Rand) []Particle {
	ps := make([]Particle, DeathBurstSize)
	for i := range ps {
		angle := rng.Float64() * 2 * math.Pi
		speed := 3 + rng.Float64()*5
		p := Particle{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Radius: 3 + rng.Float64()*4,
			Alpha:  1,
			Color:  PlayerColor,
		}
		if rng.Float64() > 0.5 {
			p.Color = HazardColor
		}
		ps[i] = p
	}
	return ps
}
