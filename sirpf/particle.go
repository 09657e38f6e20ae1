package sirpf

import (
	"math/rand/v2"
)

// Particle is a single target hypothesis: pixel position and per-frame
// pixel displacement. Particles carry no identity beyond their slice position.
type Particle struct {
	X  float64
	Y  float64
	Vx float64
	Vy float64
}

// Position returns particle's position as a point
func (p Particle) Position() Point {
	return Point{X: p.X, Y: p.Y}
}

// newParticleSet draws the initial generation: positions uniform over the
// whole frame, velocities uniform over [-VelocityRange/2, +VelocityRange/2)
// per axis. No starting hypothesis is favored since nothing is known about
// the target before the first frame.
func newParticleSet(cfg Config, rng *rand.Rand) []Particle {
	particles := make([]Particle, cfg.ParticleCount)
	for i := range particles {
		particles[i] = Particle{
			X:  rng.Float64() * float64(cfg.FrameWidth),
			Y:  rng.Float64() * float64(cfg.FrameHeight),
			Vx: (rng.Float64() - 0.5) * cfg.VelocityRange,
			Vy: (rng.Float64() - 0.5) * cfg.VelocityRange,
		}
	}
	return particles
}
