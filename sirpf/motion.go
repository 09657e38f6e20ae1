package sirpf

// predict advances every particle by its own velocity estimate.
// First-order constant-velocity extrapolation, no acceleration term.
func (f *Filter) predict() {
	for i := range f.particles {
		f.particles[i].X += f.particles[i].Vx
		f.particles[i].Y += f.particles[i].Vy
	}
}

// clamp constrains particle positions to the observable frame.
// Velocities are left untouched. Particles pinned to a border keep an exact
// border coordinate, which the weighting stage uses to suppress them.
func (f *Filter) clamp() {
	maxX := float64(f.cfg.FrameWidth - 1)
	maxY := float64(f.cfg.FrameHeight - 1)
	for i := range f.particles {
		f.particles[i].X = clampFloat64(f.particles[i].X, 0, maxX)
		f.particles[i].Y = clampFloat64(f.particles[i].Y, 0, maxY)
	}
}

func clampFloat64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
