package sirpf

// diffuse adds independent zero-mean Gaussian noise to every state component:
// PositionNoise sigma on x/y, VelocityNoise sigma on vx/vy. Resampling alone
// collapses diversity through duplication; the jitter restores exploration so
// the filter can follow gradual drift. Runs every frame, unconditionally.
func (f *Filter) diffuse() {
	for i := range f.particles {
		f.particles[i].X += f.posNoise.Rand()
		f.particles[i].Y += f.posNoise.Rand()
		f.particles[i].Vx += f.velNoise.Rand()
		f.particles[i].Vy += f.velNoise.Rand()
	}
}
