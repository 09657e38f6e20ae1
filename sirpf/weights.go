package sirpf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// weigh converts raw per-particle errors into unnormalized resampling weights:
//  1. invert polarity (weight = maxErr - err) so better matches weigh more;
//  2. zero out particles pinned to a frame edge, so hypotheses that left the
//     useful tracking region are never resampled;
//  3. raise to SharpenPower to concentrate mass on close matches.
//
// The result is non-negative; normalization happens in the resampler.
func (f *Filter) weigh() {
	maxErr := floats.Max(f.errs)
	maxX := float64(f.cfg.FrameWidth - 1)
	maxY := float64(f.cfg.FrameHeight - 1)
	for i := range f.particles {
		p := &f.particles[i]
		if p.X == 0 || p.X == maxX || p.Y == 0 || p.Y == maxY {
			f.weights[i] = 0
			continue
		}
		f.weights[i] = math.Pow(maxErr-f.errs[i], f.cfg.SharpenPower)
	}
}
