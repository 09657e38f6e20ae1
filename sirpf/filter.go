// Package sirpf implements a Sequential Importance Resampling particle
// filter for tracking a single color-matched target across a frame stream.
package sirpf

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Filter is a Sequential Importance Resampling particle filter estimating the
// position of a single color-matched target across a frame stream. It owns
// the particle set exclusively and mutates it in place; all scratch buffers
// are reused across frames. Not safe for concurrent use, by contract the loop
// is frame-sequential.
type Filter struct {
	cfg Config

	particles []Particle
	scratch   []Particle

	// Per-frame buffers, valid only within one Step
	errs       []float64
	weights    []float64
	cumWeights []float64

	rng      *rand.Rand
	posNoise distuv.Normal
	velNoise distuv.Normal

	frames           uint64
	degenerateFrames uint64
}

// Stats reports per-run filter counters.
type Stats struct {
	// Frames processed so far
	Frames uint64
	// Frames which hit the degenerate-weights fallback path
	DegenerateFrames uint64
}

// NewFilter creates a filter with an initial uniform particle generation.
// All pseudorandom draws (initialization, resampling offset, diffusion) flow
// through a single PCG source derived from cfg.Seed.
func NewFilter(cfg Config) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid filter config")
	}
	src := rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)
	rng := rand.New(src)
	f := &Filter{
		cfg:        cfg,
		particles:  newParticleSet(cfg, rng),
		scratch:    make([]Particle, cfg.ParticleCount),
		errs:       make([]float64, cfg.ParticleCount),
		weights:    make([]float64, cfg.ParticleCount),
		cumWeights: make([]float64, cfg.ParticleCount),
		rng:        rng,
		posNoise:   distuv.Normal{Mu: 0, Sigma: cfg.PositionNoise, Src: src},
		velNoise:   distuv.Normal{Mu: 0, Sigma: cfg.VelocityNoise, Src: src},
	}
	return f, nil
}

// Config returns the filter's configuration.
func (f *Filter) Config() Config {
	return f.cfg
}

// Particles returns the current generation. Be careful: this is not a copy
// but a view into the filter's own buffer, valid until the next Step.
func (f *Filter) Particles() []Particle {
	return f.particles
}

// Stats returns run counters accumulated so far.
func (f *Filter) Stats() Stats {
	return Stats{
		Frames:           f.frames,
		DegenerateFrames: f.degenerateFrames,
	}
}

// Step runs one full update cycle against the given frame:
// predict, clamp, score, weigh, resample, diffuse, in that fixed order.
// When the weight vector degenerates to zero sum the prior generation is
// retained, the estimate falls back to its centroid and only the diffusion
// update applies; the event is counted in Stats. Any other stage failure
// aborts the frame with a diagnosable error instead of emitting a corrupted
// estimate.
func (f *Filter) Step(frame *Frame) (Estimate, error) {
	f.predict()
	f.clamp()
	if err := f.score(frame); err != nil {
		return Estimate{}, errors.Wrap(err, "likelihood scoring failed")
	}
	f.weigh()

	estimate, err := f.resample()
	if err != nil {
		if errors.Cause(err) != ErrDegenerateWeights {
			return Estimate{}, errors.Wrap(err, "resampling failed")
		}
		// Fallback: keep the prior generation and let diffusion re-spread it
		f.degenerateFrames++
		estimate = f.centroid()
	}

	f.diffuse()
	f.frames++
	return estimate, nil
}
