package sirpf

import (
	"github.com/pkg/errors"
)

// Config holds the filter parameters. All values are fixed at construction time.
type Config struct {
	// Number of particles. Constant across the whole run
	ParticleCount int
	// Observable frame dimensions in pixels
	FrameWidth  int
	FrameHeight int
	// Span of the initial uniform velocity prior: each axis is drawn from
	// [-VelocityRange/2, +VelocityRange/2)
	VelocityRange float64
	// Standard deviations of the post-resampling Gaussian diffusion
	PositionNoise float64
	VelocityNoise float64
	// Reference color the likelihood model scores against
	TargetColor RGB
	// Exponent applied to shaped weights. Higher values sharpen the
	// distribution and speed up convergence but lose fast-moving targets easier
	SharpenPower float64
	// Seed for the filter's pseudorandom source
	Seed uint64
}

// DefaultConfig returns a configuration for a 640x480 stream tracking a pure red target.
func DefaultConfig() Config {
	return Config{
		ParticleCount: 5000,
		FrameWidth:    640,
		FrameHeight:   480,
		VelocityRange: 1.0,
		PositionNoise: 10.0,
		VelocityNoise: 0.5,
		TargetColor:   RGB{R: 255, G: 0, B: 0},
		SharpenPower:  4.0,
		Seed:          42,
	}
}

// Validate checks config values which would make the filter undefined.
func (cfg Config) Validate() error {
	if cfg.ParticleCount < 1 {
		return errors.Errorf("particle count must be positive, got %d", cfg.ParticleCount)
	}
	if cfg.FrameWidth < 1 || cfg.FrameHeight < 1 {
		return errors.Errorf("frame dimensions must be positive, got %dx%d", cfg.FrameWidth, cfg.FrameHeight)
	}
	if cfg.VelocityRange < 0 {
		return errors.Errorf("velocity range must be non-negative, got %f", cfg.VelocityRange)
	}
	if cfg.PositionNoise < 0 || cfg.VelocityNoise < 0 {
		return errors.Errorf("noise deviations must be non-negative, got pos=%f vel=%f", cfg.PositionNoise, cfg.VelocityNoise)
	}
	if cfg.SharpenPower <= 0 {
		return errors.Errorf("sharpen power must be positive, got %f", cfg.SharpenPower)
	}
	return nil
}
