package sirpf

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// FrameSource produces a finite sequence of frames. Next returns io.EOF when
// the stream is exhausted; that is the expected clean termination signal, not
// an error.
type FrameSource interface {
	Next() (*Frame, error)
}

// Renderer accepts the per-frame output: the estimate and the particle cloud.
// The returned flag requests termination of the tracking loop (e.g. the user
// closed the display window).
type Renderer interface {
	Render(estimate Estimate, particles []Particle) (stop bool, err error)
}

// FuncRenderer adapts a plain function to the Renderer interface.
type FuncRenderer func(estimate Estimate, particles []Particle) (bool, error)

func (fn FuncRenderer) Render(estimate Estimate, particles []Particle) (bool, error) {
	return fn(estimate, particles)
}

// Tracker drives the filter over a frame stream: fetch, step, smooth
// (optionally), emit. Single-threaded and frame-sequential; each frame is
// fully processed before the next is requested.
type Tracker struct {
	runID        uuid.UUID
	filter       *Filter
	smoother     *EstimateSmoother
	smooth       bool
	log          zerolog.Logger
	lastEstimate Estimate
}

// TrackerOption mutates tracker construction.
type TrackerOption func(*Tracker)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(log zerolog.Logger) TrackerOption {
	return func(t *Tracker) {
		t.log = log
	}
}

// WithSmoothing enables Kalman smoothing of the emitted estimate. The default
// emits the raw particle centroid.
func WithSmoothing() TrackerOption {
	return func(t *Tracker) {
		t.smooth = true
	}
}

// NewTracker creates a tracker around a fresh filter.
func NewTracker(cfg Config, opts ...TrackerOption) (*Tracker, error) {
	filter, err := NewFilter(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "can't create filter")
	}
	t := &Tracker{
		runID:  uuid.New(),
		filter: filter,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// RunID returns the identifier of this tracking run.
func (t *Tracker) RunID() uuid.UUID {
	return t.runID
}

// Filter returns the underlying particle filter.
func (t *Tracker) Filter() *Filter {
	return t.filter
}

// Estimate returns the last emitted estimate.
func (t *Tracker) Estimate() Estimate {
	return t.lastEstimate
}

// Run processes frames until the source is exhausted, the renderer requests a
// stop, the context is cancelled, or a stage fails. Cancellation is checked
// once per frame boundary so a cancelled run never exposes a half-updated
// particle generation.
func (t *Tracker) Run(ctx context.Context, source FrameSource, renderer Renderer) error {
	t.log.Info().
		Str("runID", t.runID.String()).
		Int("particles", t.filter.Config().ParticleCount).
		Int("frameWidth", t.filter.Config().FrameWidth).
		Int("frameHeight", t.filter.Config().FrameHeight).
		Msg("tracking run started")

	for {
		select {
		case <-ctx.Done():
			t.logSummary("cancelled")
			return ctx.Err()
		default:
		}

		frame, err := source.Next()
		if err == io.EOF {
			t.logSummary("stream exhausted")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "can't fetch next frame")
		}

		degenerateBefore := t.filter.Stats().DegenerateFrames
		estimate, err := t.filter.Step(frame)
		if err != nil {
			return errors.Wrapf(err, "update cycle failed on frame %d", t.filter.Stats().Frames)
		}
		if t.filter.Stats().DegenerateFrames > degenerateBefore {
			t.log.Warn().
				Uint64("frame", t.filter.Stats().Frames).
				Msg("degenerate weights, retained prior generation with diffusion-only update")
		}

		if t.smooth {
			if t.smoother == nil {
				t.smoother = NewEstimateSmoother(estimate)
			}
			estimate, err = t.smoother.Smooth(estimate)
			if err != nil {
				return errors.Wrap(err, "can't smooth estimate")
			}
		}
		t.lastEstimate = estimate

		stop, err := renderer.Render(estimate, t.filter.Particles())
		if err != nil {
			return errors.Wrap(err, "can't render frame")
		}
		if stop {
			t.logSummary("stop requested")
			return nil
		}
	}
}

func (t *Tracker) logSummary(reason string) {
	stats := t.filter.Stats()
	t.log.Info().
		Str("runID", t.runID.String()).
		Str("reason", reason).
		Uint64("frames", stats.Frames).
		Uint64("degenerateFrames", stats.DegenerateFrames).
		Int("estimateX", t.lastEstimate.X).
		Int("estimateY", t.lastEstimate.Y).
		Msg("tracking run finished")
}
