package sirpf

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/pkg/errors"
)

// EstimateSmoother smooths the raw per-frame centroid with a 2D Kalman filter.
// The raw centroid jitters with the diffusion noise; the smoother trades a
// little lag for a steadier output track.
type EstimateSmoother struct {
	tracker *kalman_filter.Kalman2D
}

// NewEstimateSmoother creates a smoother seeded at the given estimate.
func NewEstimateSmoother(initial Estimate) *EstimateSmoother {
	/* Kalman filter props */
	dt := 1.0
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(dt, ux, uy, stdDevA, stdDevMx, stdDevMy,
		kalman_filter.WithState2D(float64(initial.X), float64(initial.Y)))
	return &EstimateSmoother{
		tracker: kf,
	}
}

// Smooth runs one predict/update cycle over the raw estimate and returns the
// smoothed state.
func (s *EstimateSmoother) Smooth(raw Estimate) (Estimate, error) {
	s.tracker.Predict()
	err := s.tracker.Update(float64(raw.X), float64(raw.Y))
	if err != nil {
		return raw, errors.Wrap(err, "Can't update estimate smoother")
	}
	stateX, stateY := s.tracker.GetState()
	return Estimate{
		X: int(stateX),
		Y: int(stateY),
	}, nil
}
