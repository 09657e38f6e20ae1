package sirpf

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrDegenerateWeights is reported when the shaped weight vector sums to zero:
// either no particle matched at all, the error surface was perfectly flat, or
// every particle was pinned to a frame edge. Resampling is undefined in that
// state and the caller must choose a recovery path instead of dividing by zero.
var ErrDegenerateWeights = errors.New("total particle weight is zero")

// resample draws the next generation from the current one with systematic
// resampling over the cumulative weight vector. High-weight particles get
// duplicated, low-weight ones vanish; cardinality stays exactly N. Returns the
// truncated centroid of the new generation as the frame's location estimate.
func (f *Filter) resample() (Estimate, error) {
	total := floats.Sum(f.weights)
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return Estimate{}, errors.Errorf("non-finite total weight %f", total)
	}
	if total <= 0 {
		return Estimate{}, errors.Wrap(ErrDegenerateWeights, "can't resample")
	}

	floats.CumSum(f.cumWeights, f.weights)

	n := len(f.particles)
	step := total / float64(n)
	offset := f.rng.Float64() * step

	idx := 0
	for i := 0; i < n; i++ {
		target := offset + float64(i)*step
		for idx < n-1 && f.cumWeights[idx] < target {
			idx++
		}
		f.scratch[i] = f.particles[idx]
	}
	copy(f.particles, f.scratch)

	return f.centroid(), nil
}

// centroid returns the arithmetic mean position of the current generation,
// truncated to integer pixel coordinates.
func (f *Filter) centroid() Estimate {
	sumX := 0.0
	sumY := 0.0
	for i := range f.particles {
		sumX += f.particles[i].X
		sumY += f.particles[i].Y
	}
	n := float64(len(f.particles))
	return Estimate{
		X: int(sumX / n),
		Y: int(sumY / n),
	}
}
