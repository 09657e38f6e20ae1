package sirpf

import (
	"testing"
)

func TestSmootherTracksStaticEstimate(t *testing.T) {
	target := Estimate{X: 60, Y: 40}
	s := NewEstimateSmoother(Estimate{X: 0, Y: 0})

	var smoothed Estimate
	var err error
	for i := 0; i < 100; i++ {
		smoothed, err = s.Smooth(target)
		if err != nil {
			t.Fatal(err)
		}
	}
	if smoothed.X < target.X-5 || smoothed.X > target.X+5 {
		t.Errorf("smoothed X %d did not converge to %d", smoothed.X, target.X)
	}
	if smoothed.Y < target.Y-5 || smoothed.Y > target.Y+5 {
		t.Errorf("smoothed Y %d did not converge to %d", smoothed.Y, target.Y)
	}
}

func TestSmootherStableAtInitialState(t *testing.T) {
	initial := Estimate{X: 25, Y: 25}
	s := NewEstimateSmoother(initial)
	smoothed, err := s.Smooth(initial)
	if err != nil {
		t.Fatal(err)
	}
	if smoothed.X < initial.X-5 || smoothed.X > initial.X+5 ||
		smoothed.Y < initial.Y-5 || smoothed.Y > initial.Y+5 {
		t.Errorf("smoother jumped from its own initial state: %+v", smoothed)
	}
}
