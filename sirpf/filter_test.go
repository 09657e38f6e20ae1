package sirpf

import (
	"testing"
)

func TestUniformTargetFrameCentroid(t *testing.T) {
	cfg := testConfig()
	cfg.ParticleCount = 3000
	// Whole frame filled with the exact target color: every particle matches
	// equally, so after one full cycle the estimate must approximate the
	// centroid of the uniformly spread (and clamped) generation.
	frame := NewFrame(cfg.FrameWidth, cfg.FrameHeight, cfg.TargetColor)
	f, err := NewFilter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	estimate, err := f.Step(frame)
	if err != nil {
		t.Fatal(err)
	}
	if estimate.X < 44 || estimate.X > 54 || estimate.Y < 44 || estimate.Y > 54 {
		t.Errorf("estimate %+v too far from frame centroid (49,49)", estimate)
	}
}

func TestConvergenceToTargetBlock(t *testing.T) {
	cfg := testConfig()
	cfg.ParticleCount = 3000
	cfg.PositionNoise = 1.5
	cfg.VelocityNoise = 0.2
	cfg.Seed = 99

	block := NewRect(20, 20, 10, 10)
	frame := NewFrame(cfg.FrameWidth, cfg.FrameHeight, RGB{R: 0, G: 0, B: 255})
	frame.FillRect(block, cfg.TargetColor)

	f, err := NewFilter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var estimate Estimate
	for i := 0; i < 12; i++ {
		estimate, err = f.Step(frame)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}
	if !block.Contains(Point{X: float64(estimate.X), Y: float64(estimate.Y)}) {
		t.Errorf("estimate %+v did not converge into target block %+v", estimate, block)
	}
	if f.Stats().Frames != 12 {
		t.Errorf("wrong frame count: %+v", f.Stats())
	}
}

func TestStepRejectsMismatchedFrame(t *testing.T) {
	cfg := testConfig()
	f, err := NewFilter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	frame := NewFrame(cfg.FrameWidth/2, cfg.FrameHeight, cfg.TargetColor)
	if _, err := f.Step(frame); err == nil {
		t.Error("expected an error for a frame with wrong dimensions")
	}
}

func TestStepKeepsParticlesInBoundsBeforeScoring(t *testing.T) {
	cfg := testConfig()
	cfg.VelocityRange = 40.0 // violent initial motion to stress the clamp
	frame := NewFrame(cfg.FrameWidth, cfg.FrameHeight, cfg.TargetColor)
	f, err := NewFilter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if _, err := f.Step(frame); err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}
}
