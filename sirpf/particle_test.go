package sirpf

import (
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ParticleCount = 2000
	cfg.FrameWidth = 100
	cfg.FrameHeight = 100
	cfg.PositionNoise = 2.0
	cfg.VelocityNoise = 0.2
	cfg.Seed = 7
	return cfg
}

func TestInitializationBounds(t *testing.T) {
	cfg := testConfig()
	f, err := NewFilter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Particles()) != cfg.ParticleCount {
		t.Fatalf("wrong particle count: %d, expected %d", len(f.Particles()), cfg.ParticleCount)
	}
	halfRange := cfg.VelocityRange / 2
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= float64(cfg.FrameWidth) {
			t.Errorf("particle %d X out of prior range: %v", i, p.X)
		}
		if p.Y < 0 || p.Y >= float64(cfg.FrameHeight) {
			t.Errorf("particle %d Y out of prior range: %v", i, p.Y)
		}
		if p.Vx < -halfRange || p.Vx > halfRange {
			t.Errorf("particle %d Vx out of prior range: %v", i, p.Vx)
		}
		if p.Vy < -halfRange || p.Vy > halfRange {
			t.Errorf("particle %d Vy out of prior range: %v", i, p.Vy)
		}
	}
}

func TestInitializationReproducible(t *testing.T) {
	cfg := testConfig()
	f1, err := NewFilter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := NewFilter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range f1.Particles() {
		if f1.Particles()[i] != f2.Particles()[i] {
			t.Fatalf("same seed produced different particle %d: %v vs %v", i, f1.Particles()[i], f2.Particles()[i])
		}
	}
}

func TestClampIdempotence(t *testing.T) {
	cfg := testConfig()
	f, err := NewFilter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Push a few hypotheses far outside the frame
	f.particles[0] = Particle{X: -42.5, Y: 250.0, Vx: 1, Vy: -1}
	f.particles[1] = Particle{X: 1e6, Y: -1e6}
	f.particles[2] = Particle{X: 99.0, Y: 0.0}

	f.clamp()
	once := make([]Particle, len(f.particles))
	copy(once, f.particles)

	f.clamp()
	for i := range f.particles {
		if f.particles[i] != once[i] {
			t.Fatalf("clamp is not idempotent for particle %d: %v vs %v", i, f.particles[i], once[i])
		}
	}

	maxX := float64(cfg.FrameWidth - 1)
	maxY := float64(cfg.FrameHeight - 1)
	for i, p := range f.particles {
		if p.X < 0 || p.X > maxX || p.Y < 0 || p.Y > maxY {
			t.Errorf("particle %d out of bounds after clamp: %v", i, p)
		}
	}
	// Velocities must survive clamping untouched
	if f.particles[0].Vx != 1 || f.particles[0].Vy != -1 {
		t.Errorf("clamp modified velocity: %v", f.particles[0])
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero particles", func(c *Config) { c.ParticleCount = 0 }},
		{"zero width", func(c *Config) { c.FrameWidth = 0 }},
		{"negative height", func(c *Config) { c.FrameHeight = -10 }},
		{"negative noise", func(c *Config) { c.PositionNoise = -1 }},
		{"zero sharpen power", func(c *Config) { c.SharpenPower = 0 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if _, err := NewFilter(cfg); err == nil {
			t.Errorf("%s: expected construction to fail", tc.name)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}
