// Package scene provides demo collaborators for the tracking loop: a
// synthetic frame source with a single moving target block and a file-based
// overlay renderer.
package scene

import (
	"io"
	"math"
	"math/rand/v2"

	"github.com/cvtracking/sirpf-go/sirpf"
)

// Source generates synthetic frames containing a solid-color target block
// moving at constant speed and bouncing off the frame borders. Deterministic
// for a fixed seed.
type Source struct {
	width      int
	height     int
	blockSize  int
	target     sirpf.RGB
	background sirpf.RGB

	remaining int
	x, y      float64
	vx, vy    float64
}

// NewSource creates a source emitting the given number of frames. The block
// starts at a random interior position heading in a random direction.
func NewSource(width, height, blockSize, frames int, target, background sirpf.RGB, speed float64, seed uint64) *Source {
	rng := rand.New(rand.NewPCG(seed, seed))
	angle := rng.Float64() * 2 * math.Pi
	margin := float64(blockSize)
	return &Source{
		width:      width,
		height:     height,
		blockSize:  blockSize,
		target:     target,
		background: background,
		remaining:  frames,
		x:          margin + rng.Float64()*(float64(width)-3*margin),
		y:          margin + rng.Float64()*(float64(height)-3*margin),
		vx:         speed * math.Cos(angle),
		vy:         speed * math.Sin(angle),
	}
}

// TargetCenter returns the current center of the target block.
func (s *Source) TargetCenter() sirpf.Point {
	half := float64(s.blockSize) / 2
	return sirpf.Point{X: s.x + half, Y: s.y + half}
}

// Next builds the next frame, or io.EOF once the configured count is reached.
func (s *Source) Next() (*sirpf.Frame, error) {
	if s.remaining <= 0 {
		return nil, io.EOF
	}
	s.remaining--

	frame := sirpf.NewFrame(s.width, s.height, s.background)
	frame.FillRect(sirpf.NewRect(s.x, s.y, float64(s.blockSize), float64(s.blockSize)), s.target)

	s.advance()
	return frame, nil
}

// advance moves the block one step and bounces it off the borders.
func (s *Source) advance() {
	s.x += s.vx
	s.y += s.vy
	maxX := float64(s.width - s.blockSize)
	maxY := float64(s.height - s.blockSize)
	if s.x < 0 {
		s.x = -s.x
		s.vx = -s.vx
	}
	if s.x > maxX {
		s.x = 2*maxX - s.x
		s.vx = -s.vx
	}
	if s.y < 0 {
		s.y = -s.y
		s.vy = -s.vy
	}
	if s.y > maxY {
		s.y = 2*maxY - s.y
		s.vy = -s.vy
	}
}
