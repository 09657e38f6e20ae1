package sirpf

import (
	"github.com/pkg/errors"
)

// Frame is a read-only RGB pixel grid for a single frame, stored row-major.
// The filter never mutates it.
type Frame struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewFrame creates a frame of the given dimensions filled with a single color.
func NewFrame(width, height int, fill RGB) *Frame {
	pix := make([]RGB, width*height)
	for i := range pix {
		pix[i] = fill
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    pix,
	}
}

// At returns the pixel at (x, y). Callers must stay within bounds.
func (fr *Frame) At(x, y int) RGB {
	return fr.Pix[y*fr.Width+x]
}

// Set overwrites the pixel at (x, y)
func (fr *Frame) Set(x, y int, c RGB) {
	fr.Pix[y*fr.Width+x] = c
}

// FillRect paints every pixel inside rect (intersected with the frame) with c.
func (fr *Frame) FillRect(rect Rectangle, c RGB) {
	x0 := maxInt(int(rect.X), 0)
	y0 := maxInt(int(rect.Y), 0)
	x1 := minInt(int(rect.X+rect.Width), fr.Width)
	y1 := minInt(int(rect.Y+rect.Height), fr.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fr.Pix[y*fr.Width+x] = c
		}
	}
}

// score fills the per-particle error buffer with squared RGB distances
// between the frame pixel under each particle and the reference target color.
// Lower error means better match. Positions must already be clamped;
// truncation to integer indices therefore never leaves the frame, and an
// out-of-range index is a logic defect reported as an invariant violation.
func (f *Filter) score(frame *Frame) error {
	if frame.Width != f.cfg.FrameWidth || frame.Height != f.cfg.FrameHeight {
		return errors.Errorf("frame size %dx%d does not match configured %dx%d",
			frame.Width, frame.Height, f.cfg.FrameWidth, f.cfg.FrameHeight)
	}
	for i := range f.particles {
		x := int(f.particles[i].X)
		y := int(f.particles[i].Y)
		if x < 0 || x >= frame.Width || y < 0 || y >= frame.Height {
			return errors.Errorf("particle %d at (%d, %d) outside %dx%d frame after clamp",
				i, x, y, frame.Width, frame.Height)
		}
		f.errs[i] = colorDistanceSq(frame.At(x, y), f.cfg.TargetColor)
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
