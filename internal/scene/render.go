package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/cvtracking/sirpf-go/sirpf"
)

// PPMRenderer writes every Nth frame to disk as a binary PPM image with the
// particle cloud and the estimate overlaid on a dark canvas. It never
// requests a stop; termination stays with the frame source or the caller.
type PPMRenderer struct {
	dir    string
	width  int
	height int
	every  int

	frameIdx int
	written  int
}

// NewPPMRenderer creates the output directory and a renderer dumping every
// `every`-th frame into it.
func NewPPMRenderer(dir string, width, height, every int) (*PPMRenderer, error) {
	if every < 1 {
		every = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "can't create output directory %s", dir)
	}
	return &PPMRenderer{
		dir:    dir,
		width:  width,
		height: height,
		every:  every,
	}, nil
}

// Written returns the number of images written so far.
func (r *PPMRenderer) Written() int {
	return r.written
}

// Render implements sirpf.Renderer.
func (r *PPMRenderer) Render(estimate sirpf.Estimate, particles []sirpf.Particle) (bool, error) {
	idx := r.frameIdx
	r.frameIdx++
	if idx%r.every != 0 {
		return false, nil
	}

	canvas := make([]byte, r.width*r.height*3)
	for i := 0; i < len(canvas); i += 3 {
		canvas[i] = 16
		canvas[i+1] = 16
		canvas[i+2] = 16
	}
	for _, p := range particles {
		r.plot(canvas, int(p.X), int(p.Y), 0, 200, 0)
	}
	// Estimate cross, drawn last so it stays visible over the cloud
	for d := -4; d <= 4; d++ {
		r.plot(canvas, estimate.X+d, estimate.Y, 255, 40, 40)
		r.plot(canvas, estimate.X, estimate.Y+d, 255, 40, 40)
	}

	name := filepath.Join(r.dir, fmt.Sprintf("frame_%05d.ppm", idx))
	if err := r.writePPM(name, canvas); err != nil {
		return false, errors.Wrapf(err, "can't write %s", name)
	}
	r.written++
	return false, nil
}

func (r *PPMRenderer) plot(canvas []byte, x, y int, red, green, blue byte) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	offset := (y*r.width + x) * 3
	canvas[offset] = red
	canvas[offset+1] = green
	canvas[offset+2] = blue
}

func (r *PPMRenderer) writePPM(name string, canvas []byte) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := fmt.Fprintf(writer, "P6\n%d %d\n255\n", r.width, r.height); err != nil {
		return err
	}
	if _, err := writer.Write(canvas); err != nil {
		return err
	}
	return writer.Flush()
}
