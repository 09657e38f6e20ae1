package sirpf

import (
	"image"
	"math"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func NewPointFrom(point image.Point) Point {
	return Point{
		X: float64(point.X),
		Y: float64(point.Y),
	}
}

type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func NewRectFrom(rect image.Rectangle) Rectangle {
	return Rectangle{
		X:      float64(rect.Min.X),
		Y:      float64(rect.Min.Y),
		Width:  float64(rect.Dx()),
		Height: float64(rect.Dy()),
	}
}

// Contains reports whether the point lies inside the rectangle (borders included).
func (rect Rectangle) Contains(p Point) bool {
	return p.X >= rect.X && p.X <= rect.X+rect.Width &&
		p.Y >= rect.Y && p.Y <= rect.Y+rect.Height
}

// RGB is an 8-bit per channel pixel color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Estimate is the per-frame best guess of the target location in pixel coordinates.
type Estimate struct {
	X int
	Y int
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(p1.X-p2.X, 2) + math.Pow(p1.Y-p2.Y, 2))
}

// colorDistanceSq returns squared Euclidean distance between two colors in RGB space.
// Range is [0, 3*255^2].
func colorDistanceSq(c1, c2 RGB) float64 {
	dr := float64(c1.R) - float64(c2.R)
	dg := float64(c1.G) - float64(c2.G)
	db := float64(c1.B) - float64(c2.B)
	return dr*dr + dg*dg + db*db
}
