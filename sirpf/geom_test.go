package sirpf

import (
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestEuclideanDistance(t *testing.T) {
	p1 := Point{X: 341, Y: 264}
	p2 := Point{X: 421, Y: 427}
	correctAnswer := 181.57367
	answer := euclideanDistance(p1, p2)
	if math.Abs(answer-correctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correctAnswer)
	}
}

func TestColorDistanceSq(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}
	blue := RGB{R: 0, G: 0, B: 255}
	if d := colorDistanceSq(red, red); d != 0 {
		t.Errorf("distance to itself should be 0, got %v", d)
	}
	correctAnswer := 2 * 255.0 * 255.0
	if d := colorDistanceSq(red, blue); math.Abs(d-correctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", d, correctAnswer)
	}
	maxAnswer := 3 * 255.0 * 255.0
	if d := colorDistanceSq(RGB{R: 255, G: 255, B: 255}, RGB{}); math.Abs(d-maxAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", d, maxAnswer)
	}
}

func TestRectContains(t *testing.T) {
	rect := NewRect(20, 20, 10, 10)
	inside := []Point{{X: 20, Y: 20}, {X: 25, Y: 29}, {X: 30, Y: 30}}
	for _, p := range inside {
		if !rect.Contains(p) {
			t.Errorf("point %v should be inside %v", p, rect)
		}
	}
	outside := []Point{{X: 19.9, Y: 25}, {X: 25, Y: 31}, {X: 0, Y: 0}}
	for _, p := range outside {
		if rect.Contains(p) {
			t.Errorf("point %v should be outside %v", p, rect)
		}
	}
}
