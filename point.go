package ppm

import (
	"fmt"
	"math"
)

// Point is a position on the integer pixel grid. X indexes rows and Y
// indexes columns (see the package documentation for the axis convention).
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Delta returns (dx, dy) of q relative to p.
func (p Point) Delta(q Point) (dx, dy int) {
	return q.X - p.X, q.Y - p.Y
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x:%d, y:%d)", p.X, p.Y)
}

// Line is an ordered pair of points. No ordering invariant holds between
// First and Second; the rasterizers normalize internally via EnsureXLR
// and EnsureYLR.
type Line struct {
	First, Second Point
}

// NewLine creates a line from the endpoint components.
func NewLine(x1, y1, x2, y2 int) Line {
	return Line{First: Pt(x1, y1), Second: Pt(x2, y2)}
}

// Slope returns (Second.Y - First.Y) / (Second.X - First.X), or +Inf
// when the X delta is zero.
func (l Line) Slope() float64 {
	dx, dy := l.First.Delta(l.Second)
	if dx == 0 {
		return math.Inf(1)
	}
	return float64(dy) / float64(dx)
}

// EnsureXLR returns a copy of the line with endpoints ordered so that
// First has the lesser X.
func (l Line) EnsureXLR() Line {
	if l.First.X > l.Second.X {
		return Line{First: l.Second, Second: l.First}
	}
	return l
}

// EnsureYLR returns a copy of the line with endpoints ordered so that
// First has the lesser Y.
func (l Line) EnsureYLR() Line {
	if l.First.Y > l.Second.Y {
		return Line{First: l.Second, Second: l.First}
	}
	return l
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.First, l.Second)
}

// Circle is a center point plus a non-negative radius in pixels.
type Circle struct {
	Center Point
	Radius int
}

// Triangle is an ordered triple of corner points.
type Triangle struct {
	A, B, C Point
}
