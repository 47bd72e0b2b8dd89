package ppm

import (
	"fmt"
	"math"
)

// DrawLineBresenham renders a line using Bresenham's line algorithm,
// dispatching on the absolute slope to one of five exact-pixel cases:
// horizontal, vertical, diagonal, and the two Bresenham branches for
// shallow and steep slopes.
//
// Both endpoints are validated before any pixel is written; a rejected
// call leaves the image unchanged.
func (m *Image) DrawLineBresenham(c Color, l Line) error {
	if err := ValidateLine(m, l); err != nil {
		return err
	}

	slope := math.Abs(l.Slope())

	switch {
	case slope == 0:
		return m.DrawHorizontalLine(c, l)
	case math.IsInf(slope, 1):
		return m.DrawVerticalLine(c, l)
	case slope == 1:
		return m.drawDiagonalLine(c, l)
	case slope > 1:
		return m.bresenhamSteep(c, l)
	case slope > 0 && slope < 1:
		return m.bresenhamShallow(c, l)
	default:
		// Unreachable: |slope| is non-negative and the cases above are
		// exhaustive. Reaching this is a programming error, not bad input.
		panic(fmt.Sprintf("ppm: no Bresenham case for %v with slope %v", l, slope))
	}
}

// DrawHorizontalLine renders a line whose slope is zero: only the row
// index varies while the column stays fixed.
func (m *Image) DrawHorizontalLine(c Color, l Line) error {
	if err := ValidateLine(m, l); err != nil {
		return err
	}

	l = l.EnsureXLR()
	a, b := l.First, l.Second

	// Only x increments
	for x := a.X; x <= b.X; x++ {
		if err := m.SetPixel(Pt(x, a.Y), c); err != nil {
			return err
		}
	}

	return nil
}

// DrawVerticalLine renders a line whose slope is infinite: only the
// column index varies while the row stays fixed.
func (m *Image) DrawVerticalLine(c Color, l Line) error {
	if err := ValidateLine(m, l); err != nil {
		return err
	}

	l = l.EnsureYLR()
	a, b := l.First, l.Second

	// Only y increments
	for y := a.Y; y <= b.Y; y++ {
		if err := m.SetPixel(Pt(a.X, y), c); err != nil {
			return err
		}
	}

	return nil
}

// drawDiagonalLine renders a line whose absolute slope is exactly one.
func (m *Image) drawDiagonalLine(c Color, l Line) error {
	if err := ValidateLine(m, l); err != nil {
		return err
	}

	l = l.EnsureXLR()
	a, b := l.First, l.Second

	// x and y increment together
	p := a
	for i := a.Y; i <= b.Y; i++ {
		if err := m.SetPixel(p, c); err != nil {
			return err
		}
		p.X++
		p.Y++
	}

	return nil
}

// bresenhamSteep renders a line with |slope| > 1. The endpoints have
// already been validated by DrawLineBresenham.
func (m *Image) bresenhamSteep(c Color, l Line) error {
	l = l.EnsureYLR()
	a, b := l.First, l.Second

	dx, dy := a.Delta(b)
	d := 2*dx - dy
	x := a.X

	for y := a.Y; y <= b.Y; y++ {
		if err := m.SetPixel(Pt(x, y), c); err != nil {
			return err
		}
		if d > 0 {
			d += 2*dx - 2*dy
			x++
		} else {
			d += 2 * dx
		}
	}

	return nil
}

// bresenhamShallow renders a line with 0 < |slope| < 1. The endpoints
// have already been validated by DrawLineBresenham.
func (m *Image) bresenhamShallow(c Color, l Line) error {
	l = l.EnsureXLR()
	a, b := l.First, l.Second

	dx, dy := a.Delta(b)
	d := 2*dy - dx
	y := a.Y

	for x := a.X; x <= b.X; x++ {
		if err := m.SetPixel(Pt(x, y), c); err != nil {
			return err
		}
		if d > 0 {
			d += 2*dy - 2*dx
			y++
		} else {
			d += 2 * dy
		}
	}

	return nil
}

// DrawLineDDA renders a line using the Digital Differential Analyzer
// algorithm: floating-point increments with truncation toward zero at
// each step. Near shallow and steep slope transitions it produces a
// different pixel path than DrawLineBresenham; the two are deliberately
// separate operations.
func (m *Image) DrawLineDDA(c Color, l Line) error {
	if err := ValidateLine(m, l); err != nil {
		return err
	}

	a, b := l.First, l.Second
	dx, dy := a.Delta(b)

	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return m.SetPixel(a, c)
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	x := float64(a.X)
	y := float64(a.Y)
	for i := 0; i <= steps; i++ {
		if err := m.SetPixel(Pt(int(x), int(y)), c); err != nil {
			return err
		}
		x += xInc
		y += yInc
	}

	return nil
}

// DrawTriangle renders the three edges of a triangle with Bresenham
// lines. All corners are validated before any pixel is written.
func (m *Image) DrawTriangle(c Color, t Triangle) error {
	for _, p := range []Point{t.A, t.B, t.C} {
		if err := ValidateCoordinate(m, p); err != nil {
			return err
		}
	}

	if err := m.DrawLineBresenham(c, Line{First: t.A, Second: t.B}); err != nil {
		return err
	}
	if err := m.DrawLineBresenham(c, Line{First: t.B, Second: t.C}); err != nil {
		return err
	}
	return m.DrawLineBresenham(c, Line{First: t.C, Second: t.A})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
