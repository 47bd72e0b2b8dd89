package ppm

import (
	"errors"
	"math"
	"testing"
)

func TestDrawCircleSymmetry(t *testing.T) {
	img := newCanvas(t, 64)
	center := Pt(32, 32)
	radius := 20
	if err := img.DrawCircle(Black, Circle{Center: center, Radius: radius}); err != nil {
		t.Fatalf("DrawCircle failed: %v", err)
	}

	pts := paintedPoints(img, Black)
	if len(pts) == 0 {
		t.Fatal("no pixels painted")
	}

	painted := make(map[Point]bool, len(pts))
	for _, p := range pts {
		painted[p] = true
	}

	for _, p := range pts {
		dx := p.X - center.X
		dy := p.Y - center.Y

		// Every plotted point is within midpoint tolerance of the radius.
		dist := math.Hypot(float64(dx), float64(dy))
		if math.Abs(dist-float64(radius)) > 1 {
			t.Errorf("pixel %v at distance %.3f from center, want within 1 of %d", p, dist, radius)
		}

		// The point set is closed under the 8 reflections the algorithm plots.
		reflections := []Point{
			Pt(center.X-dx, center.Y+dy),
			Pt(center.X+dx, center.Y-dy),
			Pt(center.X-dx, center.Y-dy),
			Pt(center.X+dy, center.Y+dx),
			Pt(center.X+dy, center.Y-dx),
			Pt(center.X-dy, center.Y+dx),
			Pt(center.X-dy, center.Y-dx),
		}
		for _, r := range reflections {
			if !painted[r] {
				t.Errorf("reflection %v of painted pixel %v is not painted", r, p)
			}
		}
	}
}

func TestDrawCircleOutOfBoundsCenter(t *testing.T) {
	img := newCanvas(t, 32)
	before := snapshot(img)

	err := img.DrawCircle(Black, Circle{Center: Pt(32, 16), Radius: 4})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
	// Center validation happens before any plotting.
	for i, px := range img.Data() {
		if px != before[i] {
			t.Fatalf("rejected circle modified pixel %d", i)
		}
	}
}

// TestDrawCircleOverflowingEdge: the radius is not range-checked, so a
// circle extending past the image surfaces the bounds error from the
// first offending plot instead of clipping.
func TestDrawCircleOverflowingEdge(t *testing.T) {
	img := newCanvas(t, 32)
	err := img.DrawCircle(Black, Circle{Center: Pt(2, 2), Radius: 10})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestDrawFilledCircle(t *testing.T) {
	img, err := New(WithRows(64), WithCols(64))
	if err != nil {
		t.Fatal(err)
	}
	center := Pt(32, 32)
	radius := 10
	if err := img.DrawFilledCircle(Red, Circle{Center: center, Radius: radius}); err != nil {
		t.Fatalf("DrawFilledCircle failed: %v", err)
	}

	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			dist := math.Hypot(float64(x-center.X), float64(y-center.Y))
			got, err := img.GetPixel(Pt(x, y))
			if err != nil {
				t.Fatal(err)
			}
			switch {
			case dist <= float64(radius)-2:
				if got != Red {
					t.Errorf("interior pixel (%d,%d) = %v, want Red", x, y, got)
				}
			case dist >= float64(radius)+2:
				if got != Black {
					t.Errorf("exterior pixel (%d,%d) = %v, want unchanged Black", x, y, got)
				}
			}
		}
	}
}

func TestDrawFilledCircleMatchesFlagLayout(t *testing.T) {
	// Renders the circle-on-plain-field layout the library was built
	// around: a filled disc centered on a white field.
	img, err := New(WithRows(64), WithCols(96))
	if err != nil {
		t.Fatal(err)
	}
	img.Fill(White)
	if err := img.DrawFilledCircle(Red, Circle{Center: Pt(32, 48), Radius: 19}); err != nil {
		t.Fatalf("DrawFilledCircle failed: %v", err)
	}

	if got, _ := img.GetPixel(Pt(32, 48)); got != Red {
		t.Errorf("disc center = %v, want Red", got)
	}
	if got, _ := img.GetPixel(Pt(2, 2)); got != White {
		t.Errorf("field corner = %v, want White", got)
	}
}
