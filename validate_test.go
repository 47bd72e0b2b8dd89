package ppm

import (
	"errors"
	"testing"
)

func TestValidateCoordinate(t *testing.T) {
	img, err := New(WithRows(4), WithCols(6))
	if err != nil {
		t.Fatal(err)
	}

	valid := []Point{Pt(0, 0), Pt(3, 5), Pt(0, 5), Pt(3, 0)}
	for _, p := range valid {
		if err := ValidateCoordinate(img, p); err != nil {
			t.Errorf("ValidateCoordinate(%v) = %v, want nil", p, err)
		}
	}

	// The upper bound is strictly exclusive on both axes.
	invalid := []Point{Pt(4, 0), Pt(0, 6), Pt(4, 6), Pt(-1, 0), Pt(0, -1)}
	for _, p := range invalid {
		err := ValidateCoordinate(img, p)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ValidateCoordinate(%v) = %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestValidateCoordinateDiagnostics(t *testing.T) {
	img, err := New(WithRows(4), WithCols(6))
	if err != nil {
		t.Fatal(err)
	}

	verr := ValidateCoordinate(img, Pt(9, 2))
	var be *BoundsError
	if !errors.As(verr, &be) {
		t.Fatalf("error %v is not a *BoundsError", verr)
	}
	if be.Point != Pt(9, 2) || be.Rows != 4 || be.Cols != 6 {
		t.Errorf("BoundsError = {%v %d %d}, want {Point(x:9, y:2) 4 6}", be.Point, be.Rows, be.Cols)
	}
}

// TestValidateCoordinateInMemory exercises the defensive second check:
// a buffer whose data length disagrees with its declared dimensions.
func TestValidateCoordinateInMemory(t *testing.T) {
	img := &Image{rows: 4, cols: 4, data: make([]Color, 3)}

	// In range on both axes, but the flat index exceeds the data length.
	err := ValidateCoordinate(img, Pt(1, 0))
	if !errors.Is(err, ErrOutOfBoundsInMemory) {
		t.Errorf("err = %v, want ErrOutOfBoundsInMemory", err)
	}
	if errors.Is(err, ErrOutOfBounds) {
		t.Error("in-memory failure should not match ErrOutOfBounds")
	}
}

func TestValidateLine(t *testing.T) {
	img, err := New(WithRows(8), WithCols(8))
	if err != nil {
		t.Fatal(err)
	}

	if err := ValidateLine(img, NewLine(0, 0, 7, 7)); err != nil {
		t.Errorf("valid line rejected: %v", err)
	}
	if err := ValidateLine(img, NewLine(8, 0, 7, 7)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("bad first endpoint: err = %v, want ErrOutOfBounds", err)
	}
	if err := ValidateLine(img, NewLine(0, 0, 7, 8)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("bad second endpoint: err = %v, want ErrOutOfBounds", err)
	}
}

func TestValidateCircle(t *testing.T) {
	img, err := New(WithRows(8), WithCols(8))
	if err != nil {
		t.Fatal(err)
	}

	// Only the center is checked; the radius may exceed the edges.
	if err := ValidateCircle(img, Circle{Center: Pt(4, 4), Radius: 100}); err != nil {
		t.Errorf("in-bounds center rejected: %v", err)
	}
	if err := ValidateCircle(img, Circle{Center: Pt(8, 4), Radius: 1}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out-of-bounds center: err = %v, want ErrOutOfBounds", err)
	}
}

func TestValidatePixelDataLength(t *testing.T) {
	img, err := New(WithRows(2), WithCols(2))
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidatePixelDataLength(img); err != nil {
		t.Errorf("matching length rejected: %v", err)
	}

	short := &Image{rows: 2, cols: 2, data: make([]Color, 3)}
	if err := ValidatePixelDataLength(short); !errors.Is(err, ErrNotEnoughPixelData) {
		t.Errorf("short data: err = %v, want ErrNotEnoughPixelData", err)
	}

	long := &Image{rows: 2, cols: 2, data: make([]Color, 5)}
	if err := ValidatePixelDataLength(long); !errors.Is(err, ErrTooMuchPixelData) {
		t.Errorf("long data: err = %v, want ErrTooMuchPixelData", err)
	}
}
