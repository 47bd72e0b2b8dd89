package ppm

import "fmt"

// ValidateCoordinate checks that p addresses a pixel inside img. The
// range test uses a strict exclusive upper bound on both axes. A second,
// defensive check rejects coordinates whose flat index exceeds the
// actual data length, which only happens if the buffer was constructed
// with a length that disagrees with its declared dimensions.
func ValidateCoordinate(img *Image, p Point) error {
	if p.X < 0 || p.X >= img.rows || p.Y < 0 || p.Y >= img.cols {
		return &BoundsError{Point: p, Rows: img.rows, Cols: img.cols, kind: ErrOutOfBounds}
	}

	if p.X*img.cols+p.Y > len(img.data) {
		return &BoundsError{Point: p, Rows: img.rows, Cols: img.cols, kind: ErrOutOfBoundsInMemory}
	}

	return nil
}

// ValidateLine checks both endpoints of l against img. Intermediate
// points are not checked; the rasterization algorithms never step
// outside the endpoints' bounding box.
func ValidateLine(img *Image, l Line) error {
	if err := ValidateCoordinate(img, l.First); err != nil {
		return err
	}
	return ValidateCoordinate(img, l.Second)
}

// ValidateCircle checks the circle's center against img. The radius is
// deliberately not range-checked: drawing may legally attempt to plot
// outside the image and surfaces the bounds error from SetPixel instead
// of silently clipping.
func ValidateCircle(img *Image, c Circle) error {
	return ValidateCoordinate(img, c.Center)
}

// ValidatePixelDataLength checks that the stored pixel count exactly
// equals rows*cols. Called before serialization.
func ValidatePixelDataLength(img *Image) error {
	want := img.rows * img.cols
	switch {
	case len(img.data) > want:
		return fmt.Errorf("%w: expected %d, found %d", ErrTooMuchPixelData, want, len(img.data))
	case len(img.data) < want:
		return fmt.Errorf("%w: expected %d, found %d", ErrNotEnoughPixelData, want, len(img.data))
	}
	return nil
}
