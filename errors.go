package ppm

import (
	"errors"
	"fmt"
)

// Sentinel errors for the closed error taxonomy. Construction and
// validation failures wrap one of these, so callers can match with
// errors.Is regardless of the attached diagnostics.
var (
	// ErrOutOfBounds reports a coordinate outside [0,rows) x [0,cols).
	ErrOutOfBounds = errors.New("ppm: coordinate out of image bounds")

	// ErrOutOfBoundsInMemory reports a coordinate whose computed flat
	// index exceeds the actual pixel data length. This is a defensive
	// second check, distinct from the dimension check, guarding against
	// buffers whose data length disagrees with their declared dimensions.
	ErrOutOfBoundsInMemory = errors.New("ppm: coordinate out of bounds in memory")

	// ErrZeroSizedImage reports a zero (or negative) row or column count
	// at construction.
	ErrZeroSizedImage = errors.New("ppm: image dimension is zero")

	// ErrDimensionNotProvided reports a missing required dimension at
	// construction.
	ErrDimensionNotProvided = errors.New("ppm: image dimension not provided")

	// ErrDataMismatch reports caller-supplied pixel data whose length
	// does not equal rows*cols.
	ErrDataMismatch = errors.New("ppm: pixel data does not match image dimensions")

	// ErrTooMuchPixelData and ErrNotEnoughPixelData report a stored pixel
	// count that disagrees with the declared dimensions at write time.
	ErrTooMuchPixelData   = errors.New("ppm: too much pixel data")
	ErrNotEnoughPixelData = errors.New("ppm: not enough pixel data")
)

// Pre-wrapped construction failures used by New.
var (
	errRowsNotProvided = fmt.Errorf("%w: rows", ErrDimensionNotProvided)
	errColsNotProvided = fmt.Errorf("%w: cols", ErrDimensionNotProvided)
	errZeroRows        = fmt.Errorf("%w: rows", ErrZeroSizedImage)
	errZeroCols        = fmt.Errorf("%w: cols", ErrZeroSizedImage)
)

func errDataMismatch(rows, cols, got int) error {
	return fmt.Errorf("%w: expected %d elements, found %d", ErrDataMismatch, rows*cols, got)
}

// BoundsError reports a coordinate that failed validation against an
// image. It carries only the offending coordinate and the image
// dimensions; it never snapshots the pixel data.
type BoundsError struct {
	Point Point
	Rows  int
	Cols  int

	kind error // ErrOutOfBounds or ErrOutOfBoundsInMemory
}

func (e *BoundsError) Error() string {
	if e.kind == ErrOutOfBoundsInMemory {
		return fmt.Sprintf("%v: index %d computed from %v for image with %d rows by %d columns",
			e.kind, e.Point.X*e.Cols+e.Point.Y, e.Point, e.Rows, e.Cols)
	}
	return fmt.Sprintf("%v: %v for image with %d rows by %d columns",
		e.kind, e.Point, e.Rows, e.Cols)
}

// Unwrap returns the sentinel kind, so errors.Is(err, ErrOutOfBounds)
// and errors.Is(err, ErrOutOfBoundsInMemory) work as expected.
func (e *BoundsError) Unwrap() error {
	return e.kind
}
