package ppm

// Option configures an Image during creation.
//
// Example:
//
//	// Default black 64x64 image
//	img, err := ppm.New(ppm.WithRows(64), ppm.WithCols(64))
//
//	// Image backed by caller-supplied pixel data
//	img, err := ppm.New(ppm.WithRows(2), ppm.WithCols(2),
//		ppm.WithData([]ppm.Color{ppm.Red, ppm.Lime, ppm.Blue, ppm.White}))
type Option func(*imageOptions)

// imageOptions holds the configuration collected before construction.
// The Set flags distinguish an omitted dimension from an explicit zero,
// which map to different construction errors.
type imageOptions struct {
	rows    int
	cols    int
	rowsSet bool
	colsSet bool
	data    []Color
}

// WithRows sets the number of pixel rows. Required.
func WithRows(rows int) Option {
	return func(o *imageOptions) {
		o.rows = rows
		o.rowsSet = true
	}
}

// WithCols sets the number of pixel columns. Required.
func WithCols(cols int) Option {
	return func(o *imageOptions) {
		o.cols = cols
		o.colsSet = true
	}
}

// WithData supplies initial pixel data in row-major order. Its length
// must equal rows*cols. The data is copied; the caller's slice is not
// retained.
func WithData(data []Color) Option {
	return func(o *imageOptions) {
		o.data = data
	}
}
