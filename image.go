package ppm

// Image is a rectangular pixel buffer: a flat row-major array of packed
// RGB colors plus its dimensions. The invariant len(data) == rows*cols
// holds for every image produced by New.
//
// An image is created fully initialized, mutated in place by the drawing
// operations, and treated as read-only by the serializers. There is no
// internal locking; an image must be owned by a single goroutine.
type Image struct {
	rows int
	cols int
	data []Color
}

// New creates an image from the given options. Both WithRows and
// WithCols are required; construction is fail-fast and never returns a
// partially valid image.
//
// With no WithData option, every cell is initialized to Black.
func New(opts ...Option) (*Image, error) {
	var o imageOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !o.rowsSet {
		return nil, errRowsNotProvided
	}
	if !o.colsSet {
		return nil, errColsNotProvided
	}
	if o.rows <= 0 {
		return nil, errZeroRows
	}
	if o.cols <= 0 {
		return nil, errZeroCols
	}

	var data []Color
	if o.data != nil {
		if len(o.data) != o.rows*o.cols {
			return nil, errDataMismatch(o.rows, o.cols, len(o.data))
		}
		data = make([]Color, len(o.data))
		copy(data, o.data)
	} else {
		data = make([]Color, o.rows*o.cols) // zero value is Black
	}

	return &Image{rows: o.rows, cols: o.cols, data: data}, nil
}

// Rows returns the number of pixel rows.
func (m *Image) Rows() int { return m.rows }

// Cols returns the number of pixel columns.
func (m *Image) Cols() int { return m.cols }

// Data returns the raw pixel data in row-major order. The slice aliases
// the image's storage; mutating it mutates the image.
func (m *Image) Data() []Color { return m.data }

// index maps a validated coordinate to its flat position. This is the
// single place the row/column axis convention is encoded.
func (m *Image) index(p Point) int {
	return p.X*m.cols + p.Y
}

// SetPixel sets a single pixel to the given color. On a validation
// failure no cell is modified.
func (m *Image) SetPixel(p Point, c Color) error {
	if err := ValidateCoordinate(m, p); err != nil {
		return err
	}
	m.data[m.index(p)] = c
	return nil
}

// GetPixel returns the color of a single pixel.
func (m *Image) GetPixel(p Point) (Color, error) {
	if err := ValidateCoordinate(m, p); err != nil {
		return 0, err
	}
	return m.data[m.index(p)], nil
}

// Fill sets every cell to the given color.
func (m *Image) Fill(c Color) {
	for i := range m.data {
		m.data[i] = c
	}
}

// Checkerboard paints tiles of tileSize x tileSize pixels with tileColor.
// Only tiles whose (row/tileSize + col/tileSize) parity is even are
// painted; the rest keep whatever was already present. Combined with a
// prior Fill this yields a two-color checkerboard. tileSize must be
// positive.
func (m *Image) Checkerboard(tileSize int, tileColor Color) {
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if (row/tileSize+col/tileSize)%2 == 0 {
				m.data[row*m.cols+col] = tileColor
			}
		}
	}
}
