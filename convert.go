package ppm

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// At implements the image.Image interface. Note the axis swap: the
// standard interface's x is this library's column index and y its row
// index. Out-of-range coordinates return opaque black.
func (m *Image) At(x, y int) color.Color {
	c, err := m.GetPixel(Pt(y, x))
	if err != nil {
		return Black.Color()
	}
	return c.Color()
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.cols, m.rows)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage converts the image to an image.RGBA with conventional axes
// (width = columns, height = rows). All pixels are opaque.
func (m *Image) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.cols, m.rows))
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			px := m.data[row*m.cols+col]
			img.SetRGBA(col, row, color.RGBA{R: px.R(), G: px.G(), B: px.B(), A: 0xFF})
		}
	}
	return img
}

// FromImage creates an Image from any image.Image, discarding alpha.
func FromImage(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()

	m, err := New(WithRows(rows), WithCols(cols))
	if err != nil {
		return nil, err
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := img.At(bounds.Min.X+col, bounds.Min.Y+row)
			m.data[row*cols+col] = FromColor(c)
		}
	}

	return m, nil
}

// Resize returns a copy of the image scaled to the given dimensions
// using nearest-neighbor interpolation, which keeps the hard edges of
// rasterized shapes crisp.
func (m *Image) Resize(rows, cols int) (*Image, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: rows", ErrZeroSizedImage)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("%w: cols", ErrZeroSizedImage)
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), m.ToImage(), m.Bounds(), xdraw.Src, nil)

	return FromImage(dst)
}

// SavePNG saves the image to a PNG file.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, m.ToImage()); err != nil {
		return err
	}

	Logger().Debug("saved png image",
		"path", path, "rows", m.rows, "cols", m.cols)
	return f.Close()
}

// SaveBMP saves the image to a BMP file.
func (m *Image) SaveBMP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := bmp.Encode(f, m.ToImage()); err != nil {
		return err
	}

	Logger().Debug("saved bmp image",
		"path", path, "rows", m.rows, "cols", m.cols)
	return f.Close()
}
