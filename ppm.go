package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// EncodePPM writes img to w in the binary PPM (P6) format: an ASCII
// header "P6\n<cols> <rows>\n255\n" followed by three bytes (red, green,
// blue) per pixel in row-major order.
//
// The stored pixel count is validated against the declared dimensions
// before any byte is written; a mismatched image produces no output.
func EncodePPM(w io.Writer, img *Image) error {
	if err := ValidatePixelDataLength(img); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.cols, img.rows); err != nil {
		return fmt.Errorf("ppm: writing header: %w", err)
	}

	buf := make([]byte, 0, 3*len(img.data))
	for _, px := range img.data {
		buf = append(buf, px.R(), px.G(), px.B())
	}
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("ppm: writing pixel data: %w", err)
	}

	return bw.Flush()
}

// SavePPM writes the image to a P6 file at path. The pixel-data length
// is validated before the file is created, so a mismatched image leaves
// no file behind.
func (m *Image) SavePPM(path string) error {
	if err := ValidatePixelDataLength(m); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := EncodePPM(f, m); err != nil {
		return err
	}

	Logger().Debug("saved ppm image",
		"path", path, "rows", m.rows, "cols", m.cols)
	return f.Close()
}
