// Package ppm provides a minimal 2D raster-graphics library for Go.
//
// # Overview
//
// ppm holds a rectangular grid of packed 24-bit RGB pixels, exposes exact
// integer drawing primitives (lines, circles, fills), and serializes the
// grid to the binary PPM (P6) image format. The rasterizers convert
// continuous geometric input into exact pixel sequences: a multi-case
// Bresenham line dispatcher, a floating-point DDA line variant, and a
// midpoint-circle algorithm with a scanline fill pass.
//
// # Quick Start
//
//	import ppm "github.com/emperor-electron/libppm"
//
//	// Create a 512x512 image (rows x columns)
//	img, err := ppm.New(ppm.WithRows(512), ppm.WithCols(512))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Draw on it
//	img.Fill(ppm.White)
//	if err := img.DrawFilledCircle(ppm.Red, ppm.Circle{
//		Center: ppm.Pt(256, 256),
//		Radius: 100,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
//	// Save to a P6 file
//	if err := img.SavePPM("circle.ppm"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
// The library uses a row/column convention: Point.X indexes rows and
// Point.Y indexes columns, with the origin at the top left. This is
// inverted relative to typical image coordinates; the inversion is
// isolated behind the flat pixel-indexing function and the image.Image
// view, so callers of the standard image interfaces see conventional
// (x = column, y = row) axes.
//
// # Error Handling
//
// Every drawing operation validates its input before mutating the buffer
// and returns a recoverable error on bad coordinates; a rejected call
// leaves the image byte-for-byte unchanged. Bounds failures unwrap to
// [ErrOutOfBounds] or [ErrOutOfBoundsInMemory] and carry the offending
// coordinate plus the image dimensions.
//
// # Output Formats
//
// The primary serializer is binary PPM (P6). PNG and BMP exports are
// provided for convenience via the standard image pipeline.
package ppm

// Version is the current version of the library.
const Version = "0.1.0"
