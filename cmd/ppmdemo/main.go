// Command ppmdemo demonstrates the libppm raster-graphics library.
// It renders a set of demo scenes and writes them as PPM (P6) files,
// plus a PNG copy of the flag scene.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	ppm "github.com/emperor-electron/libppm"
)

func main() {
	var (
		rows    = flag.Int("rows", 512, "image rows (height)")
		cols    = flag.Int("cols", 512, "image columns (width)")
		outDir  = flag.String("out", ".", "output directory")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ppm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scenes := []struct {
		name   string
		render func(rows, cols int) (*ppm.Image, error)
	}{
		{"checkerboard.ppm", renderCheckerboard},
		{"lines.ppm", renderLineFan},
		{"circle.ppm", renderCircle},
		{"flag.ppm", renderFlag},
	}

	for _, scene := range scenes {
		img, err := scene.render(*rows, *cols)
		if err != nil {
			log.Fatalf("rendering %s: %v", scene.name, err)
		}
		path := filepath.Join(*outDir, scene.name)
		if err := img.SavePPM(path); err != nil {
			log.Fatalf("saving %s: %v", scene.name, err)
		}
		log.Printf("wrote %s (%dx%d)", path, img.Cols(), img.Rows())
	}

	// The flag scene again, as PNG via the standard image pipeline.
	img, err := renderFlag(*rows, *cols)
	if err != nil {
		log.Fatalf("rendering flag: %v", err)
	}
	path := filepath.Join(*outDir, "flag.png")
	if err := img.SavePNG(path); err != nil {
		log.Fatalf("saving flag.png: %v", err)
	}
	log.Printf("wrote %s", path)
}

func renderCheckerboard(rows, cols int) (*ppm.Image, error) {
	img, err := ppm.New(ppm.WithRows(rows), ppm.WithCols(cols))
	if err != nil {
		return nil, err
	}
	img.Fill(ppm.Magenta)
	img.Checkerboard(16, ppm.Black)
	return img, nil
}

// renderLineFan draws one line per slope class of the Bresenham
// dispatcher, plus a DDA line for comparison.
func renderLineFan(rows, cols int) (*ppm.Image, error) {
	img, err := ppm.New(ppm.WithRows(rows), ppm.WithCols(cols))
	if err != nil {
		return nil, err
	}
	img.Fill(ppm.Magenta)

	lines := []struct {
		color ppm.Color
		line  ppm.Line
	}{
		// One line per slope class, plus two with reversed endpoints.
		{ppm.Black, ppm.NewLine(0, 0, rows-1, cols-1)},
		{ppm.Lime, ppm.NewLine(1, 1, 1, cols-2)},
		{ppm.Gray, ppm.NewLine(1, 1, rows-2, 1)},
		{ppm.Silver, ppm.NewLine(1, 1, rows-2, cols/2)},
		{ppm.Cyan, ppm.NewLine(1, 1, rows/2, cols-2)},
		{ppm.Olive, ppm.NewLine(rows-2, cols/2, rows/2, cols/4)},
		{ppm.White, ppm.NewLine(rows/2, cols-2, rows/4, cols/4)},
	}
	for _, l := range lines {
		if err := img.DrawLineBresenham(l.color, l.line); err != nil {
			return nil, err
		}
	}

	if err := img.DrawLineDDA(ppm.Yellow, ppm.NewLine(rows-1, cols-1, 37, cols/4)); err != nil {
		return nil, err
	}

	return img, nil
}

func renderCircle(rows, cols int) (*ppm.Image, error) {
	img, err := ppm.New(ppm.WithRows(rows), ppm.WithCols(cols))
	if err != nil {
		return nil, err
	}
	img.Fill(ppm.Magenta)

	radius := min(rows, cols) / 5
	err = img.DrawCircle(ppm.Black, ppm.Circle{
		Center: ppm.Pt(rows/2, cols/2),
		Radius: radius,
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// renderFlag draws the flag of Japan: a 2:3 white field with a centered
// red disc whose diameter is 3/5 of the flag's height.
func renderFlag(rows, _ int) (*ppm.Image, error) {
	height := rows
	width := rows * 3 / 2

	img, err := ppm.New(ppm.WithRows(height), ppm.WithCols(width))
	if err != nil {
		return nil, err
	}
	img.Fill(ppm.White)

	err = img.DrawFilledCircle(ppm.Red, ppm.Circle{
		Center: ppm.Pt(height/2, width/2),
		Radius: height * 3 / 10,
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}
