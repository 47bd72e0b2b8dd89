package ppm

// DrawCircle renders a circle outline using the midpoint-circle
// algorithm, plotting eight symmetric points per step.
//
// Only the center is validated up front. The radius is deliberately not
// range-checked against the image edges: a circle that extends past them
// surfaces the bounds error from SetPixel on the first offending point
// instead of being silently clipped.
func (m *Image) DrawCircle(c Color, circle Circle) error {
	if err := ValidateCircle(m, circle); err != nil {
		return err
	}

	cx, cy := circle.Center.X, circle.Center.Y
	r := circle.Radius

	x, y := 0, -r
	for x < -y {
		yMid := float64(y) + 0.5
		if float64(x*x)+yMid*yMid > float64(r*r) {
			y++
		}

		points := [8]Point{
			Pt(cx+x, cy+y),
			Pt(cx-x, cy+y),
			Pt(cx+x, cy-y),
			Pt(cx-x, cy-y),
			Pt(cx+y, cy+x),
			Pt(cx+y, cy-x),
			Pt(cx-y, cy+x),
			Pt(cx-y, cy-x),
		}
		for _, p := range points {
			if err := m.SetPixel(p, c); err != nil {
				return err
			}
		}

		x++
	}

	return nil
}

// DrawFilledCircle renders a circle outline and then fills it with the
// same color using a scanline pass: each row is scanned left to right
// for border-colored pixels, and the span between the first and last
// match is filled.
//
// The scanline approach assumes the border crosses each row at most
// twice, which holds for circles but not for general polygons.
func (m *Image) DrawFilledCircle(c Color, circle Circle) error {
	// Center validation happens inside DrawCircle.
	if err := m.DrawCircle(c, circle); err != nil {
		return err
	}

	for row := 0; row < m.rows; row++ {
		var span Line

		for col := 0; col < m.cols; col++ {
			px, err := m.GetPixel(Pt(row, col))
			if err != nil {
				return err
			}
			if px != c {
				continue
			}
			if span.First.Y == span.Second.Y {
				span.First = Pt(row, col)
			} else {
				span.Second = Pt(row, col)
			}
		}

		if span != (Line{}) {
			// The row/column-swapped axis convention makes this span a
			// vertical line: fixed row, varying column.
			if err := m.DrawVerticalLine(c, span); err != nil {
				return err
			}
		}
	}

	return nil
}
