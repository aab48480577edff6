package pixbuf

// DrawHLine sets the pixels from (x1, y) to (x2, y), both ends inclusive.
// The run is clipped to the buffer.
func (b *Buf) DrawHLine(x1, y, x2 int, p Pixel) {
	if y < 0 || y >= b.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1 = max(x1, 0)
	x2 = min(x2, b.width-1)
	for x := x1; x <= x2; x++ {
		b.store(b.offset(x, y), p)
	}
}

// DrawLine draws a one pixel wide segment from (x1, y1) to (x2, y2),
// both endpoints inclusive, using Bresenham's algorithm. Pixels falling
// outside the buffer are skipped.
func (b *Buf) DrawLine(x1, y1, x2, y2 int, p Pixel) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx + dy
	for {
		b.Set(x1, y1, p)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// FillEllipse fills the ellipse inscribed in the rectangle whose corners
// are (x0, y0) and (x1, y1), both inclusive.
//
// The outline is walked with an integer error term (Zingl's rectangle
// form), which handles even diameters without a half-pixel shift; each
// step emits the horizontal runs between the symmetric outline points.
func (b *Buf) FillEllipse(x0, y0, x1, y1 int, p Pixel) {
	a := int64(abs(x1 - x0))
	bb := int64(abs(y1 - y0))
	b1 := bb & 1

	dx := 4 * (1 - a) * bb * bb
	dy := 4 * (b1 + 1) * a * a
	err := dx + dy + b1*a*a

	if x0 > x1 {
		x0 = x1
		x1 += int(a)
	}
	if y0 > y1 {
		y0 = y1
	}
	y0 += int(bb+1) / 2
	y1 = y0 - int(b1)

	a8 := 8 * a * a
	b8 := 8 * bb * bb

	for {
		b.DrawHLine(x0, y0, x1, p)
		b.DrawHLine(x0, y1, x1, p)

		e2 := 2 * err
		if e2 <= dy {
			y0++
			y1--
			dy += a8
			err += dy
		}
		if e2 >= dx || 2*err > dy {
			x0++
			x1--
			dx += b8
			err += dx
		}
		if x0 > x1 {
			break
		}
	}

	// Flat ellipses (a == 0 or very small a) finish the tips vertically.
	for int64(y0-y1) <= bb {
		b.DrawHLine(x0-1, y0, x1+1, p)
		b.DrawHLine(x0-1, y1, x1+1, p)
		y0++
		y1--
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
