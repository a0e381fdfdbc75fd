package draw

// Rectangle draws the outline of the width×height rectangle whose top left
// corner is at row top, column left. Nothing is drawn for an empty size.
func Rectangle(dst Plotter, top, left, width, height int, on bool) error {
	if width <= 0 || height <= 0 {
		return nil
	}

	p := &plot{dst: dst, on: on}
	for x := left; x < left+width; x++ {
		p.set(x, top)
		p.set(x, top+height-1)
	}
	for y := top; y < top+height; y++ {
		p.set(left, y)
		p.set(left+width-1, y)
	}
	return p.err
}

// HorizontalLine draws the pixels (x0..x1, y), both ends included.
func HorizontalLine(dst Plotter, x0, x1, y int, on bool) error {
	p := &plot{dst: dst, on: on}
	for x := x0; x <= x1; x++ {
		p.set(x, y)
	}
	return p.err
}

// VerticalLine draws the pixels (x, y0..y1), both ends included.
func VerticalLine(dst Plotter, x, y0, y1 int, on bool) error {
	p := &plot{dst: dst, on: on}
	for y := y0; y <= y1; y++ {
		p.set(x, y)
	}
	return p.err
}

// Line draws a one pixel wide, 8-connected line from (x0, y0) to (x1, y1),
// both ends included, using integer Bresenham stepping.
func Line(dst Plotter, x0, y0, x1, y1 int, on bool) error {
	var (
		dx  = abs(x1 - x0)
		dy  = abs(y1 - y0)
		sx  = 1
		sy  = 1
		err = dx - dy
		p   = &plot{dst: dst, on: on}
	)
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}

	for {
		p.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return p.err
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Box draws a filled rectangle.
func Box(dst Plotter, top, left, width, height int, on bool) error {
	p := &plot{dst: dst, on: on}
	for y := top; y < top+height; y++ {
		p.merge(HorizontalLine(dst, left, left+width-1, y, on))
	}
	return p.err
}

// RoundedRectangle draws a rectangle outline with radius pixels rounded corners.
// The radius is limited to half the shortest side.
func RoundedRectangle(dst Plotter, top, left, width, height, radius int, on bool) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	r := min(radius, (width-1)/2, (height-1)/2)
	if r <= 0 {
		return Rectangle(dst, top, left, width, height, on)
	}

	var (
		x = left
		y = top
		w = width
		h = height
		p = &plot{dst: dst, on: on}
	)
	p.merge(HorizontalLine(dst, x+r, x+w-r-1, y, on))
	p.merge(HorizontalLine(dst, x+r, x+w-r-1, y+h-1, on))
	p.merge(VerticalLine(dst, x, y+r, y+h-r-1, on))
	p.merge(VerticalLine(dst, x+w-1, y+r, y+h-r-1, on))
	roundedCorner(p, x+r, y+r, r, 1)
	roundedCorner(p, x+w-r-1, y+r, r, 2)
	roundedCorner(p, x+w-r-1, y+h-r-1, r, 4)
	roundedCorner(p, x+r, y+h-r-1, r, 8)
	return p.err
}

// roundedCorner plots one quarter circle of the given radius around (x0, y0);
// quadrant is 1 (top left), 2 (top right), 4 (bottom right) or 8 (bottom left).
func roundedCorner(p *plot, x0, y0, radius, quadrant int) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			p.set(x0+x, y0+y)
			p.set(x0+y, y0+x)
		}
		if quadrant&2 != 0 {
			p.set(x0+x, y0-y)
			p.set(x0+y, y0-x)
		}
		if quadrant&8 != 0 {
			p.set(x0-y, y0+x)
			p.set(x0-x, y0+y)
		}
		if quadrant&1 != 0 {
			p.set(x0-y, y0-x)
			p.set(x0-x, y0-y)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
