package board

import "github.com/vovakirdan/numsnake/internal/core"

// Line returns the cells on the segment from a to b, endpoints included,
// one cell per step along the dominant axis.
// Line(a, b) and Line(b, a) cover the same cells.
func Line(a, b core.Point) []core.Point {
	if core.Abs(b.Y-a.Y) < core.Abs(b.X-a.X) {
		if a.X > b.X {
			a, b = b, a
		}
		return lineLow(a, b)
	}
	if a.Y > b.Y {
		a, b = b, a
	}
	return lineHigh(a, b)
}

// lineLow walks x forward for slopes within [-1, 1].
func lineLow(a, b core.Point) []core.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}

	cells := make([]core.Point, 0, dx+1)
	d := 2*dy - dx
	y := a.Y
	for x := a.X; x <= b.X; x++ {
		cells = append(cells, core.Pt(x, y))
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
	return cells
}

// lineHigh walks y forward for steep slopes.
func lineHigh(a, b core.Point) []core.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}

	cells := make([]core.Point, 0, dy+1)
	d := 2*dx - dy
	x := a.X
	for y := a.Y; y <= b.Y; y++ {
		cells = append(cells, core.Pt(x, y))
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
	return cells
}

// DrawLine paints the segment from a to b with value.
func (b *Board) DrawLine(from, to core.Point, value int16) {
	for _, p := range Line(from, to) {
		b.Set(p.X, p.Y, value)
	}
}
