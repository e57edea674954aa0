package levels

import (
	"math"

	"github.com/vovakirdan/numsnake/internal/board"
	"github.com/vovakirdan/numsnake/internal/core"
)

// wall paints a wall segment, dropping cells that fall outside the board.
// Layouts are proportional, so on narrow boards a bar can land on the edge.
func wall(b *board.Board, x0, y0, x1, y1 int) {
	for _, p := range board.Line(core.Pt(x0, y0), core.Pt(x1, y1)) {
		if p.X < 0 || p.Y < 0 || p.X >= b.Width() || p.Y >= b.Rows() {
			continue
		}
		b.Set(p.X, p.Y, board.Wall)
	}
}

func paintNothing(*board.Board) {}

// paintBar draws one horizontal bar across the middle half of the board.
func paintBar(b *board.Board) {
	w, h := b.Width(), b.Height()

	barW := w - w/2
	barY := h / 2
	barX := w/2 - barW/2
	wall(b, barX, barY, barX+barW, barY)
}

// paintPillars draws two vertical bars at a third and two thirds of the width.
func paintPillars(b *board.Board) {
	w, h := b.Width(), b.Height()

	barH := h - h/3
	barY := h/2 - barH/2
	barX := w / 3
	wall(b, barX, barY, barX, barY+barH)

	barX += w / 3
	wall(b, barX, barY, barX, barY+barH)
}

// paintPinwheel draws two vertical and two horizontal bars, each touching
// a different edge of the playfield.
func paintPinwheel(b *board.Board) {
	w, h := b.Width(), b.Height()

	space := int(math.Round(float64(h) * 0.4))
	barH := h - space

	barX := w / 4
	wall(b, barX, 1, barX, 1+barH)

	barX += w / 2
	barY := h - barH
	wall(b, barX, barY, barX, barY+barH)

	barW := w - w/2
	barX = w - 1 - barW
	barY = space / 2
	wall(b, barX, barY, barX+barW, barY)

	barY += barH
	wall(b, 1, barY, 1+barW, barY)
}

// paintFrame draws an open rectangle around the center.
func paintFrame(b *board.Board) {
	w, h := b.Width(), b.Height()

	barH := h/2 - 4
	barY := h/2 - barH/2
	barX := w / 4
	wall(b, barX, barY, barX, barY+barH)

	barX += w / 2
	wall(b, barX, barY, barX, barY+barH)

	barW := w/2 - 4
	barX = w/2 - barW/2 - 1
	barY = h / 4
	wall(b, barX, barY, barX+barW, barY)

	barY += h / 2
	wall(b, barX, barY, barX+barW, barY)
}

// paintTeeth draws eight pairs of bars hanging from the top and rising from
// the bottom.
func paintTeeth(b *board.Board) {
	w, h := b.Width(), b.Height()

	step := w / 8
	barH := h/2 - h/12
	barX := step
	for range 8 {
		wall(b, barX, 1, barX, 1+barH)
		wall(b, barX, h-barH, barX, h)
		barX += step
	}
}

// paintDotted draws a dashed wall down the middle column on odd rows.
func paintDotted(b *board.Board) {
	w, h := b.Width(), b.Height()

	barX := w / 2
	for y := 1; y < h; y += 2 {
		b.Set(barX, y, board.Wall)
	}
}

// paintComb draws four bars from the top interleaved with three from the
// bottom, each covering most of the height.
func paintComb(b *board.Board) {
	w, h := b.Width(), b.Height()

	step := w / 4
	barH := h - h/6

	barX := 2 + step/2
	for range 4 {
		wall(b, barX, 1, barX, 1+barH)
		barX += step
	}

	barX = step + 2
	for range 3 {
		wall(b, barX, h-barH, barX, h)
		barX += step
	}
}
