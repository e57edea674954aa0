package snake

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/numsnake/internal/board"
	"github.com/vovakirdan/numsnake/internal/core"
)

// Glyphs used to draw two board rows per terminal row.
const (
	glyphFull  = '█'
	glyphUpper = '▀'
	glyphLower = '▄'
)

const (
	pausedLabel   = "    Paused"
	continueMsg   = "Press SPACE to continue"
	restartMsg    = "Press SPACE to start again"
	pauseBoxWidth = len(continueMsg) + 4
)

var gameOverBanner = `
   ______                        ____
  / ____/___ _____ ___  ___     / __ \_   _____  _____
 / / __/ __ ` + "`" + `/ __ ` + "`" + `__ \/ _ \   / / / / | / / _ \/ ___/
/ /_/ / /_/ / / / / / /  __/  / /_/ /| |/ /  __/ /
\____/\____/_/ /_/ /_/\___/   \____/ |___/\___/_/
`

var (
	colorText    = core.Indexed(core.PaletteWhite)
	colorFrame   = core.Indexed(core.PaletteRed)
	colorBanner  = core.Indexed(core.PaletteBlue)
	colorPauseBg = core.Indexed(core.PaletteMaroon)
)

// Render draws the game into dst, which should match the terminal size.
// It only reads game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.frame == nil && g.TooSmall() {
		dst.SetForeground(colorText)
		fmt.Fprintf(dst, "Terminal too small\nneed %dx%d", MinScreenW, MinScreenH)
		return
	}

	if g.GameOver() {
		g.renderGameOver(dst)
		return
	}

	g.renderStatus(dst)
	renderFrame(dst)
	if g.frame != nil {
		renderBoard(dst, g.frame)
	}

	if g.hasTarget {
		dst.SetForeground(colorText)
		dst.SetBackground(core.ColorDefault)
		dst.DrawText(g.target.X, g.target.Y/2+1, strconv.Itoa(g.value))
	}

	if g.paused {
		renderPauseBox(dst)
	}
}

// renderStatus writes lives and level (or the pause label), the last tick
// duration and the right-aligned score on the first row.
func (g *Game) renderStatus(dst *core.Screen) {
	dst.SetForeground(colorText)

	status := pausedLabel
	if !g.paused {
		status = fmt.Sprintf("Lives: %d        Level: %d", g.lives, g.level)
	}
	dst.DrawText(0, 0, status)
	fmt.Fprintf(dst, "    %d", g.elapsed.Milliseconds())

	score := strconv.Itoa(g.score)
	dst.DrawText(dst.Width()-len(score), 0, score)
}

// renderFrame outlines the playfield: half blocks along the top and bottom
// edges and full blocks down the sides.
func renderFrame(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < 2 || h < 3 {
		return
	}

	dst.SetForeground(colorFrame)
	dst.SetBackground(core.ColorDefault)

	inner := w - 2
	dst.DrawText(0, 1, string(glyphFull)+strings.Repeat(string(glyphUpper), inner)+string(glyphFull))
	for y := 2; y < h-1; y++ {
		dst.DrawText(0, y, string(glyphFull))
		dst.DrawText(w-1, y, string(glyphFull))
	}
	dst.DrawText(0, h-1, string(glyphFull)+strings.Repeat(string(glyphLower), inner)+string(glyphFull))
}

// renderBoard projects the board from the second terminal row down, one
// terminal row per row pair. Pairs where both cells are empty leave the
// frame underneath untouched.
func renderBoard(dst *core.Screen, b *board.Board) {
	last := (b.Rows()+1)/2 - 1

	for i, pair := range b.Pairs() {
		y := i + 1
		for x, upper := range pair.Upper {
			lower := board.Empty
			if pair.Lower != nil {
				lower = pair.Lower[x]
			}
			if upper < 0 && lower < 0 {
				continue
			}
			dst.SetCell(x, y, pairCell(upper, lower, i == 0 || i == last))
		}
	}
}

// pairCell returns the character cell showing an upper and a lower board
// value. At least one of them is set. Edge rows give a lone half block the
// frame color as background so it blends with the frame line it sits on.
func pairCell(upper, lower int16, edge bool) core.Cell {
	switch {
	case upper == lower:
		c := paletteColor(upper)
		return core.Cell{Glyph: glyphFull, Fg: c, Bg: c}
	case upper >= 0 && lower >= 0:
		return core.Cell{Glyph: glyphLower, Fg: paletteColor(lower), Bg: paletteColor(upper)}
	}

	cell := core.Cell{Glyph: glyphUpper, Fg: paletteColor(upper)}
	if lower >= 0 {
		cell = core.Cell{Glyph: glyphLower, Fg: paletteColor(lower)}
	}
	if edge {
		cell.Bg = colorFrame
	}
	return cell
}

func paletteColor(v int16) core.Color {
	return core.Indexed(uint8(v))
}

// renderPauseBox draws the resume prompt in a box centered on the screen.
func renderPauseBox(dst *core.Screen) {
	box := dst.Bounds().Centered(pauseBoxWidth, 3)

	dst.SetForeground(colorText)
	dst.SetBackground(colorPauseBg)

	inner := pauseBoxWidth - 2
	lines := []string{
		strings.Repeat(string(glyphUpper), inner),
		" " + continueMsg + " ",
		strings.Repeat(string(glyphLower), inner),
	}
	for i, line := range lines {
		dst.DrawText(box.X, box.Y+i, string(glyphFull)+line+string(glyphFull))
	}

	dst.SetForeground(core.ColorDefault)
	dst.SetBackground(core.ColorDefault)
}

// renderGameOver replaces the whole screen with the banner and the restart
// prompt.
func (g *Game) renderGameOver(dst *core.Screen) {
	dst.SetForeground(colorBanner)
	fmt.Fprint(dst, gameOverBanner)

	dst.SetForeground(colorText)
	fmt.Fprintf(dst, "\n%s", restartMsg)
}
