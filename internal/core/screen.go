package core

import (
	"strings"
)

// Cell is one character cell of the terminal.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// BlankCell is what a freshly cleared terminal shows.
var BlankCell = Cell{Glyph: ' '}

// Screen is a 2D buffer of colored character cells in terminal coordinates.
// It decouples game rendering from the terminal: games draw into it with a
// pen (cursor plus current colors) and the Renderer turns successive screens
// into terminal operations.
type Screen struct {
	width  int
	height int
	cells  [][]Cell

	// pen state
	x, y int
	fg   Color
	bg   Color
}

// NewScreen creates a new blank screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen as a rectangle anchored at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear blanks every cell and resets the pen to the top-left corner
// with default colors.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = BlankCell
		}
	}
	s.x, s.y = 0, 0
	s.fg, s.bg = ColorDefault, ColorDefault
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Cell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return BlankCell
	}
	return s.cells[y][x]
}

// SameSize reports whether s and other have identical dimensions.
func (s *Screen) SameSize(other *Screen) bool {
	return other != nil && s.width == other.width && s.height == other.height
}

// SetForeground sets the pen's foreground color.
func (s *Screen) SetForeground(c Color) {
	s.fg = c
}

// SetBackground sets the pen's background color.
func (s *Screen) SetBackground(c Color) {
	s.bg = c
}

// Goto moves the pen, clamping it to the screen.
func (s *Screen) Goto(x, y int) {
	s.x = Clamp(x, 0, max(s.width-1, 0))
	s.y = Clamp(y, 0, max(s.height-1, 0))
}

// Pen returns the pen position.
func (s *Screen) Pen() (int, int) {
	return s.x, s.y
}

// Right moves the pen n columns right.
func (s *Screen) Right(n int) {
	s.Goto(s.x+n, s.y)
}

// Left moves the pen n columns left.
func (s *Screen) Left(n int) {
	s.Goto(s.x-n, s.y)
}

// Down moves the pen n rows down.
func (s *Screen) Down(n int) {
	s.Goto(s.x, s.y+n)
}

// Return moves the pen to the first column of its row.
func (s *Screen) Return() {
	s.x = 0
}

// WriteRune writes r with the pen colors and advances the pen.
// Runes outside the screen are dropped.
func (s *Screen) WriteRune(r rune) {
	if r == '\n' {
		s.Goto(0, s.y+1)
		return
	}
	if s.x >= 0 && s.x < s.width && s.y >= 0 && s.y < s.height {
		s.cells[s.y][s.x] = Cell{Glyph: r, Fg: s.fg, Bg: s.bg}
	}
	s.x++
}

// WriteString writes text at the pen. A newline moves the pen to the
// start of the next row.
func (s *Screen) WriteString(text string) (int, error) {
	for _, r := range text {
		s.WriteRune(r)
	}
	return len(text), nil
}

// Write implements io.Writer so the screen can be a fmt.Fprintf target.
func (s *Screen) Write(p []byte) (int, error) {
	return s.WriteString(string(p))
}

// DrawText writes a string horizontally starting at (x, y) with the pen colors.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.x, s.y = x, y
	_, _ = s.WriteString(text)
}

// String converts the screen glyphs to a string, rows joined with newlines.
// Colors are dropped.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Glyph)
		}
	}
	return sb.String()
}

// Row returns the glyphs of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}
