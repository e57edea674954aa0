package core

import "strconv"

// Color is a terminal color for one channel of a screen cell.
// The zero value is the terminal's default color; any other value
// carries an 8-bit palette index.
type Color uint16

// ColorDefault leaves the channel at the terminal's default color.
const ColorDefault Color = 0

// indexedFlag marks a Color as carrying a palette index.
const indexedFlag Color = 1 << 8

// Palette indices used by the game.
const (
	PaletteMaroon uint8 = 1
	PaletteRed    uint8 = 9
	PaletteYellow uint8 = 11
	PaletteBlue   uint8 = 12
	PaletteWhite  uint8 = 15
)

// Indexed returns the palette color n.
func Indexed(n uint8) Color {
	return indexedFlag | Color(n)
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c&indexedFlag == 0
}

// Index returns the palette index of c.
// The result is meaningless for ColorDefault.
func (c Color) Index() uint8 {
	return uint8(c & 0xff)
}

// String returns "default" or the palette index.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return strconv.Itoa(int(c.Index()))
}
