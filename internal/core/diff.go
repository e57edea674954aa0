package core

import "fmt"

// OpKind identifies a terminal operation.
type OpKind int

const (
	OpMoveTo      OpKind = iota // absolute cursor position (X, Y), 0-based
	OpMoveRight                 // relative cursor move right by N
	OpSetFg                     // foreground color; ColorDefault resets the channel
	OpSetBg                     // background color; ColorDefault resets the channel
	OpResetColors               // reset both channels at once
	OpWrite                     // write Glyph and advance the cursor
)

// Op is a single terminal operation produced by the Renderer.
type Op struct {
	Kind  OpKind
	X, Y  int
	N     int
	Color Color
	Glyph rune
}

func (o Op) String() string {
	switch o.Kind {
	case OpMoveTo:
		return fmt.Sprintf("moveto(%d,%d)", o.X, o.Y)
	case OpMoveRight:
		return fmt.Sprintf("right(%d)", o.N)
	case OpSetFg:
		return "fg(" + o.Color.String() + ")"
	case OpSetBg:
		return "bg(" + o.Color.String() + ")"
	case OpResetColors:
		return "reset"
	case OpWrite:
		return fmt.Sprintf("write(%q)", o.Glyph)
	default:
		return "unknown"
	}
}

// Renderer turns successive screens into the terminal operations needed to
// move the terminal from the previous screen to the next one.
// It remembers what it believes the terminal shows: the last emitted screen,
// the real cursor position and the active colors.
type Renderer struct {
	prev    *Screen
	cursorX int
	cursorY int
	fg      Color
	bg      Color
}

// NewRenderer creates a renderer for a cleared terminal with the cursor at
// the origin and default colors.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Reset forgets the retained screen and assumes the terminal was cleared,
// homed and had its colors reset. The next Render paints from a blank screen.
func (r *Renderer) Reset() {
	r.prev = nil
	r.cursorX, r.cursorY = 0, 0
	r.fg, r.bg = ColorDefault, ColorDefault
}

// Previous returns the retained screen, or nil before the first Render.
func (r *Renderer) Previous() *Screen {
	return r.prev
}

// Render diffs next against the retained screen and returns the operations
// that update the terminal. A missing or differently sized retained screen
// is treated as blank. next becomes the retained screen and must not be
// modified afterwards.
func (r *Renderer) Render(next *Screen) []Op {
	prev := r.prev
	if !next.SameSize(prev) {
		prev = nil
	}

	var ops []Op
	vx, vy := 0, 0
	positioned := false

	for y := 0; y < next.height; y++ {
		for x := 0; x < next.width; x++ {
			cell := next.cells[y][x]
			old := BlankCell
			if prev != nil {
				old = prev.cells[y][x]
			}
			if cell == old {
				vx++
				positioned = false
				continue
			}

			if !positioned {
				if r.cursorY == vy && vx > r.cursorX {
					ops = append(ops, Op{Kind: OpMoveRight, N: vx - r.cursorX})
				} else {
					ops = append(ops, Op{Kind: OpMoveTo, X: vx, Y: vy})
				}
				positioned = true
			}

			ops = r.appendColors(ops, cell.Fg, cell.Bg)
			ops = append(ops, Op{Kind: OpWrite, Glyph: cell.Glyph})
			vx++
			r.cursorX, r.cursorY = vx, vy
		}
		vx = 0
		vy++
		positioned = false
	}

	r.prev = next
	return ops
}

// appendColors emits color changes for the channels that differ from the
// active ones. Resetting both channels collapses into a single reset.
func (r *Renderer) appendColors(ops []Op, fg, bg Color) []Op {
	fgChanged := fg != r.fg
	bgChanged := bg != r.bg
	r.fg, r.bg = fg, bg

	if fgChanged && bgChanged && fg.IsDefault() && bg.IsDefault() {
		return append(ops, Op{Kind: OpResetColors})
	}
	if fgChanged {
		ops = append(ops, Op{Kind: OpSetFg, Color: fg})
	}
	if bgChanged {
		ops = append(ops, Op{Kind: OpSetBg, Color: bg})
	}
	return ops
}
