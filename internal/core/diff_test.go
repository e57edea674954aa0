package core

import (
	"math/rand"
	"testing"
)

// fakeTerminal applies ops the way an ANSI terminal would.
type fakeTerminal struct {
	screen *Screen
	x, y   int
	fg, bg Color
}

func newFakeTerminal(w, h int) *fakeTerminal {
	return &fakeTerminal{screen: NewScreen(w, h)}
}

func (f *fakeTerminal) apply(t *testing.T, ops []Op) {
	t.Helper()
	for _, op := range ops {
		switch op.Kind {
		case OpMoveTo:
			f.x, f.y = op.X, op.Y
		case OpMoveRight:
			if op.N <= 0 {
				t.Fatalf("relative move with non-positive count %d", op.N)
			}
			f.x += op.N
		case OpSetFg:
			f.fg = op.Color
		case OpSetBg:
			f.bg = op.Color
		case OpResetColors:
			f.fg, f.bg = ColorDefault, ColorDefault
		case OpWrite:
			if f.x >= f.screen.Width() || f.y >= f.screen.Height() {
				t.Fatalf("write outside the screen at (%d, %d)", f.x, f.y)
			}
			f.screen.SetCell(f.x, f.y, Cell{Glyph: op.Glyph, Fg: f.fg, Bg: f.bg})
			f.x++
		}
	}
}

func countOps(ops []Op, kind OpKind) int {
	n := 0
	for _, op := range ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func screensEqual(a, b *Screen) bool {
	if !a.SameSize(b) {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Cell(x, y) != b.Cell(x, y) {
				return false
			}
		}
	}
	return true
}

func randomScreen(rng *rand.Rand, w, h int) *Screen {
	s := NewScreen(w, h)
	glyphs := []rune{' ', ' ', ' ', '█', '▀', '▄', '7'}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Cell{Glyph: glyphs[rng.Intn(len(glyphs))]}
			if rng.Intn(3) > 0 {
				c.Fg = Indexed(uint8(rng.Intn(16)))
			}
			if rng.Intn(4) == 0 {
				c.Bg = Indexed(uint8(rng.Intn(16)))
			}
			s.SetCell(x, y, c)
		}
	}
	return s
}

func TestRenderIdenticalEmitsNothing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := randomScreen(rng, 30, 10)

	// Build an identical copy cell by cell
	b := NewScreen(30, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 30; x++ {
			b.SetCell(x, y, a.Cell(x, y))
		}
	}

	r := NewRenderer()
	r.Render(a)
	ops := r.Render(b)

	if got := countOps(ops, OpWrite); got != 0 {
		t.Errorf("identical frame wrote %d glyphs, expected 0", got)
	}
	if len(ops) != 0 {
		t.Errorf("identical frame emitted %d ops, expected none", len(ops))
	}
}

func TestRenderFirstFrameWritesNonBlankCells(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	s := randomScreen(rng, 25, 8)

	nonBlank := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Cell(x, y) != BlankCell {
				nonBlank++
			}
		}
	}

	ops := NewRenderer().Render(s)
	if got := countOps(ops, OpWrite); got != nonBlank {
		t.Errorf("first frame wrote %d glyphs, expected %d", got, nonBlank)
	}
}

func TestRenderRelativeMoveOnSameRow(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(0, 0, "a")
	s.DrawText(3, 0, "b")

	ops := NewRenderer().Render(s)
	expected := []Op{
		{Kind: OpMoveTo, X: 0, Y: 0},
		{Kind: OpWrite, Glyph: 'a'},
		{Kind: OpMoveRight, N: 2},
		{Kind: OpWrite, Glyph: 'b'},
	}

	if len(ops) != len(expected) {
		t.Fatalf("Render() = %v, expected %v", ops, expected)
	}
	for i := range ops {
		if ops[i] != expected[i] {
			t.Errorf("op %d = %v, expected %v", i, ops[i], expected[i])
		}
	}
}

func TestRenderRowBoundaryUsesAbsoluteMove(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(3, 0, "x")
	s.DrawText(0, 1, "y")
	s.DrawText(0, 2, "z")

	ops := NewRenderer().Render(s)

	// The cursor starts at the origin, so the first row needs only a relative move.
	expected := []Op{
		{Kind: OpMoveRight, N: 3},
		{Kind: OpWrite, Glyph: 'x'},
		{Kind: OpMoveTo, X: 0, Y: 1},
		{Kind: OpWrite, Glyph: 'y'},
		{Kind: OpMoveTo, X: 0, Y: 2},
		{Kind: OpWrite, Glyph: 'z'},
	}
	if len(ops) != len(expected) {
		t.Fatalf("Render() = %v, expected %v", ops, expected)
	}
	for i := range ops {
		if ops[i] != expected[i] {
			t.Errorf("op %d = %v, expected %v", i, ops[i], expected[i])
		}
	}
	if moves := countOps(ops, OpMoveTo); moves != 2 {
		t.Errorf("expected 2 absolute moves, got %d in %v", moves, ops)
	}
}

func TestRenderContiguousRunPositionsOnce(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(2, 0, "abcd")

	ops := NewRenderer().Render(s)
	if got := countOps(ops, OpMoveTo) + countOps(ops, OpMoveRight); got != 1 {
		t.Errorf("contiguous run positioned %d times, expected 1: %v", got, ops)
	}
}

func TestRenderColorChangesOnlyWhenNeeded(t *testing.T) {
	s := NewScreen(6, 1)
	s.SetForeground(Indexed(PaletteRed))
	s.DrawText(0, 0, "aaa")
	s.SetBackground(Indexed(PaletteMaroon))
	s.WriteRune('b')

	ops := NewRenderer().Render(s)
	if got := countOps(ops, OpSetFg); got != 1 {
		t.Errorf("expected 1 foreground change, got %d: %v", got, ops)
	}
	if got := countOps(ops, OpSetBg); got != 1 {
		t.Errorf("expected 1 background change, got %d: %v", got, ops)
	}
}

func TestRenderCoalescesDoubleReset(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetForeground(Indexed(PaletteRed))
	s.SetBackground(Indexed(PaletteMaroon))
	s.DrawText(0, 0, "a")
	s.SetForeground(ColorDefault)
	s.SetBackground(ColorDefault)
	s.WriteRune('b')

	ops := NewRenderer().Render(s)
	if got := countOps(ops, OpResetColors); got != 1 {
		t.Errorf("expected a single reset, got %d: %v", got, ops)
	}
	// The reset must not be followed by separate channel resets
	for _, op := range ops {
		if (op.Kind == OpSetFg || op.Kind == OpSetBg) && op.Color.IsDefault() {
			t.Errorf("unexpected channel reset %v", op)
		}
	}
}

func TestRenderColorStatePersistsAcrossFrames(t *testing.T) {
	a := NewScreen(4, 1)
	a.SetForeground(Indexed(PaletteBlue))
	a.DrawText(0, 0, "a")

	b := NewScreen(4, 1)
	b.SetForeground(Indexed(PaletteBlue))
	b.DrawText(0, 0, "a")
	b.DrawText(2, 0, "c")

	r := NewRenderer()
	r.Render(a)
	ops := r.Render(b)

	if got := countOps(ops, OpSetFg); got != 0 {
		t.Errorf("foreground already active, expected no change, got %v", ops)
	}
	// The cursor sits after 'a', one column short of 'c'
	if len(ops) == 0 || ops[0] != (Op{Kind: OpMoveRight, N: 1}) {
		t.Errorf("expected a relative move of 1 first, got %v", ops)
	}
}

func TestRenderRetainsNewScreen(t *testing.T) {
	r := NewRenderer()
	s := NewScreen(2, 2)
	r.Render(s)
	if r.Previous() != s {
		t.Error("Render should retain the new screen")
	}

	r.Reset()
	if r.Previous() != nil {
		t.Error("Reset should drop the retained screen")
	}
}

func TestRenderResizeRepaints(t *testing.T) {
	r := NewRenderer()
	big := NewScreen(8, 4)
	big.DrawText(0, 0, "abc")
	r.Render(big)

	small := NewScreen(4, 2)
	small.DrawText(0, 0, "abc")
	ops := r.Render(small)

	if got := countOps(ops, OpWrite); got != 3 {
		t.Errorf("resized frame wrote %d glyphs, expected full repaint of 3", got)
	}
}

func TestRenderReconstructsFrames(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const w, h = 20, 6

	term := newFakeTerminal(w, h)
	r := NewRenderer()

	for frame := 0; frame < 50; frame++ {
		next := randomScreen(rng, w, h)
		term.apply(t, r.Render(next))
		if !screensEqual(term.screen, next) {
			t.Fatalf("frame %d: terminal does not match rendered screen", frame)
		}
	}
}
