package tui

import (
	"bytes"
	"io"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/numsnake/internal/core"
)

// Sequences termenv has no helper for.
const (
	autowrapOffSeq = "?7l"
	autowrapOnSeq  = "?7h"
	defaultFgSeq   = "39"
	defaultBgSeq   = "49"
)

// Encoder buffers renderer operations as ANSI escape sequences.
// Nothing reaches the terminal until Flush.
type Encoder struct {
	buf bytes.Buffer
	out *termenv.Output
}

// NewEncoder creates an encoder with an empty buffer.
func NewEncoder() *Encoder {
	e := &Encoder{}
	e.out = termenv.NewOutput(&e.buf, termenv.WithProfile(termenv.ANSI256))
	return e
}

// Begin takes over the terminal: alternate screen, hidden cursor, no
// autowrap and a cleared screen with default colors. It matches the state
// core.Renderer.Reset assumes.
func (e *Encoder) Begin() {
	e.out.AltScreen()
	e.out.HideCursor()
	e.csi(autowrapOffSeq)
	e.Clear()
}

// Clear wipes the screen, homes the cursor and resets colors.
func (e *Encoder) Clear() {
	e.sgr(termenv.ResetSeq)
	e.out.ClearScreen()
	e.out.MoveCursor(1, 1)
}

// End gives the terminal back.
func (e *Encoder) End() {
	e.sgr(termenv.ResetSeq)
	e.csi(autowrapOnSeq)
	e.out.ShowCursor()
	e.out.ExitAltScreen()
}

// Encode appends the sequences for ops.
func (e *Encoder) Encode(ops []core.Op) {
	for _, op := range ops {
		switch op.Kind {
		case core.OpMoveTo:
			e.out.MoveCursor(op.Y+1, op.X+1)
		case core.OpMoveRight:
			e.out.CursorForward(op.N)
		case core.OpSetFg:
			e.sgr(colorSeq(op.Color, false))
		case core.OpSetBg:
			e.sgr(colorSeq(op.Color, true))
		case core.OpResetColors:
			e.sgr(termenv.ResetSeq)
		case core.OpWrite:
			e.buf.WriteRune(op.Glyph)
		}
	}
}

// Len returns the number of buffered bytes.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Bytes returns the buffered bytes without consuming them.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Flush writes the buffered bytes to w in one call and empties the buffer.
func (e *Encoder) Flush(w io.Writer) error {
	if e.buf.Len() == 0 {
		return nil
	}
	_, err := w.Write(e.buf.Bytes())
	e.buf.Reset()
	return err
}

func (e *Encoder) csi(seq string) {
	e.buf.WriteString(termenv.CSI)
	e.buf.WriteString(seq)
}

func (e *Encoder) sgr(seq string) {
	e.csi(seq + "m")
}

func colorSeq(c core.Color, bg bool) string {
	if c.IsDefault() {
		if bg {
			return defaultBgSeq
		}
		return defaultFgSeq
	}
	return termenv.ANSI256Color(c.Index()).Sequence(bg)
}
