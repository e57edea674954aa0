package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Cell(x, y) != BlankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.Cell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	c := Cell{Glyph: 'X', Fg: Indexed(PaletteRed), Bg: Indexed(PaletteMaroon)}
	s.SetCell(5, 5, c)
	if s.Cell(5, 5) != c {
		t.Errorf("Cell(5, 5) = %+v, expected %+v", s.Cell(5, 5), c)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, c)  // Should not panic
	s.SetCell(100, 0, c) // Should not panic
	s.SetCell(0, -1, c)  // Should not panic
	s.SetCell(0, 100, c) // Should not panic

	if s.Cell(-1, 0) != BlankCell {
		t.Error("Out of bounds Cell should return a blank cell")
	}
}

func TestScreenPenColors(t *testing.T) {
	s := NewScreen(20, 5)
	s.SetForeground(Indexed(PaletteWhite))
	s.SetBackground(Indexed(PaletteMaroon))
	s.DrawText(2, 1, "Hi")

	got := s.Cell(3, 1)
	if got.Glyph != 'i' || got.Fg != Indexed(PaletteWhite) || got.Bg != Indexed(PaletteMaroon) {
		t.Errorf("Cell(3, 1) = %+v, expected 'i' on white/maroon", got)
	}

	x, y := s.Pen()
	if x != 4 || y != 1 {
		t.Errorf("Pen() = (%d, %d), expected (4, 1)", x, y)
	}
}

func TestScreenWriteNewline(t *testing.T) {
	s := NewScreen(10, 3)
	_, _ = s.WriteString("ab\ncd")

	if s.Row(0) != "ab        " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.Row(1) != "cd        " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenPenClamps(t *testing.T) {
	s := NewScreen(10, 5)

	s.Goto(3, 2)
	s.Right(100)
	if x, _ := s.Pen(); x != 9 {
		t.Errorf("Right() past the edge should clamp to 9, got %d", x)
	}
	s.Left(100)
	if x, _ := s.Pen(); x != 0 {
		t.Errorf("Left() past the edge should clamp to 0, got %d", x)
	}
	s.Down(100)
	if _, y := s.Pen(); y != 4 {
		t.Errorf("Down() past the edge should clamp to 4, got %d", y)
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)

	// Only "He" should fit
	s.DrawText(18, 0, "Hello")
	if s.Cell(18, 0).Glyph != 'H' || s.Cell(19, 0).Glyph != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
	if s.Row(1) != strings.Repeat(" ", 20) {
		t.Error("Clipped text should not wrap onto the next row")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetForeground(Indexed(PaletteBlue))
	s.DrawText(0, 0, "XXXXXXXXXX")

	s.Clear()

	for x := 0; x < 10; x++ {
		if s.Cell(x, 0) != BlankCell {
			t.Errorf("After Clear, expected blank at (%d, 0), got %+v", x, s.Cell(x, 0))
		}
	}
	s.WriteRune('Y')
	if s.Cell(0, 0).Fg != ColorDefault {
		t.Error("Clear should reset pen colors")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestColorIndexed(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault should be default")
	}

	// Palette index 0 must stay distinguishable from the default color
	black := Indexed(0)
	if black.IsDefault() {
		t.Error("Indexed(0) should not be default")
	}
	if black.Index() != 0 {
		t.Errorf("Indexed(0).Index() = %d, expected 0", black.Index())
	}
	if Indexed(208).String() != "208" {
		t.Errorf("Indexed(208).String() = %q", Indexed(208).String())
	}
}
