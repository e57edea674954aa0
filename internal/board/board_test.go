package board

import (
	"testing"

	"github.com/vovakirdan/numsnake/internal/core"
)

func TestNewBoard(t *testing.T) {
	b := New(10, 6)

	if b.Width() != 10 || b.Height() != 6 {
		t.Errorf("expected 10x6 board, got %dx%d", b.Width(), b.Height())
	}
	if b.Rows() != 7 {
		t.Errorf("Rows() = %d, expected height+1 = 7", b.Rows())
	}

	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y) != Empty {
				t.Fatalf("new board should be empty, got %d at (%d, %d)", b.Get(x, y), x, y)
			}
		}
	}
}

func TestBoardSetGet(t *testing.T) {
	b := New(5, 5)
	b.Set(2, 5, 11)

	if b.Get(2, 5) != 11 {
		t.Errorf("Get(2, 5) = %d, expected 11", b.Get(2, 5))
	}
	if b.IsEmpty(2, 5) {
		t.Error("IsEmpty(2, 5) should be false after Set")
	}
	if !b.IsEmpty(3, 5) {
		t.Error("IsEmpty(3, 5) should be true")
	}
}

func TestBoardClone(t *testing.T) {
	b := New(4, 4)
	b.Set(1, 1, Wall)

	c := b.Clone()
	c.Set(2, 2, 11)

	if c.Get(1, 1) != Wall {
		t.Error("clone should copy existing cells")
	}
	if b.Get(2, 2) != Empty {
		t.Error("writes to the clone must not reach the original")
	}
}

func TestPairsCoverEveryRowOnce(t *testing.T) {
	for _, h := range []int{0, 1, 2, 3, 4, 9, 10} {
		b := New(3, h)
		// Tag each row with its index so pairs can be traced back
		for y := 0; y < b.Rows(); y++ {
			b.Set(0, y, int16(y))
		}

		seen := make(map[int16]int)
		next := 0
		for i, p := range b.Pairs() {
			if i != next {
				t.Errorf("height %d: pair index %d, expected %d", h, i, next)
			}
			next++

			seen[p.Upper[0]]++
			if p.Lower != nil {
				seen[p.Lower[0]]++
				if p.Lower[0] != p.Upper[0]+1 {
					t.Errorf("height %d: pair (%d, %d) is not adjacent", h, p.Upper[0], p.Lower[0])
				}
			} else if int(p.Upper[0]) != b.Rows()-1 {
				t.Errorf("height %d: unpaired row %d is not the last row", h, p.Upper[0])
			}
		}

		for y := 0; y < b.Rows(); y++ {
			if seen[int16(y)] != 1 {
				t.Errorf("height %d: row %d seen %d times", h, y, seen[int16(y)])
			}
		}
	}
}

func TestPairsOddRowCount(t *testing.T) {
	// Visible height 4 stores 5 rows: (0,1), (2,3), (4)
	b := New(2, 4)

	var pairs []RowPair
	for _, p := range b.Pairs() {
		pairs = append(pairs, p)
	}

	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(pairs))
	}
	if pairs[2].Lower != nil {
		t.Error("last pair of an odd row count should have no lower row")
	}
	if pairs[0].Lower == nil || pairs[1].Lower == nil {
		t.Error("leading pairs should have both rows")
	}
}

func TestPairsStopEarly(t *testing.T) {
	b := New(2, 9)
	n := 0
	for range b.Pairs() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iteration should stop on break, got %d", n)
	}
}

func TestDrawLine(t *testing.T) {
	b := New(10, 10)
	b.DrawLine(core.Pt(2, 3), core.Pt(6, 3), Wall)

	for x := 2; x <= 6; x++ {
		if b.Get(x, 3) != Wall {
			t.Errorf("expected wall at (%d, 3)", x)
		}
	}
	if b.Get(1, 3) != Empty || b.Get(7, 3) != Empty {
		t.Error("line should not extend past its endpoints")
	}
}
