// Package board provides the double vertical resolution pixel grid the game
// simulates on. Two board rows collapse into one terminal row using half-block
// glyphs, so the board exposes its rows in pairs.
package board

import "iter"

// Empty marks a cell with no wall or occupant.
const Empty int16 = -1

// Wall is the color code painted by wall geometry.
const Wall int16 = 9

// Board is a grid of cell values: Empty or a 0..15 color code.
// It holds one row more than its visible height so the final row can be
// presented unpaired.
// Accessors do not check bounds; callers keep x < Width() and y <= Height().
type Board struct {
	width  int
	height int
	rows   [][]int16
}

// New creates an empty board of width w and visible height h.
func New(w, h int) *Board {
	b := &Board{
		width:  w,
		height: h,
		rows:   make([][]int16, h+1),
	}
	for y := range b.rows {
		row := make([]int16, w)
		for x := range row {
			row[x] = Empty
		}
		b.rows[y] = row
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the visible height. The board stores Height()+1 rows.
func (b *Board) Height() int {
	return b.height
}

// Rows returns the number of stored rows.
func (b *Board) Rows() int {
	return len(b.rows)
}

// Set stores value at (x, y).
func (b *Board) Set(x, y int, value int16) {
	b.rows[y][x] = value
}

// Get returns the value at (x, y).
func (b *Board) Get(x, y int) int16 {
	return b.rows[y][x]
}

// IsEmpty reports whether (x, y) holds no wall or occupant.
func (b *Board) IsEmpty(x, y int) bool {
	return b.rows[y][x] < 0
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		width:  b.width,
		height: b.height,
		rows:   make([][]int16, len(b.rows)),
	}
	for y, row := range b.rows {
		c.rows[y] = append([]int16(nil), row...)
	}
	return c
}

// RowPair is two vertically adjacent board rows rendered as one terminal row.
// Lower is nil when Upper is the final row of an odd row count.
type RowPair struct {
	Upper []int16
	Lower []int16
}

// Pairs yields the rows two at a time, (0,1), (2,3), ..., indexed by pair
// number. Every row appears in exactly one pair.
func (b *Board) Pairs() iter.Seq2[int, RowPair] {
	return func(yield func(int, RowPair) bool) {
		for i := 0; i < len(b.rows); i += 2 {
			p := RowPair{Upper: b.rows[i]}
			if i+1 < len(b.rows) {
				p.Lower = b.rows[i+1]
			}
			if !yield(i/2, p) {
				return
			}
		}
	}
}
