// Package core provides the fundamental types of the game: points and
// directions, the terminal frame buffer and the diff renderer that turns
// successive frames into terminal operations.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is one of the four headings.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Y: -1}
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	}
	return Point{}
}

// Vertical reports whether the direction runs along the Y axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Perpendicular reports whether d and other lie on different axes.
func (d Direction) Perpendicular(other Direction) bool {
	return d.Vertical() != other.Vertical()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Rect represents an axis-aligned rectangle of terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centered in r.
// Odd remainders are dropped towards the top-left, matching integer halving.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + r.W/2 - w/2, Y: r.Y + r.H/2 - h/2, W: w, H: h}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
