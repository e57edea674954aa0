package levels

import (
	"math/rand"

	"github.com/vovakirdan/numsnake/internal/board"
	"github.com/vovakirdan/numsnake/internal/core"
)

// startBody returns a two cell body with the tail one step behind head.
func startBody(head core.Point, dir core.Direction) []core.Point {
	d := dir.Delta()
	return []core.Point{head, core.Pt(head.X-d.X, head.Y-d.Y)}
}

func randomDirection(rng *rand.Rand) core.Direction {
	return core.Direction(rng.Intn(4))
}

// spawnNearCenter places the head within three cells of the center, facing
// any direction.
func spawnNearCenter(b *board.Board, rng *rand.Rand) ([]core.Point, core.Direction) {
	cx, cy := b.Width()/2, b.Height()/2
	head := core.Pt(cx-3+rng.Intn(6), cy-3+rng.Intn(6))
	dir := randomDirection(rng)
	return startBody(head, dir), dir
}

// spawnHorizontal places the head anywhere off the middle bar, moving left
// or right.
func spawnHorizontal(b *board.Board, rng *rand.Rand) ([]core.Point, core.Direction) {
	w, h := b.Width(), b.Height()

	head := core.Pt(2+rng.Intn(w-4), 1+rng.Intn(h-1))
	if head.Y == h/2 {
		head.Y--
	}

	dir := core.DirLeft
	if rng.Intn(2) == 1 {
		dir = core.DirRight
	}
	return startBody(head, dir), dir
}

// spawnVertical places the head anywhere off the two pillars, moving up or
// down.
func spawnVertical(b *board.Board, rng *rand.Rand) ([]core.Point, core.Direction) {
	w, h := b.Width(), b.Height()

	head := core.Pt(1+rng.Intn(w-1), 2+rng.Intn(h-3))
	if head.X == w/3 || head.X == (w/3)*2 {
		head.X--
	}

	dir := core.DirUp
	if rng.Intn(2) == 1 {
		dir = core.DirDown
	}
	return startBody(head, dir), dir
}

// spawnCentered places the head at the exact center, facing a random
// direction whose tail cell and first step are both free of walls.
func spawnCentered(b *board.Board, rng *rand.Rand) ([]core.Point, core.Direction) {
	head := core.Pt(b.Width()/2, b.Height()/2)

	for _, i := range rng.Perm(4) {
		dir := core.Direction(i)
		body := startBody(head, dir)
		if free(b, body[1]) && free(b, head.Add(dir.Delta())) {
			return body, dir
		}
	}

	dir := randomDirection(rng)
	return startBody(head, dir), dir
}

func free(b *board.Board, p core.Point) bool {
	if p.X < 1 || p.Y < 1 || p.X >= b.Width() || p.Y > b.Height() {
		return false
	}
	return b.IsEmpty(p.X, p.Y)
}
