// Package levels defines the wall layouts and starting positions of the game.
// Each level pairs a Painter that draws walls onto an empty board with a
// Spawner that places the initial body.
package levels

import (
	"math/rand"

	"github.com/vovakirdan/numsnake/internal/board"
	"github.com/vovakirdan/numsnake/internal/core"
)

// Painter draws a level's walls onto an empty board.
type Painter interface {
	Paint(b *board.Board)
}

// Spawner produces the initial body (head first, at least two cells) and
// heading for a freshly entered level. The heading points away from the
// second cell.
type Spawner interface {
	Spawn(b *board.Board, rng *rand.Rand) ([]core.Point, core.Direction)
}

// PaintFunc adapts a function to a Painter.
type PaintFunc func(b *board.Board)

// Paint calls f(b).
func (f PaintFunc) Paint(b *board.Board) {
	f(b)
}

// SpawnFunc adapts a function to a Spawner.
type SpawnFunc func(b *board.Board, rng *rand.Rand) ([]core.Point, core.Direction)

// Spawn calls f(b, rng).
func (f SpawnFunc) Spawn(b *board.Board, rng *rand.Rand) ([]core.Point, core.Direction) {
	return f(b, rng)
}

// Level is one entry of the level table.
type Level struct {
	ID      int
	Name    string
	Spawner Spawner
	Painter Painter
}

// Levels is the ordered level table. Level numbers are 1-based.
var Levels = []Level{
	{ID: 1, Name: "Open Field", Spawner: SpawnFunc(spawnNearCenter), Painter: PaintFunc(paintNothing)},
	{ID: 2, Name: "The Bar", Spawner: SpawnFunc(spawnHorizontal), Painter: PaintFunc(paintBar)},
	{ID: 3, Name: "Twin Pillars", Spawner: SpawnFunc(spawnVertical), Painter: PaintFunc(paintPillars)},
	{ID: 4, Name: "Pinwheel", Spawner: SpawnFunc(spawnCentered), Painter: PaintFunc(paintPinwheel)},
	{ID: 5, Name: "Frame", Spawner: SpawnFunc(spawnCentered), Painter: PaintFunc(paintFrame)},
	{ID: 6, Name: "Teeth", Spawner: SpawnFunc(spawnCentered), Painter: PaintFunc(paintTeeth)},
	{ID: 7, Name: "Dotted Line", Spawner: SpawnFunc(spawnCentered), Painter: PaintFunc(paintDotted)},
	{ID: 8, Name: "Comb", Spawner: SpawnFunc(spawnCentered), Painter: PaintFunc(paintComb)},
}

// LevelCount returns the number of distinct levels.
func LevelCount() int {
	return len(Levels)
}

// Get returns the level for a 1-based level number. Numbers past the end of
// the table wrap around to the first level.
func Get(number int) Level {
	if number < 1 {
		number = 1
	}
	return Levels[(number-1)%len(Levels)]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
