package levels

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/numsnake/internal/board"
)

// Board sizes for 80x24 and 40x16 terminals.
var boardSizes = []struct{ w, h int }{
	{79, 44},
	{39, 28},
	{120, 70},
}

func TestLevelCount(t *testing.T) {
	if LevelCount() != 8 {
		t.Errorf("LevelCount() = %d, expected 8", LevelCount())
	}
	if len(LevelNames()) != LevelCount() {
		t.Errorf("LevelNames() has %d entries, expected %d", len(LevelNames()), LevelCount())
	}
	for i, lvl := range Levels {
		if lvl.ID != i+1 {
			t.Errorf("level at index %d has ID %d", i, lvl.ID)
		}
		if lvl.Spawner == nil || lvl.Painter == nil {
			t.Errorf("level %d is missing a spawner or painter", lvl.ID)
		}
	}
}

func TestGetWrapsAround(t *testing.T) {
	tests := []struct {
		number   int
		expected int
	}{
		{1, 1},
		{8, 8},
		{9, 1},
		{10, 2},
		{17, 1},
		{0, 1},
	}

	for _, tc := range tests {
		if got := Get(tc.number).ID; got != tc.expected {
			t.Errorf("Get(%d).ID = %d, expected %d", tc.number, got, tc.expected)
		}
	}
}

func TestFirstLevelHasNoWalls(t *testing.T) {
	b := board.New(79, 44)
	Get(1).Painter.Paint(b)

	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Width(); x++ {
			if !b.IsEmpty(x, y) {
				t.Fatalf("level 1 painted (%d, %d)", x, y)
			}
		}
	}
}

func TestPaintersDrawWalls(t *testing.T) {
	for _, size := range boardSizes {
		for _, lvl := range Levels[1:] {
			b := board.New(size.w, size.h)
			lvl.Painter.Paint(b)

			walls := 0
			for y := 0; y < b.Rows(); y++ {
				for x := 0; x < b.Width(); x++ {
					switch v := b.Get(x, y); v {
					case board.Empty:
					case board.Wall:
						walls++
					default:
						t.Fatalf("level %d painted unexpected value %d", lvl.ID, v)
					}
				}
			}
			if walls == 0 {
				t.Errorf("level %d on %dx%d painted no walls", lvl.ID, size.w, size.h)
			}
		}
	}
}

func TestBarLayout(t *testing.T) {
	b := board.New(79, 44)
	Get(2).Painter.Paint(b)

	// Bar spans x 19..59 on row 22
	for x := 19; x <= 59; x++ {
		if b.Get(x, 22) != board.Wall {
			t.Errorf("expected wall at (%d, 22)", x)
		}
	}
	if !b.IsEmpty(18, 22) || !b.IsEmpty(60, 22) {
		t.Error("bar extends past its endpoints")
	}
}

func TestDottedLayout(t *testing.T) {
	b := board.New(79, 44)
	Get(7).Painter.Paint(b)

	for y := 0; y < 44; y++ {
		wall := b.Get(39, y) == board.Wall
		if wall != (y%2 == 1) {
			t.Errorf("row %d: wall = %v, expected walls only on odd rows", y, wall)
		}
	}
}

func TestSpawnersProduceValidBodies(t *testing.T) {
	for _, size := range boardSizes {
		for _, lvl := range Levels {
			b := board.New(size.w, size.h)
			lvl.Painter.Paint(b)

			for seed := int64(0); seed < 50; seed++ {
				rng := rand.New(rand.NewSource(seed))
				body, dir := lvl.Spawner.Spawn(b, rng)

				if len(body) < 2 {
					t.Fatalf("level %d: spawn body has %d cells", lvl.ID, len(body))
				}

				head, tail := body[0], body[1]
				if tail.Add(dir.Delta()) != head {
					t.Errorf("level %d: heading %s does not point away from tail %v (head %v)", lvl.ID, dir, tail, head)
				}

				for _, p := range body {
					if p.X < 1 || p.Y < 1 || p.X >= b.Width() || p.Y > b.Height() {
						t.Fatalf("level %d on %dx%d: body cell %v out of bounds", lvl.ID, size.w, size.h, p)
					}
				}
			}
		}
	}
}

func TestSpawnAvoidsWalls(t *testing.T) {
	b := board.New(79, 44)

	for _, lvl := range Levels {
		walls := board.New(b.Width(), b.Height())
		lvl.Painter.Paint(walls)

		for seed := int64(0); seed < 50; seed++ {
			rng := rand.New(rand.NewSource(seed))
			body, dir := lvl.Spawner.Spawn(walls, rng)

			for _, p := range body {
				if !walls.IsEmpty(p.X, p.Y) {
					t.Errorf("level %d seed %d: body cell %v is on a wall", lvl.ID, seed, p)
				}
			}
			next := body[0].Add(dir.Delta())
			if !walls.IsEmpty(next.X, next.Y) {
				t.Errorf("level %d seed %d: first step %v hits a wall", lvl.ID, seed, next)
			}
		}
	}
}

func TestSpawnDeterministic(t *testing.T) {
	b := board.New(79, 44)
	lvl := Get(1)

	a, da := lvl.Spawner.Spawn(b, rand.New(rand.NewSource(99)))
	c, dc := lvl.Spawner.Spawn(b, rand.New(rand.NewSource(99)))

	if da != dc || a[0] != c[0] || a[1] != c[1] {
		t.Error("same seed should produce the same spawn")
	}
}
