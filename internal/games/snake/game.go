// Package snake implements the number-collecting snake game: the simulation
// state machine that advances one tick at a time on a double vertical
// resolution board, and the projector that draws it into a terminal screen.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/numsnake/internal/board"
	"github.com/vovakirdan/numsnake/internal/core"
	"github.com/vovakirdan/numsnake/internal/levels"
)

const (
	// BodyColor is the board value painted for every body cell.
	BodyColor int16 = 11

	// LastTarget is the number whose collection completes a level.
	LastTarget = 10

	// DefaultLives is used when the config does not set a positive count.
	DefaultLives = 5

	// MinScreenW and MinScreenH are the smallest terminal that fits a
	// playable board.
	MinScreenW = 12
	MinScreenH = 7
)

// Playfield returns the board size for a terminal of w x h characters.
// The board spans every column but the last and two rows per terminal row
// below the status line, less the frame.
func Playfield(w, h int) (int, int) {
	return w - 1, 2*h - 4
}

// Game implements the snake simulation.
type Game struct {
	table []levels.Level
	cfg   core.RuntimeConfig
	rng   *rand.Rand
	tick  uint64

	// Snake state
	body    []core.Point // Head at index 0
	heading core.Direction
	moved   core.Direction // Heading the body last moved along
	growth  int            // Tail cells still to add

	// Target state
	target    core.Point
	hasTarget bool
	value     int // Number shown at the target, 1..LastTarget

	score  int
	lives  int
	level  int
	paused bool

	// Boards: walls is painted once per level, frame is walls plus body and
	// is rebuilt every tick.
	walls *board.Board
	frame *board.Board

	// Screen dimensions
	screenW int
	screenH int

	elapsed time.Duration
	events  []core.Event
}

// New creates a game over the built-in level table.
func New() *Game {
	return NewWithLevels(levels.Levels)
}

// NewWithLevels creates a game over a custom level table.
func NewWithLevels(table []levels.Level) *Game {
	return &Game{table: table}
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Lives <= 0 {
		cfg.Lives = DefaultLives
	}
	if cfg.StartLevel < 1 {
		cfg.StartLevel = 1
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.restart()
}

// restart begins a new session on the same RNG stream.
func (g *Game) restart() {
	g.score = 0
	g.lives = g.cfg.Lives
	g.level = g.cfg.StartLevel
	g.paused = true
	g.walls = nil
	g.frame = nil
	g.elapsed = time.Millisecond
	g.resetAttempt()
}

// resetAttempt clears the body and target so they are spawned afresh.
func (g *Game) resetAttempt() {
	g.body = nil
	g.heading = core.DirRight
	g.moved = core.DirRight
	g.growth = 0
	g.value = 1
	g.hasTarget = false
}

// Resize records a new terminal size. The current level keeps its board;
// the next level is laid out for the new size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// TooSmall reports whether the terminal cannot fit a board.
func (g *Game) TooSmall() bool {
	return g.screenW < MinScreenW || g.screenH < MinScreenH
}

// GameOver reports whether all lives are spent.
func (g *Game) GameOver() bool {
	return g.lives <= 0
}

// Step applies one input.
func (g *Game) Step(in core.Input) core.StepResult {
	g.events = nil

	if dir, ok := in.Action.Direction(); ok {
		g.steer(dir)
		return g.result()
	}

	switch in.Action {
	case core.ActionConfirm:
		switch {
		case g.GameOver():
			g.restart()
			g.emit(core.EventRestart)
		case g.paused:
			g.paused = false
		}
	case core.ActionPause:
		g.paused = true
	case core.ActionTick:
		g.elapsed = in.Elapsed
		g.advance()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// steer changes the heading. Requests along the current heading's axis
// are ignored, and so are requests along the axis the body last moved on,
// so several presses within one tick cannot reverse it.
func (g *Game) steer(dir core.Direction) {
	if dir.Perpendicular(g.heading) && dir.Perpendicular(g.moved) {
		g.heading = dir
	}
}

// advance runs one tick: prepare the level, move if running, prepare
// again so a reset or level-up shows its fresh spawn, then rebuild the frame.
func (g *Game) advance() {
	g.tick++
	if g.TooSmall() && g.walls == nil {
		return
	}

	g.ensureLevel()
	if !g.paused && !g.GameOver() {
		g.move()
	}
	g.ensureLevel()
	g.paintFrame()
}

// ensureLevel paints the walls, spawns the body and places the target
// whenever they are missing.
func (g *Game) ensureLevel() {
	if g.walls == nil {
		w, h := Playfield(g.screenW, g.screenH)
		g.walls = board.New(w, h)
		g.currentLevel().Painter.Paint(g.walls)
	}

	if len(g.body) == 0 {
		body, dir := g.currentLevel().Spawner.Spawn(g.walls, g.rng)
		if len(body) < 2 {
			panic(fmt.Sprintf("snake: level %d spawned a body of %d cells", g.level, len(body)))
		}
		g.body = body
		g.heading = dir
		g.moved = dir
	}

	if !g.hasTarget {
		g.placeTarget()
	}
}

func (g *Game) currentLevel() levels.Level {
	return g.table[(g.level-1)%len(g.table)]
}

// move advances the body one cell along the heading.
func (g *Game) move() {
	if g.growth > 0 {
		g.body = append(g.body, g.body[len(g.body)-1])
		g.growth--
	}

	head := g.body[0].Add(g.heading.Delta())
	w, h := g.walls.Width(), g.walls.Height()
	if head.X < 1 || head.Y < 1 || head.X >= w || head.Y > h {
		g.collide()
		return
	}
	if !g.walls.IsEmpty(head.X, head.Y) {
		g.collide()
		return
	}

	for i := len(g.body) - 1; i > 0; i-- {
		g.body[i] = g.body[i-1]
		if g.body[i] == head {
			g.collide()
			return
		}
	}
	g.body[0] = head
	g.moved = g.heading

	if g.hasTarget && samePair(head, g.target) {
		g.collect()
	}
}

// samePair reports whether a and b share a column and a terminal row.
func samePair(a, b core.Point) bool {
	return a.X == b.X && a.Y-a.Y%2 == b.Y-b.Y%2
}

// collect scores the current target. Collecting the last number completes
// the level.
func (g *Game) collect() {
	g.score += g.value * 100

	if g.value == LastTarget {
		g.level++
		g.resetAttempt()
		g.paused = true
		g.walls = nil
		g.emit(core.EventLevelUp)
		return
	}

	g.growth = g.value * 4
	g.value++
	g.hasTarget = false
	g.emit(core.EventTargetCollected)
}

// collide spends a life. With lives left the level restarts from a fresh
// spawn at a score penalty; otherwise the state freezes for the game over
// screen.
func (g *Game) collide() {
	g.lives--
	g.paused = true

	if g.lives > 0 {
		g.score -= g.cfg.Penalty
		g.resetAttempt()
		g.emit(core.EventLifeLost)
		return
	}
	g.emit(core.EventGameOver)
}

// placeTarget puts the target on a random free cell that no body cell shares
// a terminal row with. If random probing fails it falls back to a scan.
func (g *Game) placeTarget() {
	w, h := g.walls.Width(), g.walls.Height()
	if w < 3 || h < 4 {
		return
	}

	for range 1000 {
		p := core.Pt(1+g.rng.Intn(w-2), 1+g.rng.Intn(h-3))
		if g.targetFits(p) {
			g.target = p
			g.hasTarget = true
			return
		}
	}

	for y := 1; y <= h-3; y++ {
		for x := 1; x <= w-2; x++ {
			if p := core.Pt(x, y); g.targetFits(p) {
				g.target = p
				g.hasTarget = true
				return
			}
		}
	}
}

func (g *Game) targetFits(p core.Point) bool {
	if !g.walls.IsEmpty(p.X, p.Y) {
		return false
	}
	for _, c := range g.body {
		if samePair(c, p) {
			return false
		}
	}
	return true
}

// paintFrame rebuilds the frame board from the walls and the body.
func (g *Game) paintFrame() {
	g.frame = g.walls.Clone()
	for _, c := range g.body {
		if c.X >= 0 && c.Y >= 0 && c.X < g.frame.Width() && c.Y < g.frame.Rows() {
			g.frame.Set(c.X, c.Y, BodyColor)
		}
	}
}

// Board returns the board drawn by the last tick, or nil before the first.
func (g *Game) Board() *board.Board {
	return g.frame
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    max(g.lives, 0),
		Level:    g.level,
		GameOver: g.GameOver(),
		Paused:   g.paused,
	}
}

// LevelName returns the name of the level being played.
func (g *Game) LevelName() string {
	return g.currentLevel().Name
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Lives: %d, Level: %d\n", g.tick, g.score, g.lives, g.level))
	b.WriteString(fmt.Sprintf("Body len: %d, Heading: %s, Growth: %d\n", len(g.body), g.heading, g.growth))
	if len(g.body) > 0 {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Target %d: (%d, %d)\n", g.body[0].X, g.body[0].Y, g.value, g.target.X, g.target.Y))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v\n", g.GameOver(), g.paused))
	return b.String()
}
