package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/numsnake/internal/config"
	"github.com/vovakirdan/numsnake/internal/core"
	"github.com/vovakirdan/numsnake/internal/storage"
)

// Game is the simulation the model hosts.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.Input) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Optional game extras used for logging.
type (
	levelNamer  interface{ LevelName() string }
	debugStater interface{ DebugState() string }
)

// Options configures a hosted session.
type Options struct {
	Config     config.SnakeConfig
	Runtime    core.RuntimeConfig
	Store      *storage.Store // nil disables score saving
	Logger     *log.Logger    // nil discards
	Output     io.Writer      // defaults to os.Stdout
	Player     string
	Difficulty string // preset name stored with scores
}

// Model is the Bubble Tea model for one game session.
// Bubble Tea's own renderer is disabled: the model paints the terminal
// itself from the diff renderer's operations.
type Model struct {
	game       Game
	front      *core.Screen // retained by the renderer
	back       *core.Screen
	renderer   *core.Renderer
	enc        *Encoder
	out        io.Writer
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	difficulty *config.DifficultyManager
	basePeriod time.Duration
	minPeriod  time.Duration
	runtime    core.RuntimeConfig
	player     string
	preset     string
	state      core.GameState
	ticks      uint64
	lastTick   time.Time
	started    bool
	scoreSaved bool
	quitting   bool
	err        error
}

// NewModel creates a model and resets game for a new session.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickPeriod = opts.Config.TickPeriod()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		back:       core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   core.NewRenderer(),
		enc:        NewEncoder(),
		out:        out,
		store:      opts.Store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		basePeriod: opts.Config.TickPeriod(),
		minPeriod:  opts.Config.MinTickPeriod(),
		runtime:    cfg,
		player:     opts.Player,
		preset:     opts.Difficulty,
		state:      game.State(),
	}
}

// Init schedules the first paint.
func (m Model) Init() tea.Cmd {
	return startCmd
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m.handleStart()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleStart() (tea.Model, tea.Cmd) {
	m.started = true
	m.lastTick = time.Now()
	m.enc.Begin()
	m.renderer.Reset()
	m.logger.Info("session started",
		"player", m.player,
		"width", m.runtime.ScreenW,
		"height", m.runtime.ScreenH,
		"seed", m.runtime.Seed,
	)
	if err := m.paint(); err != nil {
		return m, tea.Quit
	}
	return m, tickCmd(m.period())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		return m.quit()
	}

	m.step(core.Press(action))
	if err := m.paint(); err != nil {
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the running game and repaints from a cleared terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.runtime.ScreenW && msg.Height == m.runtime.ScreenH {
		return m, nil
	}

	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.game.Resize(msg.Width, msg.Height)
	m.front = nil
	m.back = core.NewScreen(msg.Width, msg.Height)
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)

	if !m.started {
		return m, nil
	}
	m.enc.Clear()
	m.renderer.Reset()
	if err := m.paint(); err != nil {
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the simulation and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	elapsed := now.Sub(m.lastTick)
	m.lastTick = now
	m.ticks++

	m.step(core.Tick(elapsed))
	if err := m.paint(); err != nil {
		return m, tea.Quit
	}
	return m, tickCmd(m.period())
}

// step feeds one input to the game and reacts to its events.
func (m *Model) step(in core.Input) {
	prevLevel := m.state.Level
	result := m.game.Step(in)
	m.state = result.State

	for _, e := range result.Events {
		switch e {
		case core.EventLevelUp:
			var name string
			if ln, ok := m.game.(levelNamer); ok {
				name = ln.LevelName()
			}
			m.logger.Info("level up", "from", prevLevel, "to", m.state.Level, "name", name, "score", m.state.Score)
		case core.EventLifeLost:
			m.logger.Info("life lost", "lives", m.state.Lives, "score", m.state.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "score", m.state.Score, "level", m.state.Level)
			if ds, ok := m.game.(debugStater); ok {
				m.logger.Debug("final state\n" + ds.DebugState())
			}
			m.saveScore()
		case core.EventRestart:
			m.logger.Info("restart")
			m.scoreSaved = false
			m.ticks = 0
		default:
			m.logger.Debug("event", "event", e, "score", m.state.Score)
		}
	}
}

// saveScore records the finished session once. Failures are logged and
// the game continues.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.state.Score <= 0 {
		return
	}
	m.scoreSaved = true

	id, err := m.store.SaveScore(storage.ScoreEntry{
		Player:     m.player,
		Score:      m.state.Score,
		Level:      m.state.Level,
		Difficulty: m.preset,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "id", id, "score", m.state.Score)
}

// paint renders the game into the back screen and writes the difference
// to the terminal. The renderer keeps the painted screen, so the two
// screens swap roles afterwards.
func (m *Model) paint() error {
	next := m.back
	m.game.Render(next)
	m.enc.Encode(m.renderer.Render(next))
	if err := m.enc.Flush(m.out); err != nil {
		m.err = fmt.Errorf("write to terminal: %w", err)
		m.logger.Error("write failed", "error", err)
		return m.err
	}

	if m.front == nil || !m.front.SameSize(next) {
		m.front = core.NewScreen(next.Width(), next.Height())
	}
	m.back, m.front = m.front, next
	return nil
}

func (m Model) period() time.Duration {
	return m.difficulty.TickPeriod(m.basePeriod, m.minPeriod, m.state.Score, m.state.Level, m.ticks)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.enc.End()
	if err := m.enc.Flush(m.out); err != nil {
		m.err = fmt.Errorf("write to terminal: %w", err)
	}
	m.logger.Info("session ended", "score", m.state.Score, "level", m.state.Level)
	return m, tea.Quit
}

// View is unused: the model writes to the terminal itself.
func (m Model) View() string {
	return ""
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.state
}

// Err returns the write error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays game on the local terminal until the player quits.
func Run(game Game, opts Options) error {
	// Bubble Tea leaves the terminal cooked when its renderer is off.
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("cannot enter raw mode: %w", err)
		}
		defer term.Restore(fd, state) //nolint:errcheck // Best-effort restore
	}

	p := tea.NewProgram(NewModel(game, opts), tea.WithoutRenderer())
	stop := watchResize(p, int(os.Stdout.Fd()))
	defer stop()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
