package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numsnake/internal/config"
	"github.com/vovakirdan/numsnake/internal/games/snake"
	"github.com/vovakirdan/numsnake/internal/platform/tui"
	"github.com/vovakirdan/numsnake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagSeed       int64
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Space        - Resume, or start again after game over
  Esc          - Pause
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 9 lives, speed ramps up slowly from the start
  normal - speed starts at 30% of the ramp
  hard   - 3 lives, speed starts at 70% of the ramp
  fixed  - constant speed (the default)

Examples:
  numsnake play
  numsnake play --difficulty hard
  numsnake play --level 5 --seed 42
  numsnake play --config ./my-snake.yaml --log /tmp/numsnake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags binds the play flags to c. The root command shares them so
// that a bare "numsnake" plays.
func addPlayFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	c.Flags().IntVar(&flagLevel, "level", 0, "Level to start on (default from config)")
	c.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	c.Flags().StringVar(&flagLogPath, "log", "", "Write session log to this file")
}

// loadGameConfig loads the config file and applies the difficulty and level
// flags on top.
func loadGameConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagLevel != 0 {
		cfg.Gameplay.StartLevel = flagLevel
	}
	return cfg, cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog, err := openSessionLog(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(snake.New(), tui.Options{
		Config:     cfg,
		Runtime:    cfg.Runtime(width, height, flagSeed),
		Store:      store,
		Logger:     logger,
		Player:     playerName(),
		Difficulty: flagDifficulty,
	})

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	closeLog() //nolint:errcheck // Best-effort close

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openSessionLog opens the session log at path for appending. An empty
// path disables logging. The returned close func is never nil.
func openSessionLog(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return nil, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "numsnake",
		Level:           log.DebugLevel,
	})
	return logger, f.Close, nil
}

// playerName is the name local scores are saved under.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
