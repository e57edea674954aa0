package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numsnake/internal/config"
	"github.com/vovakirdan/numsnake/internal/core"
	"github.com/vovakirdan/numsnake/internal/games/snake"
	"github.com/vovakirdan/numsnake/internal/levels"
	"github.com/vovakirdan/numsnake/internal/platform/tui"
)

var (
	flagPreview       bool
	flagPreviewWidth  int
	flagPreviewHeight int
	flagPreviewSeed   int64
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long: `Shows the levels in play order. Levels repeat after the last one.

With --preview each level is drawn at the given terminal size, as it looks
when the level starts.

Examples:
  numsnake levels
  numsnake levels --preview --width 60 --height 20`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVarP(&flagPreview, "preview", "p", false, "Draw each level")
	levelsCmd.Flags().IntVar(&flagPreviewWidth, "width", 48, "Preview width in characters")
	levelsCmd.Flags().IntVar(&flagPreviewHeight, "height", 16, "Preview height in characters")
	levelsCmd.Flags().Int64Var(&flagPreviewSeed, "seed", 1, "RNG seed for snake and target placement")
}

var levelNumberStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Width(4)

func runLevels(_ *cobra.Command, _ []string) {
	if flagPreview && (flagPreviewWidth < snake.MinScreenW || flagPreviewHeight < snake.MinScreenH) {
		fmt.Fprintf(os.Stderr, "Error: preview needs at least %dx%d\n", snake.MinScreenW, snake.MinScreenH)
		os.Exit(1)
	}

	fmt.Println(headerStyle.Render("Levels"))
	fmt.Println()

	for i, name := range levels.LevelNames() {
		number := i + 1
		fmt.Println(levelNumberStyle.Render(fmt.Sprintf("%d.", number)) + name)
		if flagPreview {
			fmt.Println(tui.ScreenString(previewLevel(number, flagPreviewWidth, flagPreviewHeight, flagPreviewSeed)))
			fmt.Println()
		}
	}

	if !flagPreview {
		fmt.Println()
		fmt.Println(dimStyle.Render("Run 'numsnake play --level N' to start on a level."))
	}
}

// previewLevel lays out level number on a w x h terminal and returns the
// first running frame.
func previewLevel(number, w, h int, seed int64) *core.Screen {
	cfg := config.DefaultSnakeConfig()
	cfg.Gameplay.StartLevel = number

	g := snake.New()
	g.Reset(cfg.Runtime(w, h, seed))
	g.Step(core.Tick(cfg.TickPeriod()))
	g.Step(core.Press(core.ActionConfirm))

	screen := core.NewScreen(w, h)
	g.Render(screen)
	return screen
}
