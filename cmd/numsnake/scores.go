package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numsnake/internal/platform/tui"
	"github.com/vovakirdan/numsnake/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagPlayer      string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  numsnake scores
  numsnake scores --limit 25
  numsnake scores --player ada
  numsnake scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show scores of this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		player := flagPlayer
		if player == "" {
			player = playerName()
		}
		if err := tui.RunScoreboard(store, player, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		scores, err = store.PlayerScores(flagPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(headerStyle.Render("High Scores"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println(dimStyle.Render("Play 'numsnake play' to set the first high score!"))
		return
	}

	fmt.Printf("  %-4s  %-16s  %8s  %5s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Mode", "Date")
	fmt.Printf("  %-4s  %-16s  %8s  %5s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")
	for i, entry := range scores {
		mode := entry.Difficulty
		if mode == "" {
			mode = "-"
		}
		fmt.Printf("  %-4d  %-16s  %8d  %5d  %-6s  %s\n",
			i+1, entry.Player, entry.Score, entry.Level, mode, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil {
		fmt.Println()
		fmt.Println(dimStyle.Render(fmt.Sprintf("Games: %d  Best: %d  Average: %.0f  Best level: %d",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel)))
	}
}
