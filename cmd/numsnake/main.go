// numsnake is a snake game for the terminal that draws two board rows per
// character cell.
//
// Usage:
//
//	numsnake                 - Play (same as numsnake play)
//	numsnake play            - Play in this terminal
//	numsnake serve           - Start SSH server for remote play
//	numsnake scores          - Show high scores
//	numsnake levels          - List levels, optionally with previews
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.numsnake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numsnake",
	Short: "numsnake - collect the numbers 1 to 10 on eight levels",
	Long: `numsnake is a terminal snake game. Steer the snake to the numbers 1 to 10
in order; each one makes the snake longer and collecting 10 opens the next
level. Walls, the edges and the snake itself cost a life.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - List the levels

Examples:
  numsnake
  numsnake play --difficulty hard
  numsnake serve --ssh :2222
  numsnake scores -i`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.numsnake/scores.db", "Path to scores database")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
