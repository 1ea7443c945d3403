// fingersnake is a pointer-steered snake game for the terminal.
//
// Usage:
//
//	fingersnake play         - Play the game
//	fingersnake scores       - Show the best recorded runs
//	fingersnake serve        - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set run history path (default: ~/.fingersnake/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fingersnake",
	Short: "Finger Snake - steer a snake with a pointer in your terminal",
	Long: `Finger Snake is a terminal snake game built around a pointer: the snake
chases whatever position the pointer source reports. Move the mouse over
the terminal to steer, or fall back to the arrow keys.

Available commands:
  play     - Play the game
  scores   - View the best recorded runs
  serve    - Start SSH server for remote play

Examples:
  fingersnake play
  fingersnake play --difficulty hard
  fingersnake scores
  fingersnake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fingersnake/runs.db", "Path to run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
