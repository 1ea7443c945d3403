package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/finger-snake/internal/config"
	"github.com/vovakirdan/finger-snake/internal/core"
	"github.com/vovakirdan/finger-snake/internal/game"
	"github.com/vovakirdan/finger-snake/internal/highscore"
	"github.com/vovakirdan/finger-snake/internal/platform/tui"
	"github.com/vovakirdan/finger-snake/internal/pointer"
	"github.com/vovakirdan/finger-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHighScore  string
	flagNoMouse    bool
)

// storeOrNil avoids wrapping a nil *FileStore in a non-nil interface.
func storeOrNil(s *highscore.FileStore) highscore.Store {
	if s == nil {
		return nil
	}
	return s
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. Hold the pointer over the board to begin.

Controls:
  Mouse          - Steer the snake (stand-in for the finger tracker)
  Arrows/WASD    - Steer without a pointer
  Enter/Space    - Start from the menu
  P/Esc          - Pause
  M              - Mute
  R              - Back to menu (after game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slow movement cadence
  normal - Default cadence
  hard   - Fast movement cadence

Examples:
  fingersnake play
  fingersnake play --difficulty hard
  fingersnake play --config ./my-game.yaml
  fingersnake play --no-mouse`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagHighScore, "highscore", "", "Path to the high-score file (overrides config)")
	playCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "Disable the mouse pointer, keyboard steering only")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))

	if flagHighScore != "" {
		gameCfg.HighScore.Path = flagHighScore
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Pointer pipeline: mouse motion -> last-writer-wins holder -> smoother
	var tracker *pointer.Latest
	var src pointer.Source
	if !flagNoMouse {
		tracker = pointer.NewLatest()
		src = pointer.NewSmoother(tracker, gameCfg.Pointer.SmoothingFactor, gameCfg.Pointer.MaxJump)
	}

	store, err := highscore.NewFileStore(gameCfg.HighScore.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: high score disabled: %v\n", err)
		// nil store keeps the high score in memory for this session
	}
	ctrl := game.New(gameCfg, storeOrNil(store), src, nil)

	history, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without history - the game still works
		history = nil
	}

	mode := flagDifficulty
	if mode == "" {
		mode = "normal"
	}

	runErr := tui.Run(ctrl, history, tracker, mode, rt)

	if history != nil {
		history.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
