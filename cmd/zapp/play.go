package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/word-zapp/internal/core"
	"github.com/vovakirdan/word-zapp/internal/game"
	"github.com/vovakirdan/word-zapp/internal/platform/tui"
	"github.com/vovakirdan/word-zapp/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Deal letters and start the clock.

Controls:
  Type       - Enter a word
  Enter      - Submit the word
  Ctrl+R     - New round (after game over)
  Ctrl+S     - Save a screenshot
  Esc/Ctrl+C - Quit

Difficulty options:
  easy   - The zapper strikes less often
  normal - Default pacing from the config
  hard   - The zapper strikes more often
  fixed  - No zapper at all

Examples:
  zapp play
  zapp play --difficulty easy
  zapp play --seed 42
  zapp play --config ./my-zapp.yaml --dict ./words.txt`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with your results")
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, dict, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger("zapp", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(settings, dict, game.WithLogger(logger))

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(g, store, cfg,
		tui.WithPlayer(flagPlayer),
		tui.WithLogger(logger),
	)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
