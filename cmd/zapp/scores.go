package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/word-zapp/internal/platform/tui"
	"github.com/vovakirdan/word-zapp/internal/storage"
)

var (
	flagLimit       int
	flagScorePlayer string
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best results",
	Long: `Display the best finished rounds, highest word count first.

Examples:
  zapp scores
  zapp scores --limit 5
  zapp scores --player alice
  zapp scores --interactive
  zapp scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Show only this player's most recent results")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved results")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var results []storage.Result
	if flagScorePlayer != "" {
		results, err = store.PlayerResults(flagScorePlayer, flagLimit)
	} else {
		results, err = store.TopResults(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	// Display results
	if flagScorePlayer != "" {
		fmt.Printf("Recent Games - %s\n", flagScorePlayer)
	} else {
		fmt.Println("High Scores - Word Zapp")
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'zapp play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-10s  %-10s  %-10s  %-16s  %s\n", "Rank", "Words", "Player", "Letters", "End", "Date", "Submitted")
	fmt.Printf("  %-4s  %-5s  %-10s  %-10s  %-10s  %-16s  %s\n", "----", "-----", "------", "-------", "---", "----", "---------")

	// Print results
	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5d  %-10s  %-10s  %-10s  %-16s  %s\n",
			i+1, r.Tally, player, r.Letters, r.Reason, dateStr, strings.Join(r.Submitted, " "))
	}

	// Show totals
	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f  Zapped: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalZapped)
	}
}
