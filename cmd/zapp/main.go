// zapp is a timed word game for the terminal: make words from the dealt
// letters while the zapper takes them away.
//
// Usage:
//
//	zapp play              - Play a round
//	zapp scores            - Show the best results
//	zapp serve             - Start SSH server for remote play
//	zapp words <word>...   - Look words up in the dictionary
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible letters and zaps
//	--db <path>           - Set database path (default: ~/.zapp/results.db)
//	--config <path>       - Use a custom game config YAML
//	--dict <path>         - Use a custom word list
//	--difficulty <name>   - Zapper preset: easy, normal, hard, fixed
//	--log-file <path>     - Write game logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-zapp/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDict       string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zapp",
	Short: "Word Zapp - make words before they get zapped",
	Long: `Word Zapp deals a handful of letters and starts a clock.
Type words made from those letters; every few seconds the zapper
removes one of your words at random. When the clock runs out or you
reach the word limit, your remaining words are your score.

Available commands:
  play     - Play a round
  scores   - View the best results
  serve    - Start SSH server for remote play
  words    - Look words up in the dictionary

Examples:
  zapp play
  zapp play --difficulty hard
  zapp scores --limit 5
  zapp serve --ssh :2222
  zapp words rats stare --letters RSTAE`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.zapp/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDict, "dict", "", "Path to a word list (one word per line)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Zapper preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wordsCmd)
}
