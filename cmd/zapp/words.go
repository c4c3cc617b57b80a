package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-zapp/internal/dictionary"
	"github.com/vovakirdan/word-zapp/internal/zapp"
)

var flagLetters string

var wordsCmd = &cobra.Command{
	Use:   "words <word>...",
	Short: "Look words up in the dictionary",
	Long: `Check whether words are in the dictionary. With --letters, each
word is run through the same checks as a real submission against
those letters.

Examples:
  zapp words rats
  zapp words rats stare tsar --letters RSTAE
  zapp words --dict ./words.txt zapper`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().StringVar(&flagLetters, "letters", "", "Validate against these letters")
}

func runWords(_ *cobra.Command, args []string) {
	dict, err := dictionary.Load(flagDict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagLetters == "" {
		for _, w := range args {
			word := zapp.Normalize(w)
			mark := "no "
			if dict.Contains(word) {
				mark = "yes"
			}
			fmt.Printf("  %s  %s\n", mark, word)
		}
		fmt.Printf("\n%d words in dictionary\n", dict.Len())
		return
	}

	// No word limit, so every word is checked
	engine := zapp.NewEngine([]rune(flagLetters), dict, 0)
	for _, w := range args {
		msg := "ok"
		if err := engine.Submit(w); err != nil {
			msg = zapp.KindOf(err).String()
		}
		fmt.Printf("  %-12s  %s\n", zapp.Normalize(w), msg)
	}
	fmt.Printf("\nTotal words: %d\n", engine.Tally())
}
