package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/words"
)

var flagWordsLength int

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the word list",
	Long: `Without flags, shows how many words exist for each length.
With --length, lists the words of that length.

The list is the embedded default unless word_list is configured.

Examples:
  hangman words
  hangman words --length 6`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().IntVar(&flagWordsLength, "length", 0, "List words of this length")
}

func runWords(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	list, err := words.LoadOrDefault(cfg.WordList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagWordsLength > 0 {
		entries := list.WordsOfLength(flagWordsLength)
		if len(entries) == 0 {
			fmt.Printf("No words of length %d.\n", flagWordsLength)
			return
		}
		fmt.Printf("Words of length %d (%d):\n", flagWordsLength, len(entries))
		fmt.Println()
		fmt.Println(strings.Join(entries, "\n"))
		return
	}

	fmt.Printf("Word list: %d words\n", list.Len())
	fmt.Println()

	// Print header
	fmt.Printf("  %-6s  %s\n", "Length", "Words")
	fmt.Printf("  %-6s  %s\n", "------", "-----")

	for _, n := range list.Lengths() {
		fmt.Printf("  %-6d  %d\n", n, list.Count(n))
	}

	fmt.Println()
	fmt.Println("Run 'hangman words --length <n>' to list them.")
}
