package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the leaderboard, best score first.

Opens an interactive table when stdout is a terminal. Use --plain to
print a text listing instead.

Examples:
  mazechase scores
  mazechase scores --limit 20
  mazechase scores --plain
  mazechase scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as text")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("Scores cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

func printScores(store *storage.Store, limit int) error {
	scores, err := store.TopScores(limit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Maze Chase")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mazechase play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.CompletedLevel, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Best level: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	return nil
}
