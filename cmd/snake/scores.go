package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, the best score and play statistics.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and the best score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(snake.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(snake.GameID, flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(snake.GameID)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Snake")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'snake' to set the first high score!")
		if stats.HighScore > 0 {
			fmt.Fprintf(out, "Best: %d\n", stats.HighScore)
		}
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "---")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, dateStr, entry.RunID)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", stats.HighScore)
	fmt.Fprintf(out, "Games: %d  Average: %.1f  Total: %d\n", stats.GamesCount, stats.AvgScore, stats.TotalScore)
	return nil
}
