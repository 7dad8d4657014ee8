package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the top 10 recorded games and the best score.

Examples:
  tetris scores
  tetris scores --db ./scores.db
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the score history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(config.ExpandHome(cfg.Storage.Database))
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(tetris.GameID); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	scores, err := store.TopScores(tetris.GameID, 10)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	fileBest := storage.NewHighScoreFile(config.ExpandHome(cfg.Storage.HighScoreFile)).LoadHighScore()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		if fileBest > 0 {
			fmt.Printf("\nLocal best (%s): %d\n", cfg.Storage.HighScoreFile, fileBest)
		}
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Lines", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.Level, entry.Lines, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(tetris.GameID); err == nil {
		fmt.Printf("Games: %d  Avg: %.0f  Lines: %d\n", stats.GamesCount, stats.AvgScore, stats.TotalLines)
	}
	if best, err := store.HighScore(tetris.GameID); err == nil {
		fmt.Printf("Best: %d\n", max(best, fileBest))
	}
	return nil
}
