package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show score history",
	Long: `Display the best scores recorded in the scores database.

Examples:
  tetris scores
  tetris scores -n 20
  tetris scores -i
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history and best score")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(cfg.HighScore.DB)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(storage.GameID); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}
		logger.Debug("score history cleared", "path", cfg.HighScore.DB)
		fmt.Println("Score history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	// Get top scores
	scores, err := store.TopScores(storage.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	// Display scores
	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Lines, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(storage.GameID); err != nil {
		logger.Warn("cannot read best score", "error", err)
	} else {
		fmt.Printf("Best: %d\n", highScore)
	}
	stats, err := store.GetGameStats(storage.GameID)
	if err != nil {
		logger.Warn("cannot read game stats", "error", err)
		return nil
	}
	fmt.Printf("Games: %d  Avg: %.0f  Lines: %d\n", stats.GamesCount, stats.AvgScore, stats.TotalLines)
	return nil
}
