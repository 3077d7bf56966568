// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play a game
//	tetris scores            - Show score history and best score
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>          - Config file (default: ~/.tetris/config.yaml)
//	--fps <rate>             - Override the tick rate
//	--seed <value>           - Set RNG seed for reproducible piece order
//	--db <path>              - Override the scores database path
//	--highscore-file <path>  - Override the high score file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagConfig        string
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagHighScoreFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block game. Move and rotate the falling
piece, complete rows to clear them, and beat your high score.

Available commands:
  play     - Play a game (default)
  scores   - View score history
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --seed 42
  tetris scores -i
  tetris config > ~/.tetris/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = use config)")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreFile, "highscore-file", "", "Path to high score file (empty = use config)")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.HighScore.DB = flagDBPath
	}
	if flagHighScoreFile != "" {
		cfg.HighScore.File = flagHighScoreFile
		if flagDBPath == "" {
			cfg.HighScore.Backend = config.BackendFile
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
