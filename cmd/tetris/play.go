package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/highscore"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagNoAudio bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris.

Controls:
  Space/Enter     - Start (and restart after game over)
  Left/H/A        - Move left
  Right/L/D       - Move right
  Down/J/S        - Soft drop
  Up/K/W/X        - Rotate
  Q/Esc/Ctrl+C    - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --no-audio
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound and music")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (empty = use config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	// The terminal belongs to the game while it runs
	logger, logFile, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger = logging.Discard()
	} else {
		defer logFile.Close()
	}

	// Open score storage
	var store *storage.Store
	if cfg.HighScore.Backend == config.BackendSQLite {
		store, err = storage.Open(cfg.HighScore.DB)
		if err != nil {
			// Continue without storage - game still works
			logger.Warn("could not open scores database", "path", cfg.HighScore.DB, "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	scores, err := highscore.Open(cfg.HighScore, store, logger)
	if err != nil {
		return fmt.Errorf("cannot open high score: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed, "tick_rate", cfg.TickRate, "backend", cfg.HighScore.Backend)

	game := tetris.New(tetris.Options{
		Seed:   seed,
		Scores: scores,
		Logger: logger.WithPrefix(logging.Prefix + "/engine"),
	})

	sounds := openAudio(cfg.Audio, logger)
	defer sounds.Cleanup()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Game:   game,
		Sounds: sounds,
		Logger: logger,
		Keys:   tui.NewKeyMap(cfg.Keys),
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Seed:     seed,
		},
	}
	if store != nil {
		opts.History = store
	}

	final, err := tui.Run(opts)
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	for _, g := range final.Games() {
		fmt.Printf("Game Over! Final Score: %d\n", g.Score)
		if g.NewHighScore {
			fmt.Printf("New High Score: %d\n", g.Score)
		}
	}
	return nil
}

// openAudio returns a started sound manager, or a silent player when audio
// is disabled or the output device cannot be opened.
func openAudio(cfg config.AudioConfig, logger *log.Logger) audio.Player {
	if !cfg.Enabled {
		return audio.Silent{}
	}

	sm := audio.NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return audio.Silent{}
	}
	return sm
}
