// Package config provides YAML-based configuration loading for the game:
// platform tick rate, key bindings, audio, high-score persistence and logging.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
)

// High-score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Validation errors.
var (
	ErrTickRate  = errors.New("config: tick_rate must be between 1 and 240")
	ErrBackend   = errors.New("config: unknown high_score backend")
	ErrLogLevel  = errors.New("config: unknown log level")
	ErrNoKeys    = errors.New("config: every action needs at least one key")
	ErrVolume    = errors.New("config: audio volume must be between 0 and 1")
	ErrEmptyPath = errors.New("config: empty path")
)

// Config contains all configuration for the game.
type Config struct {
	TickRate  int             `yaml:"tick_rate"` // Platform ticks per second
	Keys      KeysConfig      `yaml:"keys"`
	Audio     AudioConfig     `yaml:"audio"`
	HighScore HighScoreConfig `yaml:"high_score"`
	Log       LogConfig       `yaml:"log"`
}

// KeysConfig lists the key names bound to each action, in the form
// reported by bubbletea's KeyMsg.String ("left", "ctrl+c", "q", " ").
type KeysConfig struct {
	Start    []string `yaml:"start"`
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	SoftDrop []string `yaml:"soft_drop"`
	Rotate   []string `yaml:"rotate"`
	Quit     []string `yaml:"quit"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Music   bool    `yaml:"music"`
	Volume  float64 `yaml:"volume"` // 0.0 = mute, 1.0 = full
}

// HighScoreConfig selects where the best score and the history live.
type HighScoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	File    string `yaml:"file"`    // Single-integer high score file
	DB      string `yaml:"db"`      // SQLite database for history and high score
}

// LogConfig defines log output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file used while the terminal UI is running
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("%w: got %d", ErrTickRate, c.TickRate)
	}

	for name, keys := range map[string][]string{
		"start":     c.Keys.Start,
		"left":      c.Keys.Left,
		"right":     c.Keys.Right,
		"soft_drop": c.Keys.SoftDrop,
		"rotate":    c.Keys.Rotate,
		"quit":      c.Keys.Quit,
	} {
		if len(keys) == 0 || slices.Contains(keys, "") {
			return fmt.Errorf("%w: %s", ErrNoKeys, name)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: got %v", ErrVolume, c.Audio.Volume)
	}

	switch c.HighScore.Backend {
	case BackendFile:
		if c.HighScore.File == "" {
			return fmt.Errorf("%w: high_score.file", ErrEmptyPath)
		}
	case BackendSQLite:
		if c.HighScore.DB == "" {
			return fmt.Errorf("%w: high_score.db", ErrEmptyPath)
		}
	default:
		return fmt.Errorf("%w: %q", ErrBackend, c.HighScore.Backend)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrLogLevel, c.Log.Level)
	}

	return nil
}
