package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default returns the hardcoded configuration. It matches defaults/tetris.yaml.
func Default() Config {
	return Config{
		TickRate: 60,
		Keys: KeysConfig{
			Start:    []string{" ", "enter"},
			Left:     []string{"left", "h", "a"},
			Right:    []string{"right", "l", "d"},
			SoftDrop: []string{"down", "j", "s"},
			Rotate:   []string{"up", "k", "w", "x"},
			Quit:     []string{"q", "esc", "ctrl+c"},
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   true,
			Volume:  0.5,
		},
		HighScore: HighScoreConfig{
			Backend: BackendSQLite,
			File:    "~/.tetris/highscore.txt",
			DB:      "~/.tetris/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.tetris/tetris.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
