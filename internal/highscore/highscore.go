// Package highscore implements the engine's high-score persistence on top of
// a plain text file or the SQLite store.
package highscore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	_ tetris.HighScoreStore = (*FileStore)(nil)
	_ tetris.HighScoreStore = (*DBStore)(nil)
)

// FileStore keeps the high score as a single decimal integer in a text file.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore returns a store for the file at path. A leading ~ is expanded.
func NewFileStore(path string, logger *log.Logger) (*FileStore, error) {
	expanded, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if expanded == "" {
		return nil, errors.New("highscore: empty file path")
	}
	return &FileStore{path: expanded, logger: orDiscard(logger)}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// LoadHighScore reads the stored value. A missing, unreadable, malformed
// or negative value reads as 0.
func (s *FileStore) LoadHighScore() int {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0
	}
	if err != nil {
		s.logger.Warn("cannot read high score file", "path", s.path, "error", err)
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		s.logger.Warn("ignoring malformed high score file", "path", s.path)
		return 0
	}
	return score
}

// SaveHighScore overwrites the file with score.
func (s *FileStore) SaveHighScore(score int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}

// DBStore keeps the high score in the SQLite store.
type DBStore struct {
	store  *storage.Store
	gameID string
	logger *log.Logger
}

// NewDBStore adapts store for the given game id.
func NewDBStore(store *storage.Store, gameID string, logger *log.Logger) *DBStore {
	return &DBStore{store: store, gameID: gameID, logger: orDiscard(logger)}
}

// LoadHighScore returns the stored best score, or 0 when it cannot be read.
func (s *DBStore) LoadHighScore() int {
	score, err := s.store.HighScore(s.gameID)
	if err != nil {
		s.logger.Warn("cannot load high score", "error", err)
		return 0
	}
	return max(score, 0)
}

// SaveHighScore stores score as the new best score.
func (s *DBStore) SaveHighScore(score int) error {
	return s.store.SetHighScore(s.gameID, score)
}

// Open picks the backend named by cfg. The sqlite backend uses db, which
// may be nil when the database could not be opened; the file backend is
// used then.
func Open(cfg config.HighScoreConfig, db *storage.Store, logger *log.Logger) (tetris.HighScoreStore, error) {
	logger = orDiscard(logger)

	if cfg.Backend == config.BackendSQLite && db != nil {
		return NewDBStore(db, storage.GameID, logger), nil
	}

	fs, err := NewFileStore(cfg.File, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Backend == config.BackendSQLite {
		logger.Warn("scores database unavailable, using high score file", "path", fs.Path())
	} else {
		logger.Debug("using high score file", "path", fs.Path())
	}
	return fs, nil
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}
