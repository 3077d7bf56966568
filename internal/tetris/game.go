// Package tetris implements the falling-block game engine: board, pieces,
// collision, rotation with kicks, line clearing, scoring and the phase
// state machine. It has no drawing or input-device code; the platform feeds
// it actions and reads back snapshots.
package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Scoring and timing constants.
const (
	FallInterval   = 500 * time.Millisecond
	LinePoints     = 100
	SoftDropPoints = 1
)

// HighScoreStore is the persistence boundary for the best score.
// LoadHighScore never fails: missing or unreadable data reads as 0.
// SaveHighScore is best effort; the game logs a returned error and goes on.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int) error
}

type noStore struct{}

func (noStore) LoadHighScore() int      { return 0 }
func (noStore) SaveHighScore(int) error { return nil }

// Options configures a new Game.
type Options struct {
	Seed   int64          // RNG seed, used when Rand is nil
	Rand   *rand.Rand     // Piece source; overrides Seed
	Scores HighScoreStore // nil keeps the high score in memory only
	Logger *log.Logger    // nil discards log output
}

// Game is one player's session. It owns the board, the falling piece and
// the score; nothing else mutates them.
type Game struct {
	rng    *rand.Rand
	scores HighScoreStore
	logger *log.Logger

	board    Board
	piece    Piece
	phase    core.Phase
	interval time.Duration
	lastFall time.Time

	score     int
	highScore int
	tick      uint64
	lines     int // Lines cleared this game
	locked    int // Pieces locked this game
}

// New creates a game on the title screen. The high score is loaded from
// the store here and nowhere else.
func New(opts Options) *Game {
	g := &Game{
		rng:      opts.Rand,
		scores:   opts.Scores,
		logger:   opts.Logger,
		interval: FallInterval,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(opts.Seed))
	}
	if g.scores == nil {
		g.scores = noStore{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.highScore = max(g.scores.LoadHighScore(), 0)
	g.logger.Debug("high score loaded", "high_score", g.highScore)
	return g
}

// Step runs one platform tick at time now: the queued actions are applied
// in order, then the fall timer is evaluated once.
func (g *Game) Step(in core.InputFrame, now time.Time) core.StepResult {
	g.tick++
	var res core.StepResult

	for _, a := range in.Actions {
		if a == core.ActionQuit {
			res.Quit = true
			res.State = g.State()
			return res
		}
		g.apply(a, now, &res)
	}

	if g.phase == core.PhasePlaying && now.Sub(g.lastFall) >= g.interval {
		g.fall(&res)
		g.lastFall = now
	}

	res.State = g.State()
	return res
}

// apply handles one action. Actions that mean nothing in the current
// phase are ignored.
func (g *Game) apply(a core.Action, now time.Time, res *core.StepResult) {
	if a == core.ActionStart {
		if g.phase != core.PhasePlaying {
			g.start(now, res)
		}
		return
	}
	if g.phase != core.PhasePlaying {
		return
	}

	switch a {
	case core.ActionMoveLeft:
		if !Collides(&g.board, g.piece, -1, 0) {
			g.piece.X--
		}
	case core.ActionMoveRight:
		if !Collides(&g.board, g.piece, 1, 0) {
			g.piece.X++
		}
	case core.ActionSoftDrop:
		if !Collides(&g.board, g.piece, 0, 1) {
			g.piece.Y++
			g.score += SoftDropPoints
		}
	case core.ActionRotate:
		Rotate(&g.board, &g.piece)
	}
}

// start resets the session state and enters the playing phase.
func (g *Game) start(now time.Time, res *core.StepResult) {
	res.Started = true
	res.FirstStart = g.phase == core.PhaseNotStarted

	g.board.Reset()
	g.score = 0
	g.lines = 0
	g.locked = 0
	g.interval = FallInterval
	g.lastFall = now
	g.piece = Spawn(g.randomType())
	g.phase = core.PhasePlaying

	g.logger.Info("game started", "first", res.FirstStart, "piece", g.piece.Type)
}

// fall moves the piece one row down, or locks it when it has landed.
func (g *Game) fall(res *core.StepResult) {
	if !Collides(&g.board, g.piece, 0, 1) {
		g.piece.Y++
		return
	}
	g.lock(res)
}

// lock merges the landed piece, clears full rows and spawns the next piece.
// A spawn that collides immediately ends the game.
func (g *Game) lock(res *core.StepResult) {
	Merge(&g.board, g.piece)
	g.locked++

	if n := ClearLines(&g.board); n > 0 {
		g.score += LinePoints * n
		g.lines += n
		res.LinesCleared += n
		g.logger.Debug("lines cleared", "lines", n, "score", g.score)
	}

	g.piece = Spawn(g.randomType())
	if Collides(&g.board, g.piece, 0, 0) {
		g.gameOver(res)
	}
}

// gameOver enters the game-over phase and persists a new best score.
func (g *Game) gameOver(res *core.StepResult) {
	g.phase = core.PhaseGameOver
	res.Ended = true

	g.logger.Info("game over", "score", g.score, "lines", g.lines, "pieces", g.locked)

	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	res.NewHighScore = true
	if err := g.scores.SaveHighScore(g.score); err != nil {
		g.logger.Warn("cannot save high score", "score", g.score, "error", err)
	}
}

func (g *Game) randomType() PieceType {
	return PieceType(g.rng.Intn(PieceTypeCount))
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Phase:     g.phase,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}
