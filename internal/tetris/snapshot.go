package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Score     int
	HighScore int
	Lines     int // Lines cleared this game
	Pieces    int // Pieces locked this game
	Board     Board
	Piece     Piece
	HasPiece  bool // False on the title screen
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Lines:     g.lines,
		Pieces:    g.locked,
		Board:     g.board,
		Piece:     g.piece,
		HasPiece:  g.phase != core.PhaseNotStarted,
	}
}

// ColorAt returns the color shown at board position (x, y), with the
// falling piece drawn over locked blocks. ok is false for empty positions.
func (s Snapshot) ColorAt(x, y int) (c core.Color, ok bool) {
	if s.HasPiece {
		lx, ly := x-s.Piece.X, y-s.Piece.Y
		if lx >= 0 && lx < ShapeSize && ly >= 0 && ly < ShapeSize && s.Piece.Shape[ly][lx] {
			return s.Piece.Type.Color(), true
		}
	}
	if t, filled := s.Board.At(x, y).PieceType(); filled {
		return t.Color(), true
	}
	return core.ColorDefault, false
}
