package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Layout: each board cell is two columns wide so blocks look square.
const (
	cellWidth   = 2
	boardOuterW = tetris.BoardWidth*cellWidth + 2
	boardOuterH = tetris.BoardHeight + 2
	panelGap    = 2
	panelWidth  = 18
	minScreenW  = boardOuterW + panelGap + panelWidth
	minScreenH  = boardOuterH
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// layout returns the top-left corner of the board frame, centered on s.
func layout(s *core.Screen) (x, y int) {
	return max((s.Width()-minScreenW)/2, 0), max((s.Height()-minScreenH)/2, 0)
}

// DrawGame draws one frame of the game into s. newHigh marks a game over
// that set a new high score.
func DrawGame(s *core.Screen, snap tetris.Snapshot, newHigh bool) {
	s.Clear()

	if s.Width() < minScreenW || s.Height() < minScreenH {
		drawTooSmall(s)
		return
	}

	ox, oy := layout(s)
	board := core.NewRect(ox, oy, boardOuterW, boardOuterH)
	s.DrawBox(board, core.ColorGray)
	drawBoard(s, snap, ox+1, oy+1)
	drawPanel(s, snap, ox+boardOuterW+panelGap, oy)

	switch snap.Phase {
	case core.PhaseNotStarted:
		drawOverlay(s, board, core.ColorBrightWhite,
			"TETRIS",
			"",
			"Press SPACE to Start",
		)
	case core.PhaseGameOver:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("High:  %d", snap.HighScore),
		}
		if newHigh {
			lines = append(lines, "", "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "SPACE to restart")
		drawOverlay(s, board, core.ColorRed, lines...)
	}
}

// drawBoard draws locked blocks and the falling piece with the board's
// top-left cell at (x, y).
func drawBoard(s *core.Screen, snap tetris.Snapshot, x, y int) {
	for by := range tetris.BoardHeight {
		for bx := range tetris.BoardWidth {
			sx := x + bx*cellWidth
			if c, ok := snap.ColorAt(bx, by); ok {
				s.SetCell(sx, y+by, blockRune, c)
				s.SetCell(sx+1, y+by, blockRune, c)
				continue
			}
			s.SetCell(sx, y+by, ' ', core.ColorDefault)
			s.SetCell(sx+1, y+by, emptyRune, core.ColorGray)
		}
	}
}

// drawPanel draws score, high score and session statistics.
func drawPanel(s *core.Screen, snap tetris.Snapshot, x, y int) {
	rows := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"HIGH", snap.HighScore},
		{"LINES", snap.Lines},
		{"PIECES", snap.Pieces},
	}

	s.DrawTextColor(x, y+1, "TETRIS", core.ColorCyan)
	for i, r := range rows {
		s.DrawTextColor(x, y+3+i*3, r.label, core.ColorGray)
		s.DrawTextColor(x, y+4+i*3, fmt.Sprintf("%d", r.value), core.ColorBrightWhite)
	}

	if snap.Phase == core.PhasePlaying && snap.HasPiece {
		s.DrawTextColor(x, y+3+len(rows)*3, "PIECE "+snap.Piece.Type.String(), snap.Piece.Type.Color())
	}
}

// drawOverlay draws a framed message box centered over area.
func drawOverlay(s *core.Screen, area core.Rect, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect(0, 0, w+4, len(lines)+2)
	cx, cy := area.Center()
	box.X = cx - box.W/2
	box.Y = cy - box.H/2

	s.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	s.DrawBox(box, c)
	for i, l := range lines {
		lx := box.X + (box.W-len([]rune(l)))/2
		s.DrawTextColor(lx, box.Y+1+i, l, c)
	}
}

func drawTooSmall(s *core.Screen) {
	y := s.Height() / 2
	s.DrawTextCentered(y-1, "Window too small", core.ColorYellow)
	s.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", minScreenW, minScreenH, s.Width(), s.Height()), core.ColorGray)
}
