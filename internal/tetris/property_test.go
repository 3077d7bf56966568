package tetris

import (
	"math/rand"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// randomBoard fills roughly density percent of the cells.
func randomBoard(seed int64, density int) Board {
	rng := rand.New(rand.NewSource(seed))
	var b Board
	for y := range BoardHeight {
		for x := range BoardWidth {
			if rng.Intn(100) < density {
				b[y][x] = CellFor(PieceType(rng.Intn(PieceTypeCount)))
			}
		}
	}
	return b
}

func randomPiece(typ, x, y, turns int) Piece {
	p := Piece{Shape: PieceType(typ).Template(), X: x, Y: y, Type: PieceType(typ)}
	for range turns {
		p.Shape = p.Shape.Rotated()
	}
	return p
}

func TestPropertyCollisionFreeMeansInside(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("a non-colliding piece lies in bounds or above the top, on empty cells", prop.ForAll(
		func(seed int64, typ, x, y, turns int) bool {
			b := randomBoard(seed, 30)
			p := randomPiece(typ, x, y, turns)

			if Collides(&b, p, 0, 0) {
				return true
			}
			for _, pt := range p.Cells(0, 0) {
				if pt.X < 0 || pt.X >= BoardWidth || pt.Y >= BoardHeight {
					return false
				}
				if pt.Y >= 0 && !b[pt.Y][pt.X].Empty() {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(0, PieceTypeCount-1),
		gen.IntRange(-4, BoardWidth+1),
		gen.IntRange(-4, BoardHeight+1),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}

func TestPropertyRotationPreservesCells(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("rotation keeps the occupied cell count", prop.ForAll(
		func(seed int64, typ, x, y, turns int) bool {
			b := randomBoard(seed, 20)
			p := randomPiece(typ, x, y, turns)
			before := p

			if p.Shape.Rotated().Count() != p.Shape.Count() {
				return false
			}
			if !Rotate(&b, &p) {
				return p == before
			}
			return p.Shape.Count() == before.Shape.Count() &&
				p.Y == before.Y &&
				!Collides(&b, p, 0, 0)
		},
		gen.Int64(),
		gen.IntRange(0, PieceTypeCount-1),
		gen.IntRange(-2, BoardWidth-2),
		gen.IntRange(-2, BoardHeight-2),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}

func TestPropertyClearWithoutFullRowsIsNoop(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("clearing a board with no full rows changes nothing", prop.ForAll(
		func(seed int64, density int) bool {
			b := randomBoard(seed, density)
			rng := rand.New(rand.NewSource(seed + 1))
			for y := range BoardHeight {
				b[y][rng.Intn(BoardWidth)] = CellEmpty
			}
			before := b

			return ClearLines(&b) == 0 && b == before
		},
		gen.Int64(),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}

func TestPropertyScoreNeverDecreasesWhilePlaying(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	actions := []core.Action{
		core.ActionNone,
		core.ActionMoveLeft,
		core.ActionMoveRight,
		core.ActionSoftDrop,
		core.ActionRotate,
	}

	properties.Property("score only grows by soft drops and line clears", prop.ForAll(
		func(seed int64, steps int) bool {
			g := New(Options{Seed: seed})
			rng := rand.New(rand.NewSource(seed))
			now := time.Unix(0, 0)
			g.Step(frame(core.ActionStart), now)

			for range steps {
				if g.Phase() != core.PhasePlaying {
					break
				}
				now = now.Add(time.Duration(rng.Intn(300)) * time.Millisecond)
				a := actions[rng.Intn(len(actions))]
				prev := g.score

				res := g.Step(frame(a), now)

				rest := res.State.Score - prev - LinePoints*res.LinesCleared
				switch {
				case rest == 0:
				case rest == SoftDropPoints && a == core.ActionSoftDrop:
				default:
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 400),
	))

	properties.TestingRun(t)
}
