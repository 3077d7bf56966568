package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestSpawnI(t *testing.T) {
	p := Spawn(PieceI)

	if p.X != 3 || p.Y != 0 {
		t.Errorf("Spawn(I) position = (%d,%d), want (3,0)", p.X, p.Y)
	}
	if p.Shape != PieceI.Template() {
		t.Errorf("Spawn(I) shape = %v, want template %v", p.Shape, PieceI.Template())
	}
	if p.Type != PieceI {
		t.Errorf("Spawn(I) type = %v, want I", p.Type)
	}
}

func TestTemplatesHaveFourCells(t *testing.T) {
	for typ := PieceType(0); typ < PieceTypeCount; typ++ {
		if got := typ.Template().Count(); got != 4 {
			t.Errorf("%s template has %d cells, want 4", typ, got)
		}
	}
}

func TestPieceColors(t *testing.T) {
	tests := []struct {
		typ  PieceType
		want core.Color
	}{
		{PieceI, core.ColorCyan},
		{PieceO, core.ColorYellow},
		{PieceT, core.ColorPurple},
		{PieceS, core.ColorGreen},
		{PieceZ, core.ColorRed},
		{PieceJ, core.ColorBlue},
		{PieceL, core.ColorOrange},
	}

	for _, tt := range tests {
		if got := tt.typ.Color(); got != tt.want {
			t.Errorf("%s.Color() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestPieceTypeString(t *testing.T) {
	if got := PieceL.String(); got != "L" {
		t.Errorf("PieceL.String() = %q, want L", got)
	}
	if got := PieceType(9).String(); got != "?" {
		t.Errorf("PieceType(9).String() = %q, want ?", got)
	}
}

func TestRotatedIsClockwise(t *testing.T) {
	// Horizontal I in local row 1 turns into a vertical I in local column 2.
	got := PieceI.Template().Rotated()

	for i := range ShapeSize {
		for j := range ShapeSize {
			want := j == 2
			if got[i][j] != want {
				t.Fatalf("rotated I [%d][%d] = %v, want %v\n%v", i, j, got[i][j], want, got)
			}
		}
	}
}

func TestRotatedFourTimesIsIdentity(t *testing.T) {
	for typ := PieceType(0); typ < PieceTypeCount; typ++ {
		s := typ.Template()
		r := s.Rotated().Rotated().Rotated().Rotated()
		if r != s {
			t.Errorf("%s rotated four times = %v, want %v", typ, r, s)
		}
	}
}

func TestPieceCells(t *testing.T) {
	p := Spawn(PieceO)
	cells := p.Cells(1, 2)

	want := []Point{{5, 3}, {6, 3}, {5, 4}, {6, 4}}
	if len(cells) != len(want) {
		t.Fatalf("Cells() returned %d points, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, cells[i], want[i])
		}
	}
}
