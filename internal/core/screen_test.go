package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if got := s.String(); got != want {
		t.Errorf("new screen = %q, expected blank", got)
	}

	if got := NewScreen(-3, -1); got.Width() != 0 || got.Height() != 0 {
		t.Errorf("negative size = %dx%d, expected 0x0", got.Width(), got.Height())
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 2, '█', ColorCyan)

	cell := s.GetCell(1, 2)
	if cell.Rune != '█' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1, 2) = %+v, expected cyan block", cell)
	}

	// Out of bounds writes are dropped and reads are blank.
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(4, 0, 'A', ColorRed)
	s.SetCell(0, 4, 'A', ColorRed)
	if got := s.GetCell(9, 9); got != blankCell {
		t.Errorf("GetCell(9, 9) = %+v, expected blank", got)
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out of bounds SetCell wrote into the buffer")
	}

	s.Clear()
	if got := s.GetCell(1, 2); got != blankCell {
		t.Errorf("after Clear, GetCell(1, 2) = %+v, expected blank", got)
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColor(5, 1, "SCORE", ColorGray)

	if got := strings.Split(s.String(), "\n")[1]; got != "     SCO" {
		t.Errorf("row 1 = %q, expected text clipped at the right edge", got)
	}
	if c := s.GetCell(6, 1); c.Rune != 'C' || c.Color != ColorGray {
		t.Errorf("GetCell(6, 1) = %+v, expected gray 'C'", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorYellow)

	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("text not centered at x=%d", x)
	}
	if s.GetCell(x, 2).Color != ColorYellow {
		t.Error("DrawTextCentered should apply color")
	}
}

func TestScreenDrawBoxAndRect(t *testing.T) {
	s := NewScreen(7, 5)
	r := NewRect(1, 0, 5, 4)
	s.DrawRect(r, '#')
	s.DrawBox(r, ColorGray)

	want := strings.Join([]string{
		" ┌───┐ ",
		" │###│ ",
		" │###│ ",
		" └───┘ ",
		"       ",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("screen =\n%s\nexpected\n%s", got, want)
	}
	if s.GetCell(1, 0).Color != ColorGray {
		t.Error("DrawBox should apply color")
	}
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("DrawRect should use the default color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorRed)

	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("after resize, size = %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.Repeat(" ", 8)+"\n"+strings.Repeat(" ", 8) {
		t.Errorf("Resize should clear content, got %q", got)
	}
}
