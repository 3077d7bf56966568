package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// PieceType identifies one of the seven tetrominoes. It selects both the
// shape template and the render color.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceTypeCount is the number of distinct piece types.
const PieceTypeCount = 7

// ShapeSize is the side length of a piece's local occupancy grid.
const ShapeSize = 4

// Shape is a piece's local occupancy grid, indexed [row][column].
type Shape [ShapeSize][ShapeSize]bool

// templates holds the spawn orientation of every piece type.
var templates = [PieceTypeCount]Shape{
	PieceI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	PieceT: {
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	PieceS: {
		{false, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	PieceZ: {
		{false, false, false, false},
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	PieceJ: {
		{false, false, false, false},
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	PieceL: {
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
	},
}

var pieceColors = [PieceTypeCount]core.Color{
	PieceI: core.ColorCyan,
	PieceO: core.ColorYellow,
	PieceT: core.ColorPurple,
	PieceS: core.ColorGreen,
	PieceZ: core.ColorRed,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
}

var pieceNames = [PieceTypeCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// Valid reports whether t is one of the seven piece types.
func (t PieceType) Valid() bool {
	return t >= 0 && t < PieceTypeCount
}

// Template returns the spawn orientation for the piece type.
func (t PieceType) Template() Shape {
	return templates[t]
}

// Color returns the render color for the piece type.
func (t PieceType) Color() core.Color {
	return pieceColors[t]
}

// String returns the conventional letter name of the piece type.
func (t PieceType) String() string {
	if !t.Valid() {
		return "?"
	}
	return pieceNames[t]
}

// Rotated returns the shape turned 90 degrees clockwise.
func (s Shape) Rotated() Shape {
	var out Shape
	for i := range ShapeSize {
		for j := range ShapeSize {
			out[i][j] = s[ShapeSize-1-j][i]
		}
	}
	return out
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for i := range ShapeSize {
		for j := range ShapeSize {
			if s[i][j] {
				n++
			}
		}
	}
	return n
}

// Piece is the falling tetromino: a local shape placed at a board origin.
// X and Y may be outside the board while a candidate position is checked.
type Piece struct {
	Shape Shape
	X, Y  int
	Type  PieceType
}

// Spawn returns a piece of the given type in its spawn orientation,
// centered horizontally and aligned with the top of the board.
func Spawn(t PieceType) Piece {
	return Piece{
		Shape: t.Template(),
		X:     BoardWidth/2 - 2,
		Y:     0,
		Type:  t,
	}
}

// Point is an absolute board coordinate.
type Point struct {
	X, Y int
}

// Cells returns the absolute board coordinates of the piece's occupied cells
// after applying the offset (dx, dy). Row-major order.
func (p Piece) Cells(dx, dy int) []Point {
	cells := make([]Point, 0, ShapeSize)
	for i := range ShapeSize {
		for j := range ShapeSize {
			if p.Shape[i][j] {
				cells = append(cells, Point{X: p.X + j + dx, Y: p.Y + i + dy})
			}
		}
	}
	return cells
}
