package tetris

// Board dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is one board position: 0 is empty, otherwise the locked piece type + 1.
type Cell uint8

// CellEmpty marks an unoccupied board position.
const CellEmpty Cell = 0

// CellFor returns the cell value written when a piece of type t locks.
func CellFor(t PieceType) Cell {
	return Cell(t + 1)
}

// Empty reports whether the cell holds no locked block.
func (c Cell) Empty() bool {
	return c == CellEmpty
}

// PieceType returns the type of the block that locked here.
// ok is false for empty cells.
func (c Cell) PieceType() (t PieceType, ok bool) {
	if c.Empty() {
		return 0, false
	}
	return PieceType(c - 1), true
}

// Board represents the grid of locked blocks, indexed [row][column]
// with row 0 at the top.
type Board [BoardHeight][BoardWidth]Cell

// Reset empties every cell.
func (b *Board) Reset() {
	*b = Board{}
}

// InBounds reports whether (x, y) is a board position.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// At returns the cell at (x, y). Positions off the board read as empty.
func (b *Board) At(x, y int) Cell {
	if !InBounds(x, y) {
		return CellEmpty
	}
	return b[y][x]
}

// Occupied reports whether (x, y) holds a locked block.
func (b *Board) Occupied(x, y int) bool {
	return !b.At(x, y).Empty()
}

// RowFull reports whether every column of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for x := range BoardWidth {
		if b[y][x].Empty() {
			return false
		}
	}
	return true
}

// removeRow deletes row y, moving every row above it down by one and
// leaving row 0 empty.
func (b *Board) removeRow(y int) {
	for k := y; k > 0; k-- {
		b[k] = b[k-1]
	}
	b[0] = [BoardWidth]Cell{}
}

// Filled returns the number of occupied cells on the board.
func (b *Board) Filled() int {
	n := 0
	for y := range BoardHeight {
		for x := range BoardWidth {
			if !b[y][x].Empty() {
				n++
			}
		}
	}
	return n
}
