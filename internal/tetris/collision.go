package tetris

// Collides reports whether the piece, shifted by (dx, dy), would leave the
// board horizontally, reach past the bottom, or overlap a locked block.
//
// Cells above row 0 are only checked against the side walls: a piece may
// stick out of the top while it spawns or rotates.
func Collides(b *Board, p Piece, dx, dy int) bool {
	for i := range ShapeSize {
		for j := range ShapeSize {
			if !p.Shape[i][j] {
				continue
			}
			x := p.X + j + dx
			y := p.Y + i + dy

			if x < 0 || x >= BoardWidth {
				return true
			}
			if y >= BoardHeight {
				return true
			}
			if y >= 0 && !b[y][x].Empty() {
				return true
			}
		}
	}
	return false
}

// Merge locks the piece into the board. Occupied cells that fall outside
// the board are dropped.
func Merge(b *Board, p Piece) {
	cell := CellFor(p.Type)
	for _, pt := range p.Cells(0, 0) {
		if InBounds(pt.X, pt.Y) {
			b[pt.Y][pt.X] = cell
		}
	}
}
