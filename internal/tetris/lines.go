package tetris

// ClearLines removes every full row, compacting the rows above it, and
// returns how many rows were removed. Rows are scanned bottom-up; after a
// removal the same index is checked again since a new row just moved in.
func ClearLines(b *Board) int {
	cleared := 0
	for y := BoardHeight - 1; y >= 0; {
		if b.RowFull(y) {
			cleared++
			b.removeRow(y)
			continue
		}
		y--
	}
	return cleared
}
