package tetris

// kickOffsets are the horizontal shifts tried, in order, when a rotated
// piece does not fit where it is. The order decides which placement wins
// next to walls and stacks, so it must not change.
var kickOffsets = [...]int{0, -1, 1, -2, 2}

// Rotate turns the piece clockwise in place, shifting it sideways by the
// first kick offset that fits. If no offset fits the piece is left as it
// was and Rotate returns false.
func Rotate(b *Board, p *Piece) bool {
	rotated := *p
	rotated.Shape = p.Shape.Rotated()

	for _, dx := range kickOffsets {
		if !Collides(b, rotated, dx, 0) {
			rotated.X += dx
			*p = rotated
			return true
		}
	}
	return false
}
