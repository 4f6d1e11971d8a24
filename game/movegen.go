package game

import "iter"

// ReachableFrom yields every square an unblocked queen move away from
// origin, treating ignored as empty. Each yielded square is empty (or is
// ignored). The piece on origin, if any, is not examined.
func (b *Board) ReachableFrom(origin, ignored Square) iter.Seq[Square] {
	return func(yield func(Square) bool) {
		if !origin.Valid() {
			return
		}
		for dir := 0; dir < NumDirections; dir++ {
			for s := origin.QueenMove(dir, 1); s != NoSquare; s = s.QueenMove(dir, 1) {
				if s != ignored && b.grid[s] != Empty {
					break
				}
				if !yield(s) {
					return
				}
			}
		}
	}
}

// LegalMoves yields every legal move for side, whoever is to move.
// Squares are scanned in index order, then rays clockwise from north, so
// the order is stable for a given position. The board must not be left
// modified between two steps of the iteration.
func (b *Board) LegalMoves(side Piece) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if !side.IsSide() {
			return
		}
		for i := range b.grid {
			from := Square(i)
			if b.grid[from] != side {
				continue
			}
			for to := range b.ReachableFrom(from, from) {
				for arrow := range b.ReachableFrom(to, from) {
					if !yield(Mv(from, to, arrow)) {
						return
					}
				}
			}
		}
	}
}

// HasLegalMove reports whether side has at least one legal move.
func (b *Board) HasLegalMove(side Piece) bool {
	for range b.LegalMoves(side) {
		return true
	}
	return false
}
