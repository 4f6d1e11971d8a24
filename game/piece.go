package game

// Piece is the content of a single board square.
type Piece int

const (
	Empty Piece = iota
	White       // moves first
	Black
	Arrow
)

// Opponent returns the other side for White and Black, and Empty otherwise.
func (p Piece) Opponent() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// IsSide reports whether p is one of the two playing sides.
func (p Piece) IsSide() bool {
	return p == White || p == Black
}

func (p Piece) String() string {
	switch p {
	case White:
		return "W"
	case Black:
		return "B"
	case Arrow:
		return "S"
	default:
		return "-"
	}
}

// Name is the long form used in logs and records.
func (p Piece) Name() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	case Arrow:
		return "arrow"
	default:
		return "empty"
	}
}
