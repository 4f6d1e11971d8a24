package game

import (
	"fmt"
	"strconv"
)

// Size is the number of squares on a side of the board.
const Size = 10

// Square is a board coordinate stored as col + row*Size.
// Column 0 is 'a', row 0 is '1'.
type Square int8

// NoSquare marks an absent square, e.g. "nothing to treat as empty".
const NoSquare Square = -1

// Directions, clockwise from north.
const (
	North = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections
)

var (
	dCol = [NumDirections]int{0, 1, 1, 1, 0, -1, -1, -1}
	dRow = [NumDirections]int{1, 1, 0, -1, -1, -1, 0, 1}
)

// Sq returns the square at (col, row), or NoSquare when off the board.
func Sq(col, row int) Square {
	if col < 0 || col >= Size || row < 0 || row >= Size {
		return NoSquare
	}
	return Square(col + row*Size)
}

// ParseSquare parses "a1" .. "j10".
func ParseSquare(s string) (Square, error) {
	if len(s) < 2 || len(s) > 3 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrMalformedMove, s)
	}
	col := int(s[0] - 'a')
	row, err := strconv.Atoi(s[1:])
	if err != nil || s[1] == '0' || s[1] == '+' || s[1] == '-' {
		return NoSquare, fmt.Errorf("%w: square %q", ErrMalformedMove, s)
	}
	sq := Sq(col, row-1)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("%w: square %q out of range", ErrMalformedMove, s)
	}
	return sq, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

func (s Square) Valid() bool {
	return s >= 0 && s < Size*Size
}

func (s Square) Col() int {
	return int(s) % Size
}

func (s Square) Row() int {
	return int(s) / Size
}

// IsQueenMove reports whether to lies on one of the eight rays from s.
func (s Square) IsQueenMove(to Square) bool {
	if !s.Valid() || !to.Valid() || s == to {
		return false
	}
	dc, dr := to.Col()-s.Col(), to.Row()-s.Row()
	return dc == 0 || dr == 0 || abs(dc) == abs(dr)
}

// Direction returns the direction of the ray from s through to, or -1 if
// to is not a queen move away.
func (s Square) Direction(to Square) int {
	if !s.IsQueenMove(to) {
		return -1
	}
	dc, dr := sign(to.Col()-s.Col()), sign(to.Row()-s.Row())
	for dir := 0; dir < NumDirections; dir++ {
		if dCol[dir] == dc && dRow[dir] == dr {
			return dir
		}
	}
	return -1
}

// QueenMove returns the square steps away from s in direction dir, or
// NoSquare when that leaves the board.
func (s Square) QueenMove(dir, steps int) Square {
	if !s.Valid() || dir < 0 || dir >= NumDirections {
		return NoSquare
	}
	return Sq(s.Col()+dCol[dir]*steps, s.Row()+dRow[dir]*steps)
}

func (s Square) String() string {
	if !s.Valid() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col(), s.Row()+1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
