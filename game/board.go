package game

import (
	"fmt"
	"strings"
)

// Board is the state of an Amazons game. It is not safe for concurrent use.
type Board struct {
	grid    [Size * Size]Piece // Contents per square, indexed by Square
	turn    Piece              // Side to move, White or Black (Empty before Init)
	history []Move             // Moves played and not undone
	winner  Piece              // Cached winner, Empty if undecided or not computed
}

var (
	whiteStart = []string{"a4", "d1", "g1", "j4"}
	blackStart = []string{"a7", "d10", "g10", "j7"}
)

// NewBoard returns a board in the initial position.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init resets b to the initial position with White to move.
func (b *Board) Init() {
	for i := range b.grid {
		b.grid[i] = Empty
	}
	for _, s := range whiteStart {
		b.grid[MustSquare(s)] = White
	}
	for _, s := range blackStart {
		b.grid[MustSquare(s)] = Black
	}
	b.turn = White
	b.history = make([]Move, 0, 2*Size*Size)
	b.winner = Empty
}

// Clone returns an independent copy of b, history included.
func (b *Board) Clone() *Board {
	c := &Board{
		grid:    b.grid,
		turn:    b.turn,
		history: make([]Move, len(b.history), cap(b.history)),
		winner:  b.winner,
	}
	copy(c.history, b.history)
	return c
}

func (b *Board) Turn() Piece {
	return b.turn
}

// SetTurn forces the side to move. Meant for setting up positions.
func (b *Board) SetTurn(side Piece) {
	b.turn = side
	b.winner = Empty
}

// NumMoves returns the number of moves played and not undone.
func (b *Board) NumMoves() int {
	return len(b.history)
}

// History returns a copy of the moves played so far, oldest first.
func (b *Board) History() []Move {
	h := make([]Move, len(b.history))
	copy(h, b.history)
	return h
}

// Get returns the contents of s.
func (b *Board) Get(s Square) Piece {
	return b.grid[s]
}

// Put sets s to p without any legality check.
func (b *Board) Put(p Piece, s Square) {
	b.grid[s] = p
	b.winner = Empty
}

// IsUnblockedLine reports whether to is a queen move away from from and
// every square strictly between them is empty, treating ignored (which may
// be NoSquare) as empty. The contents of to are not examined.
func (b *Board) IsUnblockedLine(from, to, ignored Square) bool {
	dir := from.Direction(to)
	if dir < 0 {
		return false
	}
	for s := from.QueenMove(dir, 1); s != to; s = s.QueenMove(dir, 1) {
		if s != ignored && b.grid[s] != Empty {
			return false
		}
	}
	return true
}

// IsLegalOrigin reports whether from holds a piece of the side to move.
func (b *Board) IsLegalOrigin(from Square) bool {
	return from.Valid() && b.turn.IsSide() && b.grid[from] == b.turn
}

// IsLegalStep reports whether from-to is a legal queen move for the side
// to move, ignoring the arrow.
func (b *Board) IsLegalStep(from, to Square) bool {
	return b.IsLegalOrigin(from) &&
		b.IsUnblockedLine(from, to, from) &&
		b.grid[to] == Empty
}

// IsLegalMove reports whether from-to(arrow) is legal. The arrow may land
// on the square the piece just left.
func (b *Board) IsLegalMove(from, to, arrow Square) bool {
	return b.IsLegalStep(from, to) &&
		b.IsUnblockedLine(to, arrow, from) &&
		(b.grid[arrow] == Empty || arrow == from)
}

// IsLegal is IsLegalMove for a Move value.
func (b *Board) IsLegal(m Move) bool {
	return b.IsLegalMove(m.From, m.To, m.Arrow)
}

// MakeMove plays m for the side to move.
func (b *Board) MakeMove(m Move) error {
	if !b.IsLegal(m) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.turn.Name())
	}
	b.grid[m.To] = b.turn
	b.grid[m.From] = Empty
	b.grid[m.Arrow] = Arrow
	b.history = append(b.history, m)
	b.turn = b.turn.Opponent()
	b.winner = Empty
	return nil
}

// Undo takes back the last move.
func (b *Board) Undo() error {
	n := len(b.history)
	if n == 0 {
		return ErrEmptyHistory
	}
	m := b.history[n-1]
	b.history = b.history[:n-1]

	mover := b.turn.Opponent()
	b.grid[m.Arrow] = Empty
	b.grid[m.To] = Empty
	b.grid[m.From] = mover
	b.turn = mover
	// The mover had a legal move, so the restored position was undecided.
	b.winner = Empty
	return nil
}

// Winner returns the side that has won, or Empty while the side to move
// still has a legal move. Costs one move generation unless cached.
func (b *Board) Winner() Piece {
	if b.winner != Empty || !b.turn.IsSide() {
		return b.winner
	}
	if b.HasLegalMove(b.turn) {
		return Empty
	}
	b.winner = b.turn.Opponent()
	return b.winner
}

// String renders the board highest row first, e.g. "   - - - B - - B - - -".
func (b *Board) String() string {
	var sb strings.Builder
	for row := Size - 1; row >= 0; row-- {
		sb.WriteString("  ")
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b.grid[Sq(col, row)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
