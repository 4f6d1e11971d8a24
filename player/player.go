package player

import (
	"errors"
	"fmt"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher"

	"golang.org/x/exp/rand"
)

// ErrNotYourTurn is returned when a player is asked to move for the
// other side.
var ErrNotYourTurn = errors.New("not this player's turn")

// Player produces one legal move for its side on the board it is given.
// It may inspect the board but must not leave it modified.
type Player interface {
	Side() game.Piece
	Name() string
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error)
}

func checkTurn(p Player, board *game.Board) error {
	if board.Turn() != p.Side() {
		return fmt.Errorf("%w: %s asked to move for %s", ErrNotYourTurn, p.Side().Name(), board.Turn().Name())
	}
	return nil
}

// AI moves by minimax search.
type AI struct {
	side     game.Piece
	searcher *searcher.Minimax
}

// NewAI returns an automated player for side using s to choose moves.
func NewAI(side game.Piece, s *searcher.Minimax) *AI {
	if !side.IsSide() {
		panic(fmt.Sprintf("invalid side %s", side.Name()))
	}
	if s == nil {
		panic("nil searcher")
	}
	return &AI{side: side, searcher: s}
}

func (a *AI) Side() game.Piece {
	return a.side
}

func (a *AI) Name() string {
	return "minimax"
}

func (a *AI) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	if err := checkTurn(a, board); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return a.searcher.FindMove(board)
}

// Random plays a uniformly random legal move. The same seed on the same
// positions gives the same moves.
type Random struct {
	side game.Piece
	rng  *rand.Rand
}

func NewRandom(side game.Piece, seed uint64) *Random {
	if !side.IsSide() {
		panic(fmt.Sprintf("invalid side %s", side.Name()))
	}
	return &Random{side: side, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Side() game.Piece {
	return r.side
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	if err := checkTurn(r, board); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	var moves []game.Move
	for m := range board.LegalMoves(r.side) {
		moves = append(moves, m)
	}
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w for %s", searcher.ErrNoLegalMoves, r.side.Name())
	}
	return moves[r.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
