package game

import "errors"

var (
	// ErrIllegalMove is returned by MakeMove when the move is not legal in
	// the current position.
	ErrIllegalMove = errors.New("illegal move")
	// ErrEmptyHistory is returned by Undo on a board with no moves played.
	ErrEmptyHistory = errors.New("no moves to undo")
	// ErrMalformedMove is returned when move or square text cannot be parsed.
	ErrMalformedMove = errors.New("malformed move text")
)
