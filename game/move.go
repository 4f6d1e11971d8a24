package game

import (
	"fmt"
	"strings"
)

// Move represents one turn: a queen moves From-To, then throws an arrow
// from To onto Arrow.
type Move struct {
	From  Square
	To    Square
	Arrow Square
}

// Mv builds a move from three squares.
func Mv(from, to, arrow Square) Move {
	return Move{From: from, To: to, Arrow: arrow}
}

// ParseMove parses the canonical form "d1-d3(d1)".
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	dash := strings.IndexByte(text, '-')
	open := strings.IndexByte(text, '(')
	if dash < 0 || open < dash || !strings.HasSuffix(text, ")") {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, text)
	}
	from, err := ParseSquare(text[:dash])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[dash+1 : open])
	if err != nil {
		return Move{}, err
	}
	arrow, err := ParseSquare(text[open+1 : len(text)-1])
	if err != nil {
		return Move{}, err
	}
	return Mv(from, to, arrow), nil
}

// MustMove is ParseMove for literals known to be valid.
func MustMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Move) String() string {
	return fmt.Sprintf("%s-%s(%s)", m.From, m.To, m.Arrow)
}
