package game

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFromRows builds a position from ten rows of glyphs, highest row
// first, one character per column ("W", "B", "S" or "-"/"E").
func boardFromRows(t *testing.T, turn Piece, rows ...string) *Board {
	t.Helper()
	require.Len(t, rows, Size)

	b := &Board{}
	b.Init()
	for i, row := range rows {
		require.Len(t, row, Size, "row %d", i)
		for col, ch := range row {
			var p Piece
			switch ch {
			case 'W':
				p = White
			case 'B':
				p = Black
			case 'S':
				p = Arrow
			case 'E', '-':
				p = Empty
			default:
				t.Fatalf("unexpected glyph %q", ch)
			}
			b.Put(p, Sq(col, Size-1-i))
		}
	}
	b.SetTurn(turn)
	return b
}

func squares(names ...string) []Square {
	out := make([]Square, len(names))
	for i, n := range names {
		out[i] = MustSquare(n)
	}
	return out
}

func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
