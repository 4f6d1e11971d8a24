package searcher

import (
	"testing"
	"time"

	"amazons/game"
	"amazons/meta"

	"github.com/stretchr/testify/require"
)

// boardFromRows builds a position from ten rows of glyphs, highest row
// first ("W", "B", "S" or "-").
func boardFromRows(t *testing.T, turn game.Piece, rows ...string) *game.Board {
	t.Helper()
	require.Len(t, rows, game.Size)

	b := game.NewBoard()
	for i, row := range rows {
		require.Len(t, row, game.Size)
		for col, ch := range row {
			p := game.Empty
			switch ch {
			case 'W':
				p = game.White
			case 'B':
				p = game.Black
			case 'S':
				p = game.Arrow
			}
			b.Put(p, game.Sq(col, game.Size-1-i))
		}
	}
	b.SetTurn(turn)
	return b
}

// smallBoard confines play to the 4x4 corner a1-d4 by filling every other
// square with arrows. rows lists that corner, row 4 first.
func smallBoard(t *testing.T, turn game.Piece, rows ...string) *game.Board {
	t.Helper()
	require.Len(t, rows, 4)

	full := make([]string, game.Size)
	for i := range full {
		full[i] = "SSSSSSSSSS"
	}
	for i, row := range rows {
		full[game.Size-4+i] = row + "SSSSSS"
	}
	return boardFromRows(t, turn, full...)
}

// exhaustive is plain minimax without pruning, with the same move order,
// leaf rule and last-equal-wins tie break as the searcher.
// leaves counts the static evaluations performed.
func exhaustive(b *game.Board, depth, sense int, leaves *int) (int, game.Move) {
	if depth == 0 || b.Winner() != game.Empty {
		*leaves++
		return StaticScore(b), game.Move{}
	}
	bestScore := -sense * meta.INFINITY
	var bestMove game.Move
	for trial := range b.LegalMoves(sideOf(sense)) {
		if err := b.MakeMove(trial); err != nil {
			panic(err)
		}
		score, _ := exhaustive(b, depth-1, -sense, leaves)
		if err := b.Undo(); err != nil {
			panic(err)
		}
		if (sense > 0 && score >= bestScore) || (sense < 0 && score <= bestScore) {
			bestScore = score
			bestMove = trial
		}
	}
	return bestScore, bestMove
}

// Black on j10 has a single free neighbour, i9.
var lastGapRows = []string{
	"--------SB",
	"---------S",
	"----------",
	"----------",
	"----------",
	"----------",
	"----------",
	"----------",
	"----------",
	"W---------",
}

var boxedWhiteRows = []string{
	"WS------SW",
	"SS------SS",
	"----------",
	"------B---",
	"-----B----",
	"----B-----",
	"---B------",
	"----------",
	"SS------SS",
	"WS------SW",
}

func TestDepth(t *testing.T) {
	cases := map[int]int{0: 1, 19: 1, 20: 2, 29: 2, 30: 3, 39: 3, 40: 4, 49: 4, 50: 5, 91: 5}
	for numMoves, want := range cases {
		require.Equal(t, want, Depth(numMoves), "%d moves played", numMoves)
	}
}

func TestStaticScore(t *testing.T) {
	t.Run("initial position is balanced", func(t *testing.T) {
		require.Equal(t, 0, StaticScore(game.NewBoard()))
	})

	t.Run("mobility difference", func(t *testing.T) {
		b := smallBoard(t, game.White,
			"---B",
			"----",
			"----",
			"WS--",
		)
		white, black := 0, 0
		for range b.LegalMoves(game.White) {
			white++
		}
		for range b.LegalMoves(game.Black) {
			black++
		}
		require.NotEqual(t, white, black)
		require.Equal(t, white-black, Mobility(b))
		require.Equal(t, white-black, StaticScore(b))
	})

	t.Run("decided positions dominate", func(t *testing.T) {
		b := boardFromRows(t, game.White, boxedWhiteRows...)
		require.Equal(t, -meta.WINNING_VALUE, StaticScore(b))

		b = boardFromRows(t, game.White, lastGapRows...)
		require.NoError(t, b.MakeMove(game.MustMove("a1-b2(i9)")))
		require.Equal(t, meta.WINNING_VALUE, StaticScore(b))
		require.Greater(t, meta.WINNING_VALUE, 4*game.Size*game.Size*game.Size*game.Size,
			"A win should outweigh any mobility difference")
	})
}

func TestFindMove(t *testing.T) {
	t.Run("refuses a decided position", func(t *testing.T) {
		b := boardFromRows(t, game.White, boxedWhiteRows...)
		_, _, err := NewMinimax().FindMove(b)
		require.ErrorIs(t, err, ErrNoLegalMoves)
	})

	t.Run("returns a legal move and leaves the board untouched", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.MakeMove(game.MustMove("d1-d3(d1)")))
		before := b.Clone()

		move, metric, err := NewMinimax(WithMetrics()).FindMove(b)
		require.NoError(t, err)
		require.True(t, b.IsLegal(move), "move %s", move)
		require.Equal(t, before, b)
		require.Equal(t, 1, metric.Depth, "Early positions are searched one ply deep")
		require.Greater(t, metric.Nodes, 1)
		require.False(t, metric.TimedOut)
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		for _, depth := range []int{1, 2} {
			b := boardFromRows(t, game.White, lastGapRows...)
			move, metric, err := NewMinimax(WithDepth(depth), WithMetrics()).FindMove(b)
			require.NoError(t, err)
			require.Equal(t, meta.WINNING_VALUE, metric.Score, "depth %d", depth)

			require.NoError(t, b.MakeMove(move))
			require.Equal(t, game.White, b.Winner(), "depth %d move %s", depth, move)
		}
	})

	t.Run("plays for black", func(t *testing.T) {
		b := smallBoard(t, game.Black,
			"---B",
			"----",
			"----",
			"W---",
		)
		move, _, err := NewMinimax(WithDepth(2)).FindMove(b)
		require.NoError(t, err)
		require.Equal(t, game.MustSquare("d4"), move.From)
		require.True(t, b.IsLegal(move))
	})

	t.Run("deadline still yields a legal move", func(t *testing.T) {
		b := game.NewBoard()
		move, metric, err := NewMinimax(WithDepth(3), WithDeadline(time.Nanosecond), WithMetrics()).FindMove(b)
		require.NoError(t, err)
		require.True(t, b.IsLegal(move), "move %s", move)
		require.True(t, metric.TimedOut)
	})
}

func TestAlphaBetaMatchesExhaustiveMinimax(t *testing.T) {
	positions := []struct {
		name  string
		turn  game.Piece
		depth int
		rows  []string
	}{
		{"open corner", game.White, 3, []string{
			"---B",
			"----",
			"----",
			"W---",
		}},
		{"black to move", game.Black, 3, []string{
			"B---",
			"-S--",
			"--S-",
			"---W",
		}},
		{"cramped", game.White, 3, []string{
			"B-S-",
			"-S--",
			"--W-",
			"S---",
		}},
		{"two queens each", game.White, 2, []string{
			"B--B",
			"-SS-",
			"----",
			"W--W",
		}},
		{"two queens each, black", game.Black, 2, []string{
			"-B-W",
			"S---",
			"---S",
			"W-B-",
		}},
	}

	for _, p := range positions {
		t.Run(p.name, func(t *testing.T) {
			b := smallBoard(t, p.turn, p.rows...)
			before := b.Clone()
			leaves := 0
			wantScore, wantMove := exhaustive(b.Clone(), p.depth, senseOf(p.turn), &leaves)

			move, metric, err := NewMinimax(WithDepth(p.depth), WithMetrics()).FindMove(b)
			require.NoError(t, err)
			require.Equal(t, wantMove, move)
			require.Equal(t, wantScore, metric.Score)
			require.Equal(t, before, b)
		})
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	b := smallBoard(t, game.White,
		"B--B",
		"-SS-",
		"----",
		"W--W",
	)
	_, metric, err := NewMinimax(WithDepth(2), WithMetrics()).FindMove(b)
	require.NoError(t, err)
	require.Greater(t, metric.Cutoffs, 0)

	leaves := 0
	exhaustive(b.Clone(), 2, 1, &leaves)
	require.Less(t, metric.Leaves, leaves)
}
