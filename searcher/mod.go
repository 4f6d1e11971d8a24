package searcher

import (
	"amazons/game"
	"amazons/meta"
	"amazons/utils"
)

// Depth returns the search depth for a position in which numMoves moves
// have been played. Branching narrows as arrows fill the board, so later
// positions are searched deeper.
func Depth(numMoves int) int {
	for i, band := range meta.DEPTH_BANDS {
		if numMoves < band {
			return i + 1
		}
	}
	return len(meta.DEPTH_BANDS) + 1
}

// Mobility is the number of legal moves White has minus the number Black has.
func Mobility(b *game.Board) int {
	return utils.Count(b.LegalMoves(game.White)) - utils.Count(b.LegalMoves(game.Black))
}

// StaticScore evaluates b from White's point of view: ±WINNING_VALUE once
// decided, the mobility difference otherwise.
func StaticScore(b *game.Board) int {
	switch b.Winner() {
	case game.White:
		return meta.WINNING_VALUE
	case game.Black:
		return -meta.WINNING_VALUE
	default:
		return Mobility(b)
	}
}

// sideOf maps +1 to White (maximizing) and -1 to Black (minimizing).
func sideOf(sense int) game.Piece {
	if sense > 0 {
		return game.White
	}
	return game.Black
}

func senseOf(side game.Piece) int {
	if side == game.White {
		return 1
	}
	return -1
}
