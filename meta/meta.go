// meta/meta.go
package meta

// DEPTH_BANDS maps moves already played to search depth: fewer than
// DEPTH_BANDS[i] moves searches i+1 plies, anything beyond searches
// len(DEPTH_BANDS)+1 plies.
var DEPTH_BANDS = [...]int{20, 30, 40, 50}

// WINNING_VALUE is the score of a decided position (positive for White).
// It exceeds any mobility difference.
const WINNING_VALUE = 1 << 30

// INFINITY bounds the alpha-beta window.
const INFINITY = WINNING_VALUE + 1

// MAX_TURNS stops a self-play game that has not been decided.
const MAX_TURNS = 100

// GAMES is the default number of games per experiment.
const GAMES = 2
