package engine

import (
	"fmt"
	"time"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
	"amazons/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// WithBoard starts the game from b instead of the initial position.
func WithBoard(b *game.Board) Option {
	return func(e *localEngine) {
		if b != nil {
			e.board = b
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithID(id string) Option {
	return func(e *localEngine) {
		if id != "" {
			e.id = id
		}
	}
}

type localEngine struct {
	id       string
	board    *game.Board
	players  map[game.Piece]player.Player
	maxTurns int
}

// LocalEngine sets up a game between white and black on a fresh board.
func LocalEngine(white, black player.Player, options ...Option) Engine {
	if white == nil || black == nil {
		panic("need two players")
	}
	if white.Side() != game.White || black.Side() != game.Black {
		panic(fmt.Sprintf("players play %s and %s, want white and black", white.Side().Name(), black.Side().Name()))
	}

	e := &localEngine{ // Default values
		id:       uuid.New().String(),
		board:    game.NewBoard(),
		players:  map[game.Piece]player.Player{game.White: white, game.Black: black},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *localEngine) Board() *game.Board {
	return e.board
}

// Run asks the player to move for each turn and applies its move to the
// board until the game is decided.
func (e *localEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        e.id,
		White:     e.players[game.White].Name(),
		Black:     e.players[game.Black].Name(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s (white) vs %s (black), %s to move", e.id, gameMetric.White, gameMetric.Black, e.board.Turn().Name())

	for turn := 1; e.board.Winner() == game.Empty && turn <= e.maxTurns; turn++ {
		side := e.board.Turn()
		p := e.players[side]

		move, searchMetric, err := p.FindMove(e.board)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("game %s turn %d: %s failed to move: %w", e.id, turn, side.Name(), err)
		}
		if err := e.board.MakeMove(move); err != nil {
			log.Warn().Msgf("game %s turn %d: %s offered %s", e.id, turn, side.Name(), move)
			return gameMetric, moveMetrics, fmt.Errorf("game %s turn %d: %w", e.id, turn, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side.Name(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("game %s turn %d: %s plays %s", e.id, turn, side.Name(), move)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner := e.board.Winner(); winner != game.Empty {
		gameMetric.Winner = winner.Name()
		log.Info().Msgf("game %s over after %d moves, winner: %s", e.id, gameMetric.TotalMoves, gameMetric.Winner)
	} else {
		log.Info().Msgf("game %s stopped after %d moves (no winner yet)", e.id, gameMetric.TotalMoves)
	}

	return gameMetric, moveMetrics, nil
}
