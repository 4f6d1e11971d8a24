package searcher

import (
	"errors"
	"fmt"
	"time"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
	"amazons/utils"

	"github.com/rs/zerolog/log"
)

// ErrNoLegalMoves is returned when asked to move in a decided position.
var ErrNoLegalMoves = errors.New("no legal moves")

type Option func(m *Minimax)

// Minimax chooses moves by depth-limited minimax with alpha-beta pruning,
// maximizing for White and minimizing for Black.
type Minimax struct {
	depth    int
	deadline time.Duration
	metrics  func() metrics.Collector
}

// WithDepth fixes the search depth instead of deriving it from the
// number of moves played.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithDeadline bounds the wall time of one search. When it runs out the
// best root move searched so far is returned.
func WithDeadline(deadline time.Duration) Option {
	return func(m *Minimax) {
		if deadline > 0 {
			m.deadline = deadline
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		metrics: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns a move for the side to move on board. board itself is
// never modified; the search works on a private copy.
func (m *Minimax) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	b := board.Clone()
	if winner := b.Winner(); winner != game.Empty {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s has already won", ErrNoLegalMoves, winner.Name())
	}

	depth := m.depth
	if depth == 0 {
		depth = Depth(board.NumMoves())
	}

	s := &search{metrics: m.metrics()}
	if m.deadline > 0 {
		s.stop = time.Now().Add(m.deadline)
	}

	s.metrics.Start(depth)
	score := s.findMove(b, depth, true, senseOf(b.Turn()), -meta.INFINITY, meta.INFINITY)
	if !s.found {
		// Deadline hit before a single root move was searched.
		s.best, _ = utils.First(b.LegalMoves(b.Turn()))
		score = 0
	}
	if s.expired {
		s.metrics.SetTimedOut()
		log.Warn().Msgf("search deadline of %s reached at depth %d, playing %s", m.deadline, depth, s.best)
	}
	metric := s.metrics.Complete(score)

	log.Debug().
		Str("side", b.Turn().Name()).
		Str("move", s.best.String()).
		Int("depth", depth).
		Int("score", score).
		Msg("search complete")

	return s.best, metric, nil
}

// search holds the state of one FindMove call.
type search struct {
	stop    time.Time // Zero when there is no deadline
	expired bool
	best    game.Move
	found   bool
	metrics metrics.Collector
}

func (s *search) timeUp() bool {
	if !s.expired && !s.stop.IsZero() && time.Now().After(s.stop) {
		s.expired = true
	}
	return s.expired
}

// findMove returns the minimax value of b searched depth plies deep, from
// White's point of view. sense is +1 when White is to move and -1 when
// Black is. With saveMove set, the move achieving the value is recorded.
// Every trial move is undone before the next one is tried.
func (s *search) findMove(b *game.Board, depth int, saveMove bool, sense, alpha, beta int) int {
	s.metrics.AddNode()
	if s.timeUp() {
		return 0
	}
	if depth == 0 || b.Winner() != game.Empty {
		s.metrics.AddLeaf()
		return StaticScore(b)
	}

	bestScore := -sense * meta.INFINITY
	for trial := range b.LegalMoves(sideOf(sense)) {
		lo, hi := alpha, beta
		if saveMove {
			// A root move tying the best needs its exact value, not a bound.
			if sense > 0 {
				lo = bestScore - 1
			} else {
				hi = bestScore + 1
			}
		}

		if err := b.MakeMove(trial); err != nil {
			panic(fmt.Sprintf("generated move rejected: %v", err))
		}
		score := s.findMove(b, depth-1, false, -sense, lo, hi)
		if err := b.Undo(); err != nil {
			panic(fmt.Sprintf("undo after trial move: %v", err))
		}
		if s.expired {
			break
		}

		if sense > 0 {
			if score >= bestScore {
				bestScore = score
				alpha = max(alpha, bestScore)
				s.record(saveMove, trial)
			}
		} else if score <= bestScore {
			bestScore = score
			beta = min(beta, bestScore)
			s.record(saveMove, trial)
		}
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return bestScore
}

func (s *search) record(saveMove bool, move game.Move) {
	if saveMove {
		s.best = move
		s.found = true
	}
}
