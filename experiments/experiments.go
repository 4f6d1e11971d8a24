package experiments

import (
	"errors"
	"fmt"
	"time"

	"amazons/engine"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/player"
	"amazons/searcher"

	"github.com/rs/zerolog/log"
)

const (
	Minimax = "minimax"
	Random  = "random"
)

var ErrUnknownKind = errors.New("unknown player kind")

// RunStrength plays challenger against baseline for games games. The two
// configs swap colours after every game.
func RunStrength(baseline, challenger metrics.PlayerConfig, games int, outDir string) (string, error) {
	configs := []metrics.PlayerConfig{baseline, challenger}
	matchUps := [][2]metrics.PlayerConfig{{baseline, challenger}}
	return runExperiment("strength", configs, matchUps, games, outDir)
}

// RunDepthLadder pairs minimax at every depth from 1 to maxDepth against a
// random baseline.
func RunDepthLadder(maxDepth int, deadline time.Duration, seed uint64, games int, outDir string) (string, error) {
	baseline := metrics.PlayerConfig{ID: 0, Kind: Random, Seed: seed}
	configs := []metrics.PlayerConfig{baseline}
	matchUps := [][2]metrics.PlayerConfig{}
	for depth := 1; depth <= maxDepth; depth++ {
		config := metrics.PlayerConfig{ID: depth, Kind: Minimax, Depth: depth, Deadline: deadline}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.PlayerConfig{baseline, config})
	}
	return runExperiment("depth_ladder", configs, matchUps, games, outDir)
}

func runExperiment(name string, configs []metrics.PlayerConfig, matchUps [][2]metrics.PlayerConfig, games int, outDir string) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %+v and %+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			// Alternate who moves first
			white, black := matchUp[0], matchUp[1]
			if i%2 == 1 {
				white, black = black, white
			}

			gameMetric, moveMetrics, err := runGame(white, black, uint64(i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				WhiteConfig: white.ID,
				BlackConfig: black.ID,
				GameMetric:  gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %q", mi+1, len(matchUps), i+1, games, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WritePlayerConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one game from the initial position. offset perturbs the
// random players' seeds so repeated games differ.
func runGame(white, black metrics.PlayerConfig, offset uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	whitePlayer, err := newPlayer(white, game.White, offset)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	blackPlayer, err := newPlayer(black, game.Black, offset)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(whitePlayer, blackPlayer)
	return e.Run()
}

func newPlayer(config metrics.PlayerConfig, side game.Piece, offset uint64) (player.Player, error) {
	switch config.Kind {
	case Minimax:
		return player.NewAI(side, createMinimax(config)), nil
	case Random:
		return player.NewRandom(side, config.Seed+offset), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, config.Kind)
	}
}

func createMinimax(config metrics.PlayerConfig) *searcher.Minimax {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Deadline > 0 {
		options = append(options, searcher.WithDeadline(config.Deadline))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMinimax(options...)
}
