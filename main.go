package main

import (
	"flag"
	"os"
	"time"

	"amazons/experiments"
	"amazons/experiments/metrics"
	"amazons/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", meta.GAMES, "Number of games per matchup")
	depth := flag.Int("depth", 0, "Fixed minimax search depth (0 derives it from the moves played)")
	deadline := flag.Duration("deadline", 10*time.Second, "Search time limit per move (0 for none)")
	opponent := flag.String("opponent", experiments.Random, "Opponent kind: random or minimax")
	seed := flag.Uint64("seed", 1, "Seed of the random opponent")
	out := flag.String("out", "results", "Directory for experiment records")
	ladder := flag.Int("ladder", 0, "Play minimax at depths 1..n against random instead of a single matchup")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	var dir string
	if *ladder > 0 {
		dir, err = experiments.RunDepthLadder(*ladder, *deadline, *seed, *games, *out)
	} else {
		baseline := metrics.PlayerConfig{ID: 0, Kind: *opponent, Seed: *seed, Deadline: *deadline}
		challenger := metrics.PlayerConfig{ID: 1, Kind: experiments.Minimax, Depth: *depth, Deadline: *deadline}
		dir, err = experiments.RunStrength(baseline, challenger, *games, *out)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("results written to %s", dir)
}
