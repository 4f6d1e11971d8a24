package metrics

import (
	"time"
)

// PlayerConfig describes one contestant of an experiment.
type PlayerConfig struct {
	ID       int
	Kind     string        // "minimax" or "random"
	Depth    int           // Fixed search depth, 0 for the move-count table
	Deadline time.Duration // Search time limit per move, 0 for none
	Seed     uint64        // Random player seed
}
