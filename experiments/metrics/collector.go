package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth    int           // Depth limit used for this search
	Duration time.Duration // Wall time spent searching
	Nodes    int           // Positions visited, root included
	Leaves   int           // Static evaluations
	Cutoffs  int           // Alpha-beta cutoffs
	Score    int           // Value of the chosen move, from White's point of view
	TimedOut bool          // Deadline reached before the search completed
}

type MoveMetric struct {
	Step   int    // 1-based ply number
	Player string // "white" or "black"
	Move   string // Canonical move text
	SearchMetric
}

type GameMetric struct {
	ID         string // Match identifier
	White      string // Config label of the white player
	Black      string // Config label of the black player
	Winner     string // "white", "black", or "" when stopped at the turn limit
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector gathers statistics for one search. A search runs on a single
// goroutine, so implementations need no locking.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetTimedOut()
	Complete(score int) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
	timedOut  bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	*m = collector{depth: depth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) SetTimedOut() {
	m.timedOut = true
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
		Score:    score,
		TimedOut: m.timedOut,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) SetTimedOut()                    {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{} }
