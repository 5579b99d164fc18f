package metrics

import (
	"time"
)

// SearchMetric describes a single move search.
type SearchMetric struct {
	Method   string
	Depth    int // Deepest fully completed depth
	Nodes    int // Recursive calls entered
	Duration time.Duration
	Aborted  bool
}

// MoveMetric ties a search to its position in a game.
type MoveMetric struct {
	Step   int
	Player int // PlayerHandle of the mover
	SearchMetric
}

// GameMetric summarizes one finished match.
type GameMetric struct {
	StartingAgent string
	Winner        string // Agent name, "" for a draw/abandoned game
	TotalMoves    int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

// Collector accumulates metrics over one search. The search is
// single-threaded and depth-first, so counters are plain ints.
type Collector interface {
	Start(method string)
	AddNode()
	SetDepth(depth int)
	SetAborted(value bool)
	Complete() SearchMetric
}

type collector struct {
	method    string
	startTime time.Time
	nodes     int
	depth     int
	aborted   bool
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(method string) {
	c.startTime = time.Now()
	c.method = method
	c.nodes = 0
	c.depth = 0
	c.aborted = false
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) SetDepth(depth int) {
	c.depth = depth
}

func (c *collector) SetAborted(value bool) {
	c.aborted = value
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Method:   c.method,
		Depth:    c.depth,
		Nodes:    c.nodes,
		Duration: time.Since(c.startTime),
		Aborted:  c.aborted,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(method string)    {}
func (c *dummyCollector) AddNode()               {}
func (c *dummyCollector) SetDepth(depth int)     {}
func (c *dummyCollector) SetAborted(value bool)  {}
func (c *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
