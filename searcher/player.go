package searcher

import (
	"errors"
	"math"

	"isolation/game"
	"isolation/searcher/metrics"
)

// DefaultTimeout is the remaining-time threshold (ms) below which a search
// aborts and the last completed depth's move is used.
const DefaultTimeout = 10.0

type Option func(p *Player)

// Player picks moves by depth-limited adversarial search. Configuration is
// fixed at construction and never changes between moves.
type Player struct {
	evaluate    game.Evaluate
	depth       int
	method      Method
	iterative   bool
	threshold   float64
	maxDepth    int
	mergeBounds bool
	alignedBase bool
	metrics     metrics.Collector
}

func WithDepth(depth int) Option {
	return func(p *Player) {
		if depth > 0 {
			p.depth = depth
		}
	}
}

func WithMethod(method Method) Option {
	return func(p *Player) {
		p.method = method
	}
}

func WithIterative(iterative bool) Option {
	return func(p *Player) {
		p.iterative = iterative
	}
}

// WithTimeout sets the abort threshold in milliseconds of remaining time.
func WithTimeout(threshold float64) Option {
	return func(p *Player) {
		if threshold >= 0 {
			p.threshold = threshold
		}
	}
}

// WithMaxDepth caps iterative deepening. Zero means no ceiling, which is the
// default and relies on the clock to stop the search.
func WithMaxDepth(depth int) Option {
	return func(p *Player) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// WithMergeBounds switches alphabeta to the textbook max/min bound merge
// instead of overwriting the bound with the latest best score.
func WithMergeBounds() Option {
	return func(p *Player) {
		p.mergeBounds = true
	}
}

// WithAlignedBaseCase makes alphabeta use the same depth==1 leaf shortcut as
// minimax instead of bottoming out at depth==0.
func WithAlignedBaseCase() Option {
	return func(p *Player) {
		p.alignedBase = true
	}
}

func WithMetrics() Option {
	return func(p *Player) {
		p.metrics = metrics.NewCollector()
	}
}

// NewPlayer builds a search player around the given evaluator. A nil
// evaluator falls back to the reference MovesCombined mix.
func NewPlayer(evaluate game.Evaluate, options ...Option) *Player {
	p := &Player{ // Default values
		evaluate:  evaluate,
		depth:     3,
		method:    Minimax,
		iterative: true,
		threshold: DefaultTimeout,
		metrics:   metrics.NewDummyCollector(),
	}
	if p.evaluate == nil {
		p.evaluate = game.MovesCombined(0.77)
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// FindMove searches for the best move for player on board and returns it
// before the clock runs out. legalMoves must be the moves available to player
// at board; an empty list returns game.NoMove without any search. The search
// abort is absorbed here: the move from the last fully completed depth (or
// the first legal move, if no depth ever completed) is returned instead.
func (p *Player) FindMove(board game.Board, player game.PlayerHandle, legalMoves []game.Move, clock game.Clock) (game.Move, metrics.SearchMetric, error) {
	p.metrics.Start(string(p.method))
	if len(legalMoves) == 0 {
		return game.NoMove, p.metrics.Complete(), nil
	}

	// Default best move in case not even depth 1 completes
	best := legalMoves[0]

	e := &engine{
		evaluate:    p.evaluate,
		self:        player,
		clock:       clock,
		threshold:   p.threshold,
		mergeBounds: p.mergeBounds,
		alignedBase: p.alignedBase,
		metrics:     p.metrics,
	}

	var search func(board game.Board, depth int) (Result, error)
	switch p.method {
	case Minimax:
		search = func(board game.Board, depth int) (Result, error) {
			return e.minimax(board, depth, true)
		}
	case AlphaBeta:
		search = func(board game.Board, depth int) (Result, error) {
			return e.alphabeta(board, depth, math.Inf(-1), math.Inf(1), true)
		}
	default:
		return game.NoMove, p.metrics.Complete(), UnsupportedMethodError{Method: p.method}
	}

	if !p.iterative {
		result, err := search(board, p.depth)
		switch {
		case err == nil:
			best = result.Move
			p.metrics.SetDepth(p.depth)
		case errors.Is(err, ErrAborted):
			p.metrics.SetAborted(true)
		default:
			return game.NoMove, p.metrics.Complete(), err
		}
		return best, p.metrics.Complete(), nil
	}

	for depth := 1; p.maxDepth == 0 || depth <= p.maxDepth; depth++ {
		result, err := search(board, depth)
		if errors.Is(err, ErrAborted) {
			p.metrics.SetAborted(true)
			break
		}
		if err != nil {
			return game.NoMove, p.metrics.Complete(), err
		}
		// Only a fully completed depth may update the best move.
		best = result.Move
		p.metrics.SetDepth(depth)
	}
	return best, p.metrics.Complete(), nil
}
