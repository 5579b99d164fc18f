package searcher

import (
	"isolation/game"
	"isolation/searcher/metrics"
)

// engine carries the per-call search context: the heuristic, the searching
// player's perspective, and the clock supplied for this turn. It is built
// fresh for every FindMove call and never outlives it.
type engine struct {
	evaluate    game.Evaluate
	self        game.PlayerHandle
	clock       game.Clock
	threshold   float64
	mergeBounds bool
	alignedBase bool
	metrics     metrics.Collector
}

// minimax searches depth plies below board and returns the best result for
// the side to move. maximizing is true when the searching player is to move.
// Returns ErrAborted as soon as the clock drops below the threshold; partial
// work at this depth is discarded by the caller.
func (e *engine) minimax(board game.Board, depth int, maximizing bool) (Result, error) {
	if e.clock() < e.threshold {
		return Result{}, ErrAborted
	}
	e.metrics.AddNode()

	mover := e.self
	if !maximizing {
		mover = board.OpponentOf(e.self)
	}
	moves := board.LegalMoves(mover)
	if len(moves) == 0 {
		return Result{Score: e.evaluate(board, e.self), Move: game.NoMove}, nil
	}

	var best Result
	for i, move := range moves {
		var score float64
		if depth == 1 {
			// Leaf shortcut: score the child directly instead of paying for
			// one more recursive frame.
			score = e.evaluate(board.Forecast(move), e.self)
		} else {
			result, err := e.minimax(board.Forecast(move), depth-1, !maximizing)
			if err != nil {
				return Result{}, err
			}
			score = result.Score
		}
		// First-found tie-break: only a strictly better score replaces the
		// current best, same policy as alphabeta.
		if i == 0 || (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result{Score: score, Move: move}
		}
	}
	return best, nil
}
