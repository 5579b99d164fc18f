package searcher

import (
	"math"

	"isolation/game"
)

// alphabeta is minimax with pruning. Bounds limit what each side can already
// guarantee elsewhere in the tree: a maximizing layer prunes once its best
// score reaches beta, a minimizing layer once it falls to alpha.
//
// Two behaviors are deliberately non-textbook and kept under flags:
//   - the base case triggers at depth == 0, one ply later than minimax's
//     depth == 1 leaf shortcut (alignedBase restores the shortcut);
//   - after a non-pruning update the bound is overwritten with the new best
//     score rather than merged via max/min (mergeBounds restores the merge).
func (e *engine) alphabeta(board game.Board, depth int, alpha, beta float64, maximizing bool) (Result, error) {
	if e.clock() < e.threshold {
		return Result{}, ErrAborted
	}
	e.metrics.AddNode()

	mover := e.self
	if !maximizing {
		mover = board.OpponentOf(e.self)
	}
	moves := board.LegalMoves(mover)
	if depth == 0 || len(moves) == 0 {
		return Result{Score: e.evaluate(board, e.self), Move: game.NoMove}, nil
	}

	best := Result{Score: math.Inf(-1), Move: moves[0]}
	if !maximizing {
		best.Score = math.Inf(1)
	}

	for _, move := range moves {
		var score float64
		if e.alignedBase && depth == 1 {
			score = e.evaluate(board.Forecast(move), e.self)
		} else {
			result, err := e.alphabeta(board.Forecast(move), depth-1, alpha, beta, !maximizing)
			if err != nil {
				return Result{}, err
			}
			score = result.Score
		}
		if (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result{Score: score, Move: move}
			// Pruning is only tested after an update.
			if prune(alpha, beta, best.Score, maximizing) {
				break
			}
			alpha, beta = e.updateBounds(alpha, beta, best.Score, maximizing)
		}
	}
	return best, nil
}

func prune(alpha, beta, score float64, maximizing bool) bool {
	return (maximizing && score >= beta) || (!maximizing && score <= alpha)
}

func (e *engine) updateBounds(alpha, beta, score float64, maximizing bool) (float64, float64) {
	if maximizing {
		if e.mergeBounds {
			return math.Max(alpha, score), beta
		}
		return score, beta
	}
	if e.mergeBounds {
		return alpha, math.Min(beta, score)
	}
	return alpha, score
}
