package game

import (
	"math"

	"golang.org/x/exp/rand"
)

// MovesCombined builds an evaluator that mixes both players' mobility:
// alpha*|own moves| + (1-alpha)*|opponent moves|. alpha must be in [0,1].
func MovesCombined(alpha float64) Evaluate {
	return func(b Board, player PlayerHandle) float64 {
		if decided, score := decidedScore(b, player); decided {
			return score
		}
		own := float64(len(b.LegalMoves(player)))
		opp := float64(len(b.LegalMoves(b.OpponentOf(player))))
		return alpha*own + (1-alpha)*opp
	}
}

// OpenMoves counts only the player's own available moves.
func OpenMoves(b Board, player PlayerHandle) float64 {
	if decided, score := decidedScore(b, player); decided {
		return score
	}
	return float64(len(b.LegalMoves(player)))
}

// ImprovedScore is the mobility differential: own moves minus opponent moves.
func ImprovedScore(b Board, player PlayerHandle) float64 {
	if decided, score := decidedScore(b, player); decided {
		return score
	}
	own := float64(len(b.LegalMoves(player)))
	opp := float64(len(b.LegalMoves(b.OpponentOf(player))))
	return own - opp
}

// NullScore scores every undecided position as 0. Baseline only.
func NullScore(b Board, player PlayerHandle) float64 {
	if decided, score := decidedScore(b, player); decided {
		return score
	}
	return 0
}

// RandomScore scores undecided positions uniformly at random, which turns the
// search into a random tie-breaker baseline.
func RandomScore(rng *rand.Rand) Evaluate {
	return func(b Board, player PlayerHandle) float64 {
		if decided, score := decidedScore(b, player); decided {
			return score
		}
		return rng.Float64()
	}
}

func decidedScore(b Board, player PlayerHandle) (bool, float64) {
	if b.HasLost(player) {
		return true, math.Inf(-1)
	}
	if b.HasWon(player) {
		return true, math.Inf(1)
	}
	return false, 0
}
