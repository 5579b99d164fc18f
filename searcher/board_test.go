package searcher

import (
	"isolation/game"
)

// mockBoard is a hand-built game tree node: scripted move lists per player
// and scripted Forecast transitions, so search tests are fully deterministic.
type mockBoard struct {
	id       string
	moves    map[game.PlayerHandle][]game.Move
	children map[game.Move]*mockBoard
	won      map[game.PlayerHandle]bool
	lost     map[game.PlayerHandle]bool
}

func (b *mockBoard) LegalMoves(player game.PlayerHandle) []game.Move {
	return b.moves[player]
}

func (b *mockBoard) Forecast(move game.Move) game.Board {
	child, ok := b.children[move]
	if !ok {
		panic("forecast of unscripted move")
	}
	return child
}

func (b *mockBoard) HasWon(player game.PlayerHandle) bool {
	return b.won[player]
}

func (b *mockBoard) HasLost(player game.PlayerHandle) bool {
	return b.lost[player]
}

func (b *mockBoard) OpponentOf(player game.PlayerHandle) game.PlayerHandle {
	if player == game.Player1 {
		return game.Player2
	}
	return game.Player1
}

// scoreByID builds an evaluator that looks up scores by mockBoard id and
// counts calls.
func scoreByID(scores map[string]float64, calls *int) game.Evaluate {
	return func(b game.Board, player game.PlayerHandle) float64 {
		*calls++
		score, ok := scores[b.(*mockBoard).id]
		if !ok {
			panic("unscripted evaluation of board " + b.(*mockBoard).id)
		}
		return score
	}
}

// neverExpires is a clock with ample remaining time.
func neverExpires() float64 {
	return 1e9
}

// expired is a clock already past the threshold.
func expired() float64 {
	return 0
}

// expiresAfter returns a clock that reports ample time for the first n reads
// and no time from then on.
func expiresAfter(n int) game.Clock {
	reads := 0
	return func() float64 {
		reads++
		if reads > n {
			return 0
		}
		return 1e9
	}
}
