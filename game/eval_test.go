package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// stubBoard feeds evaluators fixed move counts and terminal flags.
type stubBoard struct {
	ownMoves int
	oppMoves int
	won      bool
	lost     bool
}

func (b stubBoard) LegalMoves(player PlayerHandle) []Move {
	count := b.ownMoves
	if player == Player2 {
		count = b.oppMoves
	}
	return make([]Move, count)
}

func (b stubBoard) Forecast(move Move) Board               { return b }
func (b stubBoard) HasWon(player PlayerHandle) bool        { return b.won }
func (b stubBoard) HasLost(player PlayerHandle) bool       { return b.lost }
func (b stubBoard) OpponentOf(p PlayerHandle) PlayerHandle { return Player2 }

func TestMovesCombined(t *testing.T) {
	t.Run("mixes both players' mobility by alpha", func(t *testing.T) {
		board := stubBoard{ownMoves: 5, oppMoves: 2}

		got := MovesCombined(0.77)(board, Player1)

		require.InDelta(t, 0.77*5+0.23*2, got, 1e-9)
	})

	t.Run("alpha 1 counts only own moves", func(t *testing.T) {
		board := stubBoard{ownMoves: 5, oppMoves: 2}
		require.Equal(t, 5.0, MovesCombined(1)(board, Player1))
	})

	t.Run("lost position scores -Inf", func(t *testing.T) {
		board := stubBoard{lost: true}
		require.Equal(t, math.Inf(-1), MovesCombined(0.5)(board, Player1))
	})

	t.Run("won position scores +Inf", func(t *testing.T) {
		board := stubBoard{won: true}
		require.Equal(t, math.Inf(1), MovesCombined(0.5)(board, Player1))
	})
}

func TestReferenceEvaluators(t *testing.T) {
	board := stubBoard{ownMoves: 5, oppMoves: 2}

	require.Equal(t, 5.0, OpenMoves(board, Player1))
	require.Equal(t, 3.0, ImprovedScore(board, Player1))
	require.Equal(t, 0.0, NullScore(board, Player1))

	lost := stubBoard{lost: true}
	require.Equal(t, math.Inf(-1), OpenMoves(lost, Player1))
	require.Equal(t, math.Inf(-1), ImprovedScore(lost, Player1))
	require.Equal(t, math.Inf(-1), NullScore(lost, Player1))
}

func TestRandomScore(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	evaluate := RandomScore(rng)
	board := stubBoard{ownMoves: 5, oppMoves: 2}

	for i := 0; i < 100; i++ {
		score := evaluate(board, Player1)
		require.GreaterOrEqual(t, score, 0.0)
		require.Less(t, score, 1.0)
	}

	require.Equal(t, math.Inf(1), evaluate(stubBoard{won: true}, Player1))
}
