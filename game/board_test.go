package game

import (
	"testing"

	"isolation/utils"

	"github.com/stretchr/testify/require"
)

func TestIsolationBoardLegalMoves(t *testing.T) {
	t.Run("unplaced piece may enter any blank cell", func(t *testing.T) {
		board := NewIsolationBoard(7, 7)

		moves := board.LegalMoves(Player1)

		require.Len(t, moves, 49, "Every cell is open on an empty board")
	})

	t.Run("unplaced piece may not enter an occupied cell", func(t *testing.T) {
		board := NewIsolationBoard(7, 7).Forecast(Move{Row: 3, Col: 3})

		moves := board.LegalMoves(Player2)

		require.Len(t, moves, 48)
		require.False(t, utils.Contains(moves, Move{Row: 3, Col: 3}))
	})

	t.Run("placed piece moves like a knight", func(t *testing.T) {
		board := NewIsolationBoard(7, 7).Forecast(Move{Row: 3, Col: 3})

		moves := board.LegalMoves(Player1)

		want := []Move{
			{Row: 1, Col: 2}, {Row: 1, Col: 4},
			{Row: 2, Col: 1}, {Row: 2, Col: 5},
			{Row: 4, Col: 1}, {Row: 4, Col: 5},
			{Row: 5, Col: 2}, {Row: 5, Col: 4},
		}
		require.ElementsMatch(t, want, moves)
	})

	t.Run("corner placement clips moves to the board", func(t *testing.T) {
		board := NewIsolationBoard(7, 7).Forecast(Move{Row: 0, Col: 0})

		moves := board.LegalMoves(Player1)

		want := []Move{{Row: 1, Col: 2}, {Row: 2, Col: 1}}
		require.ElementsMatch(t, want, moves)
	})

	t.Run("visited cells stay blocked", func(t *testing.T) {
		board := NewIsolationBoard(7, 7).Forecast(Move{Row: 3, Col: 3}) // Player1
		board = board.Forecast(Move{Row: 1, Col: 2})                   // Player2 takes one of Player1's targets

		moves := board.LegalMoves(Player1)

		require.Len(t, moves, 7)
		require.False(t, utils.Contains(moves, Move{Row: 1, Col: 2}))
	})
}

func TestIsolationBoardForecast(t *testing.T) {
	t.Run("never mutates the receiver", func(t *testing.T) {
		board := NewIsolationBoard(7, 7)

		next := board.Forecast(Move{Row: 3, Col: 3})

		require.Len(t, board.LegalMoves(Player1), 49, "Original board must stay untouched")
		require.Len(t, next.LegalMoves(Player2), 48)
		require.Equal(t, NoMove, board.Pieces[Player1])
	})

	t.Run("alternates the side to move", func(t *testing.T) {
		board := NewIsolationBoard(7, 7)
		require.Equal(t, Player1, board.Active)

		next := board.Forecast(Move{Row: 0, Col: 0}).(*IsolationBoard)
		require.Equal(t, Player2, next.Active)

		last := next.Forecast(Move{Row: 5, Col: 5}).(*IsolationBoard)
		require.Equal(t, Player1, last.Active)
	})
}

func TestIsolationBoardTerminal(t *testing.T) {
	// Trap Player1 in a corner: on a 3x3 board a piece at (0,0) has targets
	// (1,2) and (2,1); block both and hand Player1 the turn.
	board := NewIsolationBoard(3, 3)
	board = board.Forecast(Move{Row: 0, Col: 0}).(*IsolationBoard) // Player1
	board = board.Forecast(Move{Row: 1, Col: 2}).(*IsolationBoard) // Player2
	board.Blocked[2*3+1] = true                                    // Block (2,1) directly
	require.Equal(t, Player1, board.Active)

	require.Empty(t, board.LegalMoves(Player1))
	require.True(t, board.HasLost(Player1), "The trapped mover has lost")
	require.True(t, board.HasWon(Player2))
	require.False(t, board.HasLost(Player2), "Only the side to move can be isolated")
	require.False(t, board.HasWon(Player1))
}

func TestOpponentOf(t *testing.T) {
	board := NewIsolationBoard(7, 7)
	require.Equal(t, Player2, board.OpponentOf(Player1))
	require.Equal(t, Player1, board.OpponentOf(Player2))
}

