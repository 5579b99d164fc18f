package game

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when a player has no legal move available.
var NoMove = Move{Row: -1, Col: -1}

// PlayerHandle identifies one of the two players in a game.
type PlayerHandle int

const (
	Player1 PlayerHandle = 1
	Player2 PlayerHandle = 2
)

// Board should be immutable - Forecast always returns a new copy
type Board interface {
	// LegalMoves lists the moves available to the given player.
	LegalMoves(player PlayerHandle) []Move
	// Forecast applies the side to move's move and returns the resulting board.
	Forecast(move Move) Board
	HasWon(player PlayerHandle) bool
	HasLost(player PlayerHandle) bool
	OpponentOf(player PlayerHandle) PlayerHandle
}

// Clock reports the time remaining (in milliseconds) in the current turn.
// It is supplied per move by whoever runs the game, never owned by the search.
type Clock func() float64

// Evaluate scores a board from the given player's perspective. Positive is
// favorable; decided positions score +Inf (won) or -Inf (lost). Must be pure.
type Evaluate func(board Board, player PlayerHandle) float64
