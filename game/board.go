package game

// Knight-style move offsets shared by both players.
var directions = []Move{
	{Row: -2, Col: -1}, {Row: -2, Col: 1},
	{Row: -1, Col: -2}, {Row: -1, Col: 2},
	{Row: 1, Col: -2}, {Row: 1, Col: 2},
	{Row: 2, Col: -1}, {Row: 2, Col: 1},
}

// IsolationBoard is a two-player knight-move isolation game. Every cell a
// piece lands on stays blocked for the rest of the game; a player who has no
// move on their turn loses. Before a piece is placed, every blank cell is a
// legal move for it.
type IsolationBoard struct {
	Width   int
	Height  int
	Blocked []bool // Blocked cells, indexed by row*Width+col
	Pieces  map[PlayerHandle]Move
	Active  PlayerHandle // The side to move
}

// NewIsolationBoard returns an empty width x height board with Player1 to move.
func NewIsolationBoard(width, height int) *IsolationBoard {
	return &IsolationBoard{
		Width:   width,
		Height:  height,
		Blocked: make([]bool, width*height),
		Pieces: map[PlayerHandle]Move{
			Player1: NoMove,
			Player2: NoMove,
		},
		Active: Player1,
	}
}

func (b *IsolationBoard) Copy() *IsolationBoard {
	blockedCopy := make([]bool, len(b.Blocked))
	copy(blockedCopy, b.Blocked)

	piecesCopy := make(map[PlayerHandle]Move, len(b.Pieces))
	for player, pos := range b.Pieces {
		piecesCopy[player] = pos
	}

	return &IsolationBoard{
		Width:   b.Width,
		Height:  b.Height,
		Blocked: blockedCopy,
		Pieces:  piecesCopy,
		Active:  b.Active,
	}
}

// LegalMoves lists the open cells the given player can reach. An unplaced
// piece may enter any blank cell.
func (b *IsolationBoard) LegalMoves(player PlayerHandle) []Move {
	pos := b.Pieces[player]
	if pos == NoMove {
		moves := []Move{}
		for row := 0; row < b.Height; row++ {
			for col := 0; col < b.Width; col++ {
				if !b.Blocked[row*b.Width+col] {
					moves = append(moves, Move{Row: row, Col: col})
				}
			}
		}
		return moves
	}

	moves := []Move{}
	for _, d := range directions {
		move := Move{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
		if b.isOpen(move) {
			moves = append(moves, move)
		}
	}
	return moves
}

// Forecast applies the side to move's move and returns the resulting board.
// The receiver is never modified.
func (b *IsolationBoard) Forecast(move Move) Board {
	next := b.Copy()
	next.Blocked[move.Row*b.Width+move.Col] = true
	next.Pieces[b.Active] = move
	next.Active = b.OpponentOf(b.Active)
	return next
}

// HasLost reports whether the player is to move and has no legal move left.
func (b *IsolationBoard) HasLost(player PlayerHandle) bool {
	return b.Active == player && len(b.LegalMoves(player)) == 0
}

func (b *IsolationBoard) HasWon(player PlayerHandle) bool {
	return b.HasLost(b.OpponentOf(player))
}

func (b *IsolationBoard) OpponentOf(player PlayerHandle) PlayerHandle {
	if player == Player1 {
		return Player2
	}
	return Player1
}

func (b *IsolationBoard) isOpen(move Move) bool {
	return move.Row >= 0 && move.Row < b.Height &&
		move.Col >= 0 && move.Col < b.Width &&
		!b.Blocked[move.Row*b.Width+move.Col]
}
