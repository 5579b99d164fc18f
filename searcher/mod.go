package searcher

import (
	"errors"
	"fmt"

	"isolation/game"
)

// Method names a search algorithm.
type Method string

const (
	Minimax   Method = "minimax"
	AlphaBeta Method = "alphabeta"
)

// Result pairs a branch score with the move that leads to it. Move is
// game.NoMove when the scored position has no legal moves.
type Result struct {
	Score float64
	Move  game.Move
}

// ErrAborted signals that the clock crossed the timeout threshold mid-search.
// It carries no payload and unwinds the whole recursion; the driver absorbs
// it and falls back to the last fully completed depth.
var ErrAborted = errors.New("search aborted")

// UnsupportedMethodError is a fatal configuration error: the agent was asked
// to search with a method it does not implement.
type UnsupportedMethodError struct {
	Method Method
}

func (e UnsupportedMethodError) Error() string {
	return fmt.Sprintf("method %q not supported", string(e.Method))
}
