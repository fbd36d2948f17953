package engine

import "fmt"

// MovePhase identifies which stage of the move pipeline rejected a token.
type MovePhase string

const (
	// PhaseParse means the token itself could not be parsed.
	PhaseParse MovePhase = "parse"
	// PhaseResolve means no legal piece matched the parsed token.
	PhaseResolve MovePhase = "resolve"
	// PhaseExecute means the move passed resolution but failed to apply.
	PhaseExecute MovePhase = "execute"
)

// InvalidMoveError reports that a move token could not be parsed or
// resolved to a legal move, tagged with the pipeline phase that rejected it.
type InvalidMoveError struct {
	Token string
	Phase MovePhase
	Err   error
}

func (e *InvalidMoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid move %q at %s: %v", e.Token, e.Phase, e.Err)
	}
	return fmt.Sprintf("invalid move %q at %s", e.Token, e.Phase)
}

func (e *InvalidMoveError) Unwrap() error { return e.Err }

// BoardAlreadyInitializedError reports that setup was invoked twice on the
// same board.
type BoardAlreadyInitializedError struct{}

func (e *BoardAlreadyInitializedError) Error() string {
	return "board is already initialized"
}

// KingAlreadyOnBoardError reports an attempt to place a second king of the
// same color.
type KingAlreadyOnBoardError struct {
	Color Color
}

func (e *KingAlreadyOnBoardError) Error() string {
	return fmt.Sprintf("%s king is already on the board", e.Color)
}

// SpaceAlreadyOccupiedError reports an attempt to place a piece on an
// occupied square without an explicit override.
type SpaceAlreadyOccupiedError struct {
	Square Square
}

func (e *SpaceAlreadyOccupiedError) Error() string {
	return fmt.Sprintf("square %s is already occupied", e.Square)
}

// MalformedFENError reports that a FEN string does not have six
// whitespace-separated fields or a field violates its grammar.
type MalformedFENError struct {
	Reason string
}

func (e *MalformedFENError) Error() string {
	return "malformed FEN: " + e.Reason
}

// GameOverError reports an attempt to move or resolve a token after the
// game has already reached a terminal state.
type GameOverError struct{}

func (e *GameOverError) Error() string { return "game is already over" }

// SearchError reports that forced-mate recursion or MCTS expansion
// encountered an inconsistent state, e.g. move generation disagreeing with
// application. Callers are expected to log it and skip the iteration
// rather than abort the whole search.
type SearchError struct {
	Context string
	Err     error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search error (%s): %v", e.Context, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }
