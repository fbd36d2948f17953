package engine

// GameStatus represents the current state of a chess game.
type GameStatus int

const (
	// Ongoing indicates the game is still in progress.
	Ongoing GameStatus = iota

	// Checkmate indicates the player to move is in checkmate.
	// The opponent wins.
	Checkmate

	// Stalemate indicates the player to move has no legal moves
	// but is not in check. The game is a draw.
	Stalemate

	// DrawInsufficientMaterial indicates a draw due to insufficient
	// material to checkmate (e.g., King vs King, King+Bishop vs King).
	DrawInsufficientMaterial

	// DrawFiftyMoveRule indicates a draw under the fifty-move rule (50 moves
	// without pawn move or capture); Game ends the game automatically.
	DrawFiftyMoveRule

	// DrawSeventyFiveMoveRule indicates an automatic draw under the
	// seventy-five-move rule (75 moves without pawn move or capture).
	DrawSeventyFiveMoveRule

	// DrawThreefoldRepetition indicates a draw due to threefold repetition
	// of the position; Game ends the game automatically.
	DrawThreefoldRepetition

	// DrawFivefoldRepetition indicates an automatic draw due to
	// fivefold repetition of the position.
	DrawFivefoldRepetition
)

// String returns a human-readable string representation of the game status.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	case DrawFiftyMoveRule:
		return "draw (fifty-move rule)"
	case DrawSeventyFiveMoveRule:
		return "draw (seventy-five-move rule)"
	case DrawThreefoldRepetition:
		return "draw (threefold repetition)"
	case DrawFivefoldRepetition:
		return "draw (fivefold repetition)"
	default:
		return "unknown"
	}
}

// Status returns the game's current status. A terminated game (Terminal !=
// Running) reports its cached DrawReason directly — that field is set by
// updateTerminalState (called from both ApplyMove and ParseFEN) at the one
// point the legal-move count and repetition/clock state are known, and
// g.LegalMoves() itself returns nil once a game IsTerminated, so recomputing
// from it here would misreport every non-checkmate terminal draw as
// Stalemate. For a still-running game, Status recomputes live so callers can
// query it between moves (e.g. to preview an imminent 75-move/fivefold
// threshold) without forcing a move to be applied first.
func (g *Game) Status() GameStatus {
	if g.IsTerminated() {
		return g.DrawReason
	}
	if len(g.LegalMoves()) == 0 {
		if g.Board.InCheck(g.SideToMove) {
			return Checkmate
		}
		return Stalemate
	}
	if g.HalfMoveClock >= 150 {
		return DrawSeventyFiveMoveRule
	}
	if g.HalfMoveClock >= 100 {
		return DrawFiftyMoveRule
	}
	if count := g.RepetitionTable[g.CurrentHash]; count >= 5 {
		return DrawFivefoldRepetition
	} else if count >= 3 {
		return DrawThreefoldRepetition
	}
	if g.Board.HasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	return Ongoing
}

// IsGameOver returns true if the game has ended (checkmate, stalemate, or draw).
func (g *Game) IsGameOver() bool {
	return g.Status() != Ongoing
}
