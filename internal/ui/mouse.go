package ui

import (
	"chessforge/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// Board rendering constants for mouse coordinate calculation.
// These values are based on the renderGamePlay() layout in view.go:
// - Title with Padding(1, 0) = 3 lines, rows 0-2 (padding above, text, padding below)
// - "\n\n" after title: the first ends row 2, the second leaves blank row 3
// - Board starts at row 4 (0-indexed)
const (
	// boardStartY is the terminal row where the board's first rank (rank 8) is rendered.
	// Calculated from: title padding (1) + title text (1) + title padding (1) + 1 blank row = 4
	boardStartY = 4

	// boardStartXWithCoords is the column where the first piece starts when ShowCoords is true.
	// The rank label "8 " takes 2 characters.
	boardStartXWithCoords = 2

	// boardStartXNoCoords is the column where the first piece starts when ShowCoords is false.
	boardStartXNoCoords = 0

	// squareWidth is the width of each square in characters.
	// Each piece is followed by a space (except handled in rendering), so effectively 2 chars per square.
	squareWidth = 2
)

// squareFromMouse converts mouse coordinates to a chess square.
// Returns nil if the coordinates are outside the board.
//
// The calculation accounts for:
// - Board Y offset from title and spacing
// - Board X offset from rank labels (if ShowCoords is enabled)
// - Each square being 2 characters wide
// - Rank 8 at the top (y=0 relative to board), rank 1 at the bottom
func squareFromMouse(x, y int, config Config) *engine.Square {
	// Calculate board start X based on whether coordinates are shown
	boardStartX := boardStartXNoCoords
	if config.ShowCoords {
		boardStartX = boardStartXWithCoords
	}

	// Check if click is above or to the left of the board
	if x < boardStartX || y < boardStartY {
		return nil
	}

	// Calculate file (0-7) from X coordinate
	// Each square is squareWidth characters wide
	file := (x - boardStartX) / squareWidth

	// Calculate rank (0-7) from Y coordinate
	// Rank 8 (index 7) is at the top, rank 1 (index 0) is at the bottom
	rank := 7 - (y - boardStartY)

	// Validate file and rank are within bounds
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return nil
	}

	// Create and return the square
	sq := engine.NewSquare(file, rank)
	return &sq
}

// legalDestinations returns every square the piece on from can legally move to.
func legalDestinations(g *engine.Game, from engine.Square) []engine.Square {
	var dests []engine.Square
	for _, mv := range g.LegalMoves() {
		if mv.From == from {
			dests = append(dests, mv.To)
		}
	}
	return dests
}

// findLegalMove returns the legal move from `from` to `to`, preferring a
// queen promotion when more than one move matches (under-promotions are
// only reachable through text move input).
func findLegalMove(g *engine.Game, from, to engine.Square) (engine.Move, bool) {
	var best engine.Move
	found := false
	for _, mv := range g.LegalMoves() {
		if mv.From != from || mv.To != to {
			continue
		}
		if !found || mv.Promotion == engine.Queen {
			best = mv
			found = true
		}
	}
	return best, found
}

// handleMouseEvent processes mouse events during gameplay.
// It handles piece selection and move execution (click-to-select then
// click-to-move) for interactive game modes (PvP and PvBot).
// Returns the updated model and any commands to execute.
func (m Model) handleMouseEvent(msg tea.MouseMsg) (Model, tea.Cmd) {
	// Only process left mouse button clicks
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if m.game == nil || m.screen != ScreenGamePlay {
		return m, nil
	}

	// Convert mouse coordinates to chess square
	sq := squareFromMouse(msg.X, msg.Y, m.config)
	if sq == nil {
		// Click was outside the board, ignore
		return m, nil
	}

	// For PvBot games, only allow interaction when it's the human's turn
	if m.gameType == GameTypePvBot && m.game.SideToMove != m.userColor {
		return m, nil
	}

	piece := m.game.Board.PieceAt(*sq)

	// A piece is already selected: either move to the clicked square, switch
	// selection to a different own piece, or deselect.
	if m.selectedSquare != nil {
		if mv, ok := findLegalMove(m.game, *m.selectedSquare, *sq); ok {
			if err := m.game.ApplyMove(mv); err != nil {
				m.errorMsg = err.Error()
				return m, nil
			}
			m.moveHistory = append(m.moveHistory, mv)
			m.selectedSquare = nil
			m.validMoves = nil
			m.errorMsg = ""
			return m.afterMoveApplied()
		}

		if !piece.IsEmpty() && piece.Color() == m.game.SideToMove {
			m.selectedSquare = sq
			m.validMoves = legalDestinations(m.game, *sq)
			return m, nil
		}

		// Clicked an empty square or an opponent piece with no legal move
		// there: clear the selection.
		m.selectedSquare = nil
		m.validMoves = nil
		return m, nil
	}

	// No piece selected yet: select one if it belongs to the side to move.
	if !piece.IsEmpty() && piece.Color() == m.game.SideToMove {
		m.selectedSquare = sq
		m.validMoves = legalDestinations(m.game, *sq)
	}

	return m, nil
}
