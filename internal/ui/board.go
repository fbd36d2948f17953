package ui

import (
	"fmt"
	"strings"

	"chessforge/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

// BoardRenderer is responsible for rendering the chess board to the terminal.
// It uses the Config to determine how to display pieces and coordinates, and
// an optional Theme to color squares, pieces, and selection highlights.
type BoardRenderer struct {
	config Config
	theme  Theme
}

// NewBoardRenderer creates a new BoardRenderer with the given configuration
// and the classic theme.
func NewBoardRenderer(config Config) *BoardRenderer {
	return &BoardRenderer{
		config: config,
		theme:  GetTheme(ThemeClassic),
	}
}

// NewBoardRendererWithTheme creates a new BoardRenderer using the given
// configuration and theme.
func NewBoardRendererWithTheme(config Config, theme Theme) *BoardRenderer {
	return &BoardRenderer{
		config: config,
		theme:  theme,
	}
}

// Render renders the chess board as a string.
// The board is displayed from White's perspective (rank 8 at top, rank 1 at bottom).
// If the board is nil, returns an error message.
func (r *BoardRenderer) Render(b *engine.Board) string {
	return r.render(b, nil, nil, false)
}

// RenderWithSelection renders the board and, when blinkOn is true, highlights
// the currently selected square and its legal destination squares; with
// blinkOn false nothing is highlighted. Pass a nil selected square to render plainly.
func (r *BoardRenderer) RenderWithSelection(b *engine.Board, selected *engine.Square, validMoves []engine.Square, blinkOn bool) string {
	return r.render(b, selected, validMoves, blinkOn)
}

func (r *BoardRenderer) render(b *engine.Board, selected *engine.Square, validMoves []engine.Square, blinkOn bool) string {
	if b == nil {
		return "No board available"
	}

	var result strings.Builder

	// Render each rank from 8 down to 1 (from White's perspective)
	for rank := 7; rank >= 0; rank-- {
		// Show rank number if coordinates are enabled
		if r.config.ShowCoords {
			result.WriteString(fmt.Sprintf("%d ", rank+1))
		}

		// Render pieces for this rank (files a-h, which are 0-7)
		for file := 0; file < 8; file++ {
			sq := engine.NewSquare(file, rank)
			piece := b.PieceAt(sq)
			symbol := r.pieceSymbol(piece)

			if blinkOn && r.isHighlighted(sq, selected, validMoves) {
				highlightColor := r.theme.ValidMoveHighlight
				if selected != nil && sq == *selected {
					highlightColor = r.theme.SelectedHighlight
				}
				symbol = lipgloss.NewStyle().Foreground(highlightColor).Bold(true).Render(symbol)
			}

			// Add spacing between pieces for readability
			if file > 0 {
				result.WriteString(" ")
			}

			result.WriteString(symbol)
		}

		result.WriteString("\n")
	}

	// Show file labels at the bottom if coordinates are enabled
	if r.config.ShowCoords {
		result.WriteString("  ") // Indent to align with rank numbers
		result.WriteString("a b c d e f g h")
	}

	return result.String()
}

// isHighlighted reports whether sq is the selected square or one of its
// legal destination squares.
func (r *BoardRenderer) isHighlighted(sq engine.Square, selected *engine.Square, validMoves []engine.Square) bool {
	if selected != nil && sq == *selected {
		return true
	}
	for _, dest := range validMoves {
		if dest == sq {
			return true
		}
	}
	return false
}

// pieceSymbol returns the symbol to use for the given piece.
// For ASCII mode, returns uppercase for white pieces, lowercase for black pieces.
// For Unicode mode, returns the Unicode chess glyph for the piece.
func (r *BoardRenderer) pieceSymbol(p engine.Piece) string {
	if p.IsEmpty() {
		if r.config.UseUnicode {
			return "·"
		}
		return "."
	}

	var symbol string

	if r.config.UseUnicode {
		symbol = r.unicodeSymbol(p)
	} else {
		symbol = r.asciiSymbol(p)
	}

	// Apply colors if enabled
	if r.config.UseColors {
		return r.colorSymbol(symbol, p)
	}

	return symbol
}

// asciiSymbol returns the ASCII character for the given piece.
// White pieces are uppercase (P, N, B, R, Q, K).
// Black pieces are lowercase (p, n, b, r, q, k).
func (r *BoardRenderer) asciiSymbol(p engine.Piece) string {
	pieceType := p.Type()
	color := p.Color()

	var ch byte
	switch pieceType {
	case engine.Pawn:
		ch = 'P'
	case engine.Knight:
		ch = 'N'
	case engine.Bishop:
		ch = 'B'
	case engine.Rook:
		ch = 'R'
	case engine.Queen:
		ch = 'Q'
	case engine.King:
		ch = 'K'
	default:
		return "."
	}

	// Convert to lowercase for black pieces
	if color == engine.Black {
		ch = ch - 'A' + 'a'
	}

	return string(ch)
}

// unicodeWhiteSymbols and unicodeBlackSymbols map piece types to their
// Unicode chess glyph, indexed by engine.PieceType.
var unicodeWhiteSymbols = map[engine.PieceType]string{
	engine.Pawn:   "♙",
	engine.Knight: "♘",
	engine.Bishop: "♗",
	engine.Rook:   "♖",
	engine.Queen:  "♕",
	engine.King:   "♔",
}

var unicodeBlackSymbols = map[engine.PieceType]string{
	engine.Pawn:   "♟",
	engine.Knight: "♞",
	engine.Bishop: "♝",
	engine.Rook:   "♜",
	engine.Queen:  "♛",
	engine.King:   "♚",
}

// unicodeSymbol returns the Unicode chess symbol for the given piece.
func (r *BoardRenderer) unicodeSymbol(p engine.Piece) string {
	symbols := unicodeWhiteSymbols
	if p.Color() == engine.Black {
		symbols = unicodeBlackSymbols
	}
	if symbol, ok := symbols[p.Type()]; ok {
		return symbol
	}
	return r.asciiSymbol(p)
}

// colorSymbol applies color styling to a piece symbol using lipgloss.
func (r *BoardRenderer) colorSymbol(symbol string, p engine.Piece) string {
	if p.Color() == engine.White {
		style := lipgloss.NewStyle().Foreground(r.theme.WhitePiece).Bold(true)
		return style.Render(symbol)
	}
	style := lipgloss.NewStyle().Foreground(r.theme.BlackPiece)
	return style.Render(symbol)
}
