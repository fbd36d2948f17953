package engine

import (
	"errors"
	"fmt"
)

// Move represents a fully-resolved chess move, including the special-move
// flags Game needs to execute it (spec 4.4 step 4: castling is two coupled
// moves, promotion replaces the pawn, en passant removes a pawn that isn't
// on the destination square).
type Move struct {
	From      Square    // Source square
	To        Square    // Destination square
	Promotion PieceType // Promotion piece type (Empty if not a promotion)
	Piece     PieceType // Kind of the piece being moved (set by the generator)

	IsCapture   bool
	IsEnPassant bool
	IsCastle    bool
	CastleSide  RookSide // valid only when IsCastle
}

// ParseMove parses a move from coordinate notation (e.g., "e2e4", "a7a8q").
// Format: from_file, from_rank, to_file, to_rank + optional promotion char.
// Promotion chars: q=Queen, r=Rook, b=Bishop, n=Knight (lowercase).
func ParseMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, errors.New("invalid move format: expected 4-5 characters")
	}

	fromFile := int(s[0] - 'a')
	fromRank := int(s[1] - '1')
	if fromFile < 0 || fromFile > 7 || fromRank < 0 || fromRank > 7 {
		return Move{}, fmt.Errorf("invalid from square: %s", s[0:2])
	}

	toFile := int(s[2] - 'a')
	toRank := int(s[3] - '1')
	if toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
		return Move{}, fmt.Errorf("invalid to square: %s", s[2:4])
	}

	from := NewSquare(fromFile, fromRank)
	to := NewSquare(toFile, toRank)

	promotion := Empty
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promotion = Queen
		case 'r':
			promotion = Rook
		case 'b':
			promotion = Bishop
		case 'n':
			promotion = Knight
		default:
			return Move{}, fmt.Errorf("invalid promotion character: %c", s[4])
		}
	}

	return Move{From: from, To: to, Promotion: promotion}, nil
}

// String returns the move in coordinate notation (e.g., "e2e4", "a7a8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		switch m.Promotion {
		case Queen:
			s += "q"
		case Rook:
			s += "r"
		case Bishop:
			s += "b"
		case Knight:
			s += "n"
		}
	}
	return s
}
