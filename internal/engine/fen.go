package engine

import (
	"strconv"
	"strings"
)

// ParseFEN builds a Game from a FEN (Forsyth-Edwards Notation) string:
// <pieces> <active> <castling> <ep> <halfmove> <fullmove>, e.g.
// "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1" (spec 7 FEN
// import/export, spec 8 property 3 round-trip). Grounded on the teacher's
// FromFEN, adapted to build a Game rather than a bare Board and to seed
// the repetition table.
func ParseFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &MalformedFENError{Reason: "expected 6 space-separated fields"}
	}

	b := NewEmptyBoard()

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, &MalformedFENError{Reason: "piece placement must have 8 ranks"}
	}

	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		rank := 7 - rankIdx
		file := 0
		for _, ch := range ranks[rankIdx] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return nil, &MalformedFENError{Reason: "too many pieces in a rank"}
			}
			color := White
			if ch >= 'a' && ch <= 'z' {
				color = Black
				ch -= 'a' - 'A'
			}
			var kind PieceType
			switch ch {
			case 'P':
				kind = Pawn
			case 'N':
				kind = Knight
			case 'B':
				kind = Bishop
			case 'R':
				kind = Rook
			case 'Q':
				kind = Queen
			case 'K':
				kind = King
			default:
				return nil, &MalformedFENError{Reason: "invalid piece character " + string(ch)}
			}
			if err := b.Place(NewSquare(file, rank), NewPiece(color, kind)); err != nil {
				return nil, err
			}
			file++
		}
		if file != 8 {
			return nil, &MalformedFENError{Reason: "rank does not sum to 8 files"}
		}
	}
	b.initialized = true

	var sideToMove Color
	switch parts[1] {
	case "w":
		sideToMove = White
	case "b":
		sideToMove = Black
	default:
		return nil, &MalformedFENError{Reason: "active color must be 'w' or 'b'"}
	}

	if parts[2] != "-" {
		for _, ch := range parts[2] {
			switch ch {
			case 'K':
				b.CastlingRights |= CastleWhiteKing
			case 'Q':
				b.CastlingRights |= CastleWhiteQueen
			case 'k':
				b.CastlingRights |= CastleBlackKing
			case 'q':
				b.CastlingRights |= CastleBlackQueen
			default:
				return nil, &MalformedFENError{Reason: "invalid castling character " + string(ch)}
			}
		}
	}

	enPassant := NoSquare
	if parts[3] != "-" {
		sq, err := ParseSquareStr(parts[3])
		if err != nil {
			return nil, &MalformedFENError{Reason: "invalid en passant square " + parts[3]}
		}
		enPassant = sq
	}

	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 {
		return nil, &MalformedFENError{Reason: "invalid half-move clock " + parts[4]}
	}

	fullMove, err := strconv.Atoi(parts[5])
	if err != nil || fullMove < 1 {
		return nil, &MalformedFENError{Reason: "invalid full move number " + parts[5]}
	}

	g := &Game{
		Board:           b,
		SideToMove:      sideToMove,
		HalfMoveClock:   halfMove,
		FullMoveNumber:  fullMove,
		EnPassantSquare: enPassant,
		MoveHistory:     map[int]*MoveRecord{},
		RepetitionTable: map[uint64]int{},
	}
	g.CurrentHash = g.ComputeHash()
	g.RepetitionTable[g.CurrentHash] = 1
	g.updateTerminalState(g.SideToMove)
	return g, nil
}

// ToFEN renders the game's current position back into FEN, the inverse of
// ParseFEN (spec 8 property 3: "parse(export(G)) reproduces an
// equivalent state"). Castling rights, en-passant target, and both clocks
// round-trip exactly; move history and repetition counts do not, since
// FEN has no field for them.
func (g *Game) ToFEN() string {
	var ranks [8]string
	for rank := 7; rank >= 0; rank-- {
		var sb strings.Builder
		empty := 0
		for file := 0; file < 8; file++ {
			p := g.Board.Squares[NewSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := p.Type().Letter()
			if p.Color() == White {
				sb.WriteString(strings.ToUpper(letter))
			} else {
				sb.WriteString(strings.ToLower(letter))
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		ranks[7-rank] = sb.String()
	}
	placement := strings.Join(ranks[:], "/")

	active := "w"
	if g.SideToMove == Black {
		active = "b"
	}

	castling := ""
	if g.Board.CastlingRights&CastleWhiteKing != 0 {
		castling += "K"
	}
	if g.Board.CastlingRights&CastleWhiteQueen != 0 {
		castling += "Q"
	}
	if g.Board.CastlingRights&CastleBlackKing != 0 {
		castling += "k"
	}
	if g.Board.CastlingRights&CastleBlackQueen != 0 {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}

	ep := "-"
	if g.EnPassantSquare.IsValid() {
		ep = g.EnPassantSquare.String()
	}

	return strings.Join([]string{
		placement,
		active,
		castling,
		ep,
		strconv.Itoa(g.HalfMoveClock),
		strconv.Itoa(g.FullMoveNumber),
	}, " ")
}
