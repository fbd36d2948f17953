package engine

import (
	"strings"
)

// parsedToken is the intermediate form of spec 6's move grammar:
// "O-O"/"O-O-O", or "<Kind><dis?><x?><square>[=<Kind>][+|#]" with the pawn
// kind letter optional. Grounded on the teacher's internal/ui/san.go,
// generalized from pawn-only to every piece kind plus castling.
type parsedToken struct {
	IsCastle   bool
	CastleSide RookSide

	Kind       PieceType
	DisFile    int // -1 if absent
	DisRank    int // -1 if absent
	IsCapture  bool
	Target     Square
	Promotion  PieceType // Empty if absent
}

// parseToken parses a single relaxed-algebraic move token (spec 6).
// Check/checkmate markers (+, #) are accepted and ignored, never a reason
// to reject an otherwise well-formed token.
func parseToken(raw string) (parsedToken, error) {
	s := strings.TrimSuffix(strings.TrimSuffix(raw, "+"), "#")
	if s == "" {
		return parsedToken{}, &InvalidMoveError{Token: raw, Phase: PhaseParse}
	}

	switch s {
	case "O-O", "0-0":
		return parsedToken{IsCastle: true, CastleSide: KingSide}, nil
	case "O-O-O", "0-0-0":
		return parsedToken{IsCastle: true, CastleSide: QueenSide}, nil
	}

	promotion := Empty
	body := s
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		if idx+1 >= len(s) {
			return parsedToken{}, &InvalidMoveError{Token: raw, Phase: PhaseParse}
		}
		p, err := promotionFromChar(s[idx+1])
		if err != nil {
			return parsedToken{}, &InvalidMoveError{Token: raw, Phase: PhaseParse, Err: err}
		}
		promotion = p
		body = s[:idx]
	}

	kind := Pawn
	if len(body) > 0 && isKindLetter(body[0]) {
		kind = kindFromChar(body[0])
		body = body[1:]
	}

	isCapture := strings.Contains(body, "x")
	body = strings.ReplaceAll(body, "x", "")

	if len(body) < 2 {
		return parsedToken{}, &InvalidMoveError{Token: raw, Phase: PhaseParse}
	}
	targetStr := body[len(body)-2:]
	disambig := body[:len(body)-2]

	target, err := ParseSquareStr(targetStr)
	if err != nil {
		return parsedToken{}, &InvalidMoveError{Token: raw, Phase: PhaseParse, Err: err}
	}

	disFile, disRank := -1, -1
	for _, ch := range disambig {
		switch {
		case ch >= 'a' && ch <= 'h':
			disFile = int(ch - 'a')
		case ch >= '1' && ch <= '8':
			disRank = int(ch - '1')
		default:
			return parsedToken{}, &InvalidMoveError{Token: raw, Phase: PhaseParse}
		}
	}

	return parsedToken{
		Kind:      kind,
		DisFile:   disFile,
		DisRank:   disRank,
		IsCapture: isCapture,
		Target:    target,
		Promotion: promotion,
	}, nil
}

func isKindLetter(c byte) bool {
	switch c {
	case 'N', 'B', 'R', 'Q', 'K':
		return true
	}
	return false
}

func kindFromChar(c byte) PieceType {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return Empty
}

func promotionFromChar(c byte) (PieceType, error) {
	switch c {
	case 'Q', 'q':
		return Queen, nil
	case 'R', 'r':
		return Rook, nil
	case 'B', 'b':
		return Bishop, nil
	case 'N', 'n':
		return Knight, nil
	}
	return Empty, &MalformedFENError{Reason: "invalid promotion letter"}
}

// resolve matches a parsedToken against the legal moves available to
// color, applying disambiguation and capture/promotion hints (spec 4.4
// step 2). Exactly one candidate must remain, or the token is rejected
// with InvalidMoveError at the "resolve" phase.
func resolve(g *Game, raw string, tok parsedToken) (Move, error) {
	legal := g.LegalMoves()

	if tok.IsCastle {
		for _, mv := range legal {
			if mv.IsCastle && mv.CastleSide == tok.CastleSide {
				return mv, nil
			}
		}
		return Move{}, &InvalidMoveError{Token: raw, Phase: PhaseResolve}
	}

	var candidates []Move
	for _, mv := range legal {
		if mv.Piece != tok.Kind || mv.To != tok.Target {
			continue
		}
		if tok.DisFile >= 0 && mv.From.File() != tok.DisFile {
			continue
		}
		if tok.DisRank >= 0 && mv.From.Rank() != tok.DisRank {
			continue
		}
		if tok.Promotion != Empty && mv.Promotion != tok.Promotion {
			continue
		}
		candidates = append(candidates, mv)
	}

	if len(candidates) == 0 {
		return Move{}, &InvalidMoveError{Token: raw, Phase: PhaseResolve}
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	// Multiple promotion choices with no promotion specified: default to
	// queen, matching how most relaxed notations treat a bare promoting
	// move (spec 6 lists promotion as optional even though the rules
	// mandate a replacement piece).
	if tok.Promotion == Empty {
		for _, mv := range candidates {
			if mv.Promotion == Queen {
				return mv, nil
			}
		}
	}

	return Move{}, &InvalidMoveError{Token: raw, Phase: PhaseResolve}
}

// SAN renders mv in standard algebraic notation relative to the position
// it is about to be played in (g must not have applied mv yet). This is
// the inverse of parseToken/resolve — a supplemented feature (not in
// spec.md, added per SPEC_FULL.md section 6) grounded on the teacher's
// ui/san.go parser and the Python original's PGN debugger output.
func (g *Game) SAN(mv Move) string {
	if mv.IsCastle {
		if mv.CastleSide == KingSide {
			return appendCheckSuffix(g, mv, "O-O")
		}
		return appendCheckSuffix(g, mv, "O-O-O")
	}

	var b strings.Builder
	if mv.Piece != Pawn {
		b.WriteString(mv.Piece.Letter())
		b.WriteString(disambiguation(g, mv))
	} else if mv.IsCapture {
		b.WriteByte(byte('a' + mv.From.File()))
	}
	if mv.IsCapture {
		b.WriteByte('x')
	}
	b.WriteString(mv.To.String())
	if mv.Promotion != Empty {
		b.WriteByte('=')
		b.WriteString(mv.Promotion.Letter())
	}
	return appendCheckSuffix(g, mv, b.String())
}

// disambiguation returns the minimal file/rank/both prefix needed to
// distinguish mv from other legal moves of the same kind to the same
// square.
func disambiguation(g *Game, mv Move) string {
	var sameFile, sameRank, ambiguous bool
	for _, other := range g.LegalMoves() {
		if other.Piece != mv.Piece || other.To != mv.To || other.From == mv.From {
			continue
		}
		ambiguous = true
		if other.From.File() == mv.From.File() {
			sameFile = true
		}
		if other.From.Rank() == mv.From.Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return string(byte('a' + mv.From.File()))
	case !sameRank:
		return string(byte('1' + mv.From.Rank()))
	default:
		return mv.From.String()
	}
}

func appendCheckSuffix(g *Game, mv Move, san string) string {
	clone := g.Clone()
	if err := clone.ApplyMove(mv); err != nil {
		return san
	}
	if !clone.Board.InCheck(clone.SideToMove) {
		return san
	}
	if len(clone.LegalMoves()) == 0 {
		return san + "#"
	}
	return san + "+"
}
