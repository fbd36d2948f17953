package engine

// LegalMoves returns every legal move for color in the given position,
// with enPassant the current en-passant target square (NoSquare if none).
// This is the spec 4.4 "legal_moves" operation and the filter every other
// move-application path (Move(), castling, check/mate detection) builds
// on: pseudo-legal generation, pin filtering, check evasion, and king
// safety (including castling) per spec 4.1 and 4.4.
func LegalMoves(b *Board, color Color, enPassant Square) []Move {
	var moves []Move
	opp := color.Opposite()
	kingSq := b.KingSquare(color)
	attackers := b.AttackersOf(kingSq, opp)
	doubleCheck := len(attackers) > 1

	for from := Square(0); from < 64; from++ {
		p := b.Squares[from]
		if p.IsEmpty() || p.Color() != color {
			continue
		}

		if p.Type() == King {
			moves = append(moves, kingMoves(b, from, color, opp)...)
			continue
		}

		if doubleCheck {
			continue // only the king may move out of a double check
		}

		dests := pseudoLegalDestinations(b, from)
		if p.Type() == Pawn && enPassant.IsValid() {
			if epDest := enPassantDestination(from, enPassant, color); epDest != NoSquare && enPassantKingSafe(b, from, epDest, color) {
				dests = append(dests, epDest)
			}
		}

		pin := checkPin(b, from, color)
		if len(attackers) == 1 {
			evasion := evasionSquares(attackers[0], kingSq, b)
			dests = filterSquares(dests, func(sq Square) bool {
				if pin.Pinned && !pin.Allowed[sq] {
					return false
				}
				return evasion[sq]
			})
		} else if pin.Pinned {
			dests = filterSquares(dests, func(sq Square) bool { return pin.Allowed[sq] })
		}

		moves = append(moves, buildMoves(b, from, p.Type(), dests, enPassant)...)
	}

	moves = append(moves, castlingMoves(b, color, len(attackers) > 0)...)
	return moves
}

// enPassantDestination returns the capture destination square for a pawn
// on `from` given the en-passant target square, or NoSquare if this pawn
// cannot make that capture (wrong file adjacency / wrong rank).
func enPassantDestination(from, target Square, color Color) Square {
	dir := 1
	if color == Black {
		dir = -1
	}
	if from.Rank()+dir != target.Rank() {
		return NoSquare
	}
	if abs(from.File()-target.File()) != 1 {
		return NoSquare
	}
	return target
}

// enPassantKingSafe reports whether capturing en passant from `from` to
// `epDest` leaves color's own king safe. The captured pawn sits on neither
// `from` nor `epDest` (same file as epDest, same rank as from), so removing
// it can open a discovered check along that rank that checkPin's from->king
// ray scan never considers, since it only tracks the mover's own square.
// Simulated on a clone rather than derived analytically, since the
// discovered-check ray can come from either side of the two vacated squares.
func enPassantKingSafe(b *Board, from, epDest Square, color Color) bool {
	captured := NewSquare(epDest.File(), from.Rank())
	clone := b.Clone()
	clone.Remove(from)
	clone.Remove(captured)
	clone.Place(epDest, NewPiece(color, Pawn))
	return !clone.InCheck(color)
}

// evasionSquares returns the set of squares a non-king piece may legally
// move to while its king is in check from a single attacker: the
// attacker's own square (capture it) plus, for a sliding attacker, the
// squares interposed between attacker and king (spec 4.4 check/mate:
// capture or interpose).
func evasionSquares(attacker, kingSq Square, b *Board) map[Square]bool {
	set := map[Square]bool{attacker: true}
	if isSlider(b.Squares[attacker].Type()) {
		for _, sq := range interposeSquares(attacker, kingSq) {
			set[sq] = true
		}
	}
	return set
}

func filterSquares(in []Square, keep func(Square) bool) []Square {
	var out []Square
	for _, sq := range in {
		if keep(sq) {
			out = append(out, sq)
		}
	}
	return out
}

// kingMoves returns the king's legal non-castling destinations: adjacent
// squares not occupied by a friendly piece and not attacked by the
// opponent, computed with traspass_king so the king cannot flee along a
// slider's ray into still-attacked territory (spec 4.1/4.4).
func kingMoves(b *Board, from Square, color, opp Color) []Move {
	var moves []Move
	for _, sq := range pseudoAttackSquares(b, from, NewPiece(color, King)) {
		target := b.Squares[sq]
		if !target.IsEmpty() && target.Color() == color {
			continue
		}
		if b.IsSquareAttackedTraspassingKing(sq, opp, color) {
			continue
		}
		mv := Move{From: from, To: sq, Piece: King}
		if !target.IsEmpty() {
			mv.IsCapture = true
		}
		moves = append(moves, mv)
	}
	return moves
}

// buildMoves expands a list of destination squares into Move values,
// filling in capture/en-passant flags and, for pawns reaching the last
// rank, all four promotion choices (spec 8 property 10).
func buildMoves(b *Board, from Square, kind PieceType, dests []Square, enPassant Square) []Move {
	var moves []Move
	color := b.Squares[from].Color()
	for _, to := range dests {
		target := b.Squares[to]
		mv := Move{From: from, To: to, Piece: kind}
		if kind == Pawn && to == enPassant && enPassant.IsValid() && target.IsEmpty() {
			mv.IsEnPassant = true
			mv.IsCapture = true
		} else if !target.IsEmpty() {
			mv.IsCapture = true
		}
		if kind == Pawn && isPromotionRank(to.Rank(), color) {
			for _, promo := range PromotionChoices {
				pm := mv
				pm.Promotion = promo
				moves = append(moves, pm)
			}
			continue
		}
		moves = append(moves, mv)
	}
	return moves
}

// castlingMoves returns the castling moves legal for color right now. Per
// spec 4.4 and the open question in spec 9: occupancy between king and
// rook (including the queenside b-file) and king-path safety (which
// excludes the b-file) are two independent checks.
func castlingMoves(b *Board, color Color, inCheck bool) []Move {
	if inCheck {
		return nil
	}
	rank := 0
	if color == Black {
		rank = 7
	}
	kingFile := 4
	kingSq := NewSquare(kingFile, rank)
	if b.Squares[kingSq].Type() != King || b.Squares[kingSq].Color() != color {
		return nil
	}
	opp := color.Opposite()

	var moves []Move
	for _, side := range []RookSide{KingSide, QueenSide} {
		if !b.CanCastle(color, side) {
			continue
		}
		rookFile := 7
		kingDestFile, rookDestFile := 6, 5
		occupancyFiles := []int{5, 6}
		if side == QueenSide {
			rookFile = 0
			kingDestFile, rookDestFile = 2, 3
			occupancyFiles = []int{1, 2, 3}
		}
		rookSq := NewSquare(rookFile, rank)
		if b.Squares[rookSq].Type() != Rook || b.Squares[rookSq].Color() != color {
			continue
		}

		occupied := false
		for _, f := range occupancyFiles {
			if !b.Squares[NewSquare(f, rank)].IsEmpty() {
				occupied = true
				break
			}
		}
		if occupied {
			continue
		}

		kingDest := NewSquare(kingDestFile, rank)
		step := 1
		if kingDestFile < kingFile {
			step = -1
		}
		safe := true
		for f := kingFile; ; f += step {
			if b.IsSquareAttackedTraspassingKing(NewSquare(f, rank), opp, color) {
				safe = false
				break
			}
			if f == kingDestFile {
				break
			}
		}
		if !safe {
			continue
		}

		moves = append(moves, Move{
			From:     kingSq,
			To:       kingDest,
			Piece:    King,
			IsCastle: true,
			CastleSide: side,
		})
	}
	return moves
}
