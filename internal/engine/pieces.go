package engine

// This file implements spec 4.1: per-kind attacked-square and
// pseudo-legal-move generation. Rather than per-kind virtual dispatch
// (inheritance), each kind is a tagged variant (PieceType) dispatched
// through the switch statements below, with ray scanning shared between
// bishop/rook/queen (spec 9, "deep virtual dispatch on Piece kinds").

var knightOffsets = [][2]int{
	{+2, +1}, {+2, -1}, {-2, +1}, {-2, -1},
	{+1, +2}, {+1, -2}, {-1, +2}, {-1, -2},
}

var kingOffsets = [][2]int{
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
}

// pseudoAttackSquares returns the squares the piece p on square from
// threatens, ignoring whether moving there would expose its own king
// (spec 4.1 attacked_squares). For pawns this is the diagonal capture
// squares only, not the forward push squares.
func pseudoAttackSquares(b *Board, from Square, p Piece) []Square {
	file, rank := from.File(), from.Rank()
	switch p.Type() {
	case Pawn:
		return pawnAttackSquares(file, rank, p.Color())
	case Knight:
		return offsetSquares(file, rank, knightOffsets, nil)
	case King:
		return offsetSquares(file, rank, kingOffsets, nil)
	case Bishop:
		return slideSquares(b, file, rank, diagonalDirs, NoSquare)
	case Rook:
		return slideSquares(b, file, rank, orthogonalDirs, NoSquare)
	case Queen:
		squares := slideSquares(b, file, rank, diagonalDirs, NoSquare)
		return append(squares, slideSquares(b, file, rank, orthogonalDirs, NoSquare)...)
	default:
		return nil
	}
}

func pawnAttackSquares(file, rank int, color Color) []Square {
	dir := 1
	if color == Black {
		dir = -1
	}
	var out []Square
	for _, df := range []int{-1, 1} {
		f, r := file+df, rank+dir
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		out = append(out, NewSquare(f, r))
	}
	return out
}

func offsetSquares(file, rank int, offsets [][2]int, _ interface{}) []Square {
	var out []Square
	for _, off := range offsets {
		f, r := file+off[0], rank+off[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		out = append(out, NewSquare(f, r))
	}
	return out
}

// slideSquares casts rays from (file, rank) in the given directions,
// stopping at the first occupied square (inclusive, for captures). If
// traspassKing is a valid square held by the opposing king, the ray
// continues through it (spec 4.1 traspass_king option), used when a piece
// pins or gives check through the square the king would otherwise vacate.
func slideSquares(b *Board, file, rank int, dirs [][2]int, traspassKing Square) []Square {
	var out []Square
	for _, dir := range dirs {
		for dist := 1; dist <= 7; dist++ {
			f, r := file+dir[0]*dist, rank+dir[1]*dist
			if f < 0 || f > 7 || r < 0 || r > 7 {
				break
			}
			sq := NewSquare(f, r)
			out = append(out, sq)
			if b.Squares[sq].IsEmpty() {
				continue
			}
			if sq == traspassKing {
				continue
			}
			break
		}
	}
	return out
}

// pseudoLegalDestinations returns the destination squares reachable by the
// piece on `from`, including captures, under its movement rules, but not
// yet filtered for self-check (spec 4.1 pseudo_legal_moves). Castling is
// handled separately (legal.go) since it depends on Game-level state
// (rights, king/rook first-move status, square safety).
func pseudoLegalDestinations(b *Board, from Square) []Square {
	p := b.Squares[from]
	switch p.Type() {
	case Pawn:
		return pawnPseudoLegalMoves(b, from, p.Color())
	case Knight, King:
		var dests []Square
		for _, sq := range pseudoAttackSquares(b, from, p) {
			if b.Squares[sq].IsEmpty() || b.Squares[sq].Color() != p.Color() {
				dests = append(dests, sq)
			}
		}
		return dests
	case Bishop, Rook, Queen:
		var dests []Square
		for _, sq := range pseudoAttackSquares(b, from, p) {
			if b.Squares[sq].IsEmpty() || b.Squares[sq].Color() != p.Color() {
				dests = append(dests, sq)
			}
		}
		return dests
	default:
		return nil
	}
}

// pawnPseudoLegalMoves generates forward pushes (single/double) and
// diagonal captures, excluding en passant (handled by Game, which knows
// the current en-passant target square).
func pawnPseudoLegalMoves(b *Board, from Square, color Color) []Square {
	file, rank := from.File(), from.Rank()
	dir, startRank := 1, 1
	if color == Black {
		dir, startRank = -1, 6
	}

	var out []Square
	forwardRank := rank + dir
	if forwardRank >= 0 && forwardRank <= 7 {
		forwardSq := NewSquare(file, forwardRank)
		if b.Squares[forwardSq].IsEmpty() {
			out = append(out, forwardSq)
			if rank == startRank {
				twoRank := rank + 2*dir
				twoSq := NewSquare(file, twoRank)
				if b.Squares[twoSq].IsEmpty() {
					out = append(out, twoSq)
				}
			}
		}
	}

	for _, sq := range pawnAttackSquares(file, rank, color) {
		target := b.Squares[sq]
		if !target.IsEmpty() && target.Color() != color {
			out = append(out, sq)
		}
	}
	return out
}

// PromotionChoices lists the four piece kinds a pawn may promote to,
// in a fixed order (spec 4.1 promotion, spec 8 property 10).
var PromotionChoices = []PieceType{Queen, Rook, Bishop, Knight}

// isPromotionRank reports whether rank (0-7) is the last rank for color.
func isPromotionRank(rank int, color Color) bool {
	if color == White {
		return rank == 7
	}
	return rank == 0
}
