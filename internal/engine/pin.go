package engine

// PinRestriction reports the result of scanning from a piece's square
// toward its own king for an absolute pin (spec 4.1 pin detection).
type PinRestriction struct {
	Pinned  bool
	Allowed map[Square]bool // squares on the king-attacker segment, including the attacker
}

// allDirs8 is the eight directions a pin ray can run along: four
// orthogonal (rook/queen) then four diagonal (bishop/queen).
var allDirs8 = append(append([][2]int{}, orthogonalDirs...), diagonalDirs...)

// pinningKind returns the slider kind that can pin along direction index i
// of allDirs8 (first four orthogonal -> Rook, last four diagonal -> Bishop;
// Queen pins along either).
func pinningKind(dirIndex int) PieceType {
	if dirIndex < len(orthogonalDirs) {
		return Rook
	}
	return Bishop
}

// checkPin determines whether the piece on `from` (belonging to color)
// is pinned against its own king, by scanning the three direction classes
// (row/column, two diagonals) from the piece toward the king, per spec
// 4.1: "a piece computes its legal moves by first computing pseudo-legal
// moves, then scanning... for its own king. If the king is on one side and
// a hostile rook/queen or bishop/queen is on the other, the piece is
// pinned."
func checkPin(b *Board, from Square, color Color) PinRestriction {
	kingSq := b.KingSquare(color)
	if kingSq == NoSquare {
		return PinRestriction{}
	}

	df := from.File() - kingSq.File()
	dr := from.Rank() - kingSq.Rank()
	if df == 0 && dr == 0 {
		return PinRestriction{} // the king itself is never "pinned"
	}

	// The piece must lie on exactly one of the 8 rays from the king.
	var dir [2]int
	switch {
	case df == 0 && dr != 0:
		dir = [2]int{0, sign(dr)}
	case dr == 0 && df != 0:
		dir = [2]int{sign(df), 0}
	case abs(df) == abs(dr):
		dir = [2]int{sign(df), sign(dr)}
	default:
		return PinRestriction{} // not aligned with the king at all
	}

	dirIndex := -1
	for i, d := range allDirs8 {
		if d == dir {
			dirIndex = i
			break
		}
	}
	if dirIndex == -1 {
		return PinRestriction{}
	}

	// Walk from the king outward along dir; the first occupied square must
	// be `from` itself (nothing else between king and piece), otherwise
	// there is no pin on this piece along this ray.
	segment := []Square{}
	foundSelf := false
	var attacker Square = NoSquare
	kf, kr := kingSq.File(), kingSq.Rank()
	for dist := 1; dist <= 7; dist++ {
		f, r := kf+dir[0]*dist, kr+dir[1]*dist
		if f < 0 || f > 7 || r < 0 || r > 7 {
			break
		}
		sq := NewSquare(f, r)
		piece := b.Squares[sq]
		if piece.IsEmpty() {
			segment = append(segment, sq)
			continue
		}
		if !foundSelf {
			if sq != from {
				return PinRestriction{} // something else sits between king and the piece
			}
			foundSelf = true
			segment = append(segment, sq)
			continue
		}
		// Second occupied square along the ray.
		kind := pinningKind(dirIndex)
		if piece.Color() != color && (piece.Type() == kind || piece.Type() == Queen) {
			attacker = sq
			segment = append(segment, sq)
		}
		break
	}

	if !foundSelf || attacker == NoSquare {
		return PinRestriction{}
	}

	allowed := make(map[Square]bool, len(segment))
	for _, sq := range segment {
		allowed[sq] = true
	}
	return PinRestriction{Pinned: true, Allowed: allowed}
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
