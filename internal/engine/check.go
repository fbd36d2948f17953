package engine

// InCheck reports whether color's king is currently attacked (spec 4.4
// check detection: "are there any enemy pieces whose attacked_squares
// include my square?").
func (b *Board) InCheck(color Color) bool {
	kingSq := b.KingSquare(color)
	if kingSq == NoSquare {
		return false
	}
	return b.IsSquareAttacked(kingSq, color.Opposite())
}

// Attackers returns the squares of every opposing piece currently
// attacking color's king.
func (b *Board) Attackers(color Color) []Square {
	kingSq := b.KingSquare(color)
	if kingSq == NoSquare {
		return nil
	}
	return b.AttackersOf(kingSq, color.Opposite())
}

// interposeSquares returns the squares strictly between attacker and
// kingSq, inclusive of neither, for a slider attacker. Returns nil for a
// non-sliding attacker (knight, pawn) or when attacker isn't aligned with
// kingSq (should not happen for a genuine attacker).
func interposeSquares(attacker, kingSq Square) []Square {
	df := kingSq.File() - attacker.File()
	dr := kingSq.Rank() - attacker.Rank()
	var dir [2]int
	switch {
	case df == 0 && dr != 0:
		dir = [2]int{0, sign(dr)}
	case dr == 0 && df != 0:
		dir = [2]int{sign(df), 0}
	case df != 0 && abs(df) == abs(dr):
		dir = [2]int{sign(df), sign(dr)}
	default:
		return nil
	}
	var out []Square
	f, r := attacker.File()+dir[0], attacker.Rank()+dir[1]
	for f != kingSq.File() || r != kingSq.Rank() {
		out = append(out, NewSquare(f, r))
		f += dir[0]
		r += dir[1]
	}
	return out
}

func isSlider(kind PieceType) bool {
	return kind == Bishop || kind == Rook || kind == Queen
}
