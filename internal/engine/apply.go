package engine

// Apply executes a (legal) move on the board: relocating the piece,
// moving the rook for castling, removing the captured pawn for en
// passant, replacing the pawn for promotion, and updating castling
// rights (spec 4.4 steps 4-5). It assumes mv was produced by LegalMoves
// for the side to move; Game is responsible for the surrounding pipeline
// (en-passant bookkeeping, clocks, hashing, turn order).
func (b *Board) Apply(mv Move) {
	mover := b.Squares[mv.From]
	color := mover.Color()

	if mv.IsCastle {
		b.applyCastle(mv, color)
		b.ClearCastlingRights(color)
		return
	}

	if mv.IsEnPassant {
		capturedRank := mv.From.Rank()
		captured := NewSquare(mv.To.File(), capturedRank)
		b.Remove(captured)
	} else if mv.IsCapture {
		if captured := b.Squares[mv.To]; captured.Type() == Rook {
			b.revokeRookRight(mv.To, captured.Color())
		}
	}

	b.Remove(mv.From)
	b.Remove(mv.To)
	placed := mover
	if mv.Promotion != Empty {
		placed = NewPiece(color, mv.Promotion)
	}
	_ = b.Place(mv.To, placed)

	switch mover.Type() {
	case King:
		b.ClearCastlingRights(color)
	case Rook:
		b.revokeRookRight(mv.From, color)
	}
}

func (b *Board) applyCastle(mv Move, color Color) {
	rank := mv.From.Rank()
	kingFile := 4
	rookFile, rookDestFile := 7, 5
	if mv.CastleSide == QueenSide {
		rookFile, rookDestFile = 0, 3
	}
	rookSq := NewSquare(rookFile, rank)
	rook := b.Squares[rookSq]

	b.Remove(NewSquare(kingFile, rank))
	b.Remove(rookSq)
	_ = b.Place(mv.To, NewPiece(color, King))
	_ = b.Place(NewSquare(rookDestFile, rank), rook)
}

// revokeRookRight clears the castling right matching the rook that used
// to stand on sq (by file: file 0 is queenside, file 7 is kingside),
// whether it just moved or was just captured.
func (b *Board) revokeRookRight(sq Square, color Color) {
	switch sq.File() {
	case 0:
		b.ClearCastlingRight(color, QueenSide)
	case 7:
		b.ClearCastlingRight(color, KingSide)
	}
}
