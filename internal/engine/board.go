package engine

// Board owns the 8x8 grid of piece placements, the per-color/per-kind
// piece index, castling rights, and a per-half-move cache of attacked
// squares. It has no notion of whose turn it is, move history, or the
// clocks — those belong to Game, which exclusively owns one Board.
//
// This is a deliberate split from the teacher's single merged struct: spec
// section 3 assigns side-to-move, clocks, en-passant, history, and
// terminal state to Game, and grid/index/rights/cache to Board, so Board
// methods that need to know "whose pieces" take a Color parameter instead
// of reading a stored active color.
type Board struct {
	// Squares holds all 64 squares of the board.
	// Indexed as rank * 8 + file, where a1=0, b1=1, ..., h8=63.
	Squares [64]Piece

	// CastlingRights encodes available castling options.
	// Bit 0: White kingside (K)
	// Bit 1: White queenside (Q)
	// Bit 2: Black kingside (k)
	// Bit 3: Black queenside (q)
	CastlingRights uint8

	// PieceCounts is the live piece count per color.
	PieceCounts [2]int

	initialized bool

	// attackedCache memoizes AttackedSquares per color for the current
	// half-move; Game invalidates it after every applied move.
	attackedCache [2]*squareSet
}

// squareSet is a 64-bit bitset over board squares, used only for the
// attacked-squares cache (spec 4.2: "memoized per half-move").
type squareSet uint64

func (s *squareSet) set(sq Square)      { *s |= squareSet(1) << uint(sq) }
func (s squareSet) has(sq Square) bool  { return s&(squareSet(1)<<uint(sq)) != 0 }

// Castling rights bit masks.
const (
	CastleWhiteKing  uint8 = 1 << 0 // K
	CastleWhiteQueen uint8 = 1 << 1 // Q
	CastleBlackKing  uint8 = 1 << 2 // k
	CastleBlackQueen uint8 = 1 << 3 // q
	CastleAll        uint8 = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

func castleBit(c Color, side RookSide) uint8 {
	switch {
	case c == White && side == KingSide:
		return CastleWhiteKing
	case c == White && side == QueenSide:
		return CastleWhiteQueen
	case c == Black && side == KingSide:
		return CastleBlackKing
	default:
		return CastleBlackQueen
	}
}

// CanCastle reports whether the given color still has the right to castle
// on the given side. It does not check square safety or occupancy.
func (b *Board) CanCastle(c Color, side RookSide) bool {
	return b.CastlingRights&castleBit(c, side) != 0
}

// ClearCastlingRight revokes one castling right permanently.
func (b *Board) ClearCastlingRight(c Color, side RookSide) {
	b.CastlingRights &^= castleBit(c, side)
}

// ClearCastlingRights revokes both castling rights for a color (a king move).
func (b *Board) ClearCastlingRights(c Color) {
	b.ClearCastlingRight(c, KingSide)
	b.ClearCastlingRight(c, QueenSide)
}

// NewEmptyBoard creates a board with all squares empty and no castling
// rights. Used by FEN parsing and custom setups.
func NewEmptyBoard() *Board {
	return &Board{CastlingRights: 0}
}

// NewBoard creates a board set up in the standard starting position, with
// all castling rights available.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.SetupStandard()
	return b
}

// SetupStandard places all 32 pieces in the standard starting position.
// It fails with BoardAlreadyInitializedError if called twice on the same
// board.
func (b *Board) SetupStandard() error {
	if b.initialized {
		return &BoardAlreadyInitializedError{}
	}
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		mustPlace(b, NewSquare(file, 0), NewPiece(White, backRank[file]))
		mustPlace(b, NewSquare(file, 1), NewPiece(White, Pawn))
		mustPlace(b, NewSquare(file, 6), NewPiece(Black, Pawn))
		mustPlace(b, NewSquare(file, 7), NewPiece(Black, backRank[file]))
	}
	b.CastlingRights = CastleAll
	b.initialized = true
	return nil
}

func mustPlace(b *Board, sq Square, p Piece) {
	// Standard setup only ever targets empty squares of a fresh board;
	// any error here is a programming error, not a user-facing failure.
	if err := b.Place(sq, p); err != nil {
		panic(err)
	}
}

// Place adds a piece to an empty square, enforcing the one-king-per-color
// invariant. It fails with SpaceAlreadyOccupiedError if the square is
// occupied, or KingAlreadyOnBoardError if a second king of that color
// would result.
func (b *Board) Place(sq Square, p Piece) error {
	if !b.Squares[sq].IsEmpty() {
		return &SpaceAlreadyOccupiedError{Square: sq}
	}
	if p.Type() == King {
		for s := Square(0); s < 64; s++ {
			if b.Squares[s].Type() == King && b.Squares[s].Color() == p.Color() {
				return &KingAlreadyOnBoardError{Color: p.Color()}
			}
		}
	}
	b.Squares[sq] = p
	b.PieceCounts[p.Color()]++
	return nil
}

// Remove clears a square, decrementing the piece count if it held a piece.
func (b *Board) Remove(sq Square) {
	p := b.Squares[sq]
	if !p.IsEmpty() {
		b.PieceCounts[p.Color()]--
	}
	b.Squares[sq] = Piece(Empty)
}

// PieceAt returns the piece at the given square.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return Piece(Empty)
	}
	return b.Squares[sq]
}

// KingSquare returns the square of the given color's king, or NoSquare if
// absent (should not happen on a valid board).
func (b *Board) KingSquare(c Color) Square {
	for sq := Square(0); sq < 64; sq++ {
		if b.Squares[sq].Type() == King && b.Squares[sq].Color() == c {
			return sq
		}
	}
	return NoSquare
}

// InvalidateAttackedCache clears the memoized attacked-squares sets. Game
// calls this after every applied move; callers must not read the cache
// across that boundary (spec 5, caches valid only within one half-move).
func (b *Board) InvalidateAttackedCache() {
	b.attackedCache[White] = nil
	b.attackedCache[Black] = nil
}

// Clone returns a deep copy of the board (used by search, which forks a
// fresh position per expansion/rollout rather than mutating shared state).
func (b *Board) Clone() *Board {
	c := *b
	c.attackedCache = [2]*squareSet{}
	return &c
}
