package engine

import (
	"encoding/binary"
	"math/rand"
)

// Zobrist hash tables - initialized at package init time with deterministic
// values (spec 4.3: "a deterministic pseudo-random seed... generates
// 64-bit keys"). The tables are a process-wide immutable constant (spec 9),
// so identical positions hash identically across runs and processes.
var (
	// zobristPieces[pieceIndex][square] - random value for each piece type on each square.
	// pieceIndex = color * 6 + (pieceType - 1), where pieceType is 1-6 (Pawn-King).
	zobristPieces [12][64]uint64

	// zobristSideToMove - XORed when it's Black's turn.
	zobristSideToMove uint64

	// zobristCastling[bit] - one independent key per castling right
	// (White/Black x King/Queen side), XORed in individually when that
	// right is enabled (spec 4.3: "every (color, rook_side) castling
	// right... combined by exclusive-or").
	zobristCastling [4]uint64

	// zobristEnPassant[file] - random value for en passant on each file (0-7).
	// Only hashed when there is an en passant square available.
	zobristEnPassant [8]uint64
)

func init() {
	// Fixed seed: identical positions must hash identically across runs.
	rng := rand.New(rand.NewSource(0x5D4E3C2B1A))

	for pieceIndex := 0; pieceIndex < 12; pieceIndex++ {
		for square := 0; square < 64; square++ {
			zobristPieces[pieceIndex][square] = rng.Uint64()
		}
	}

	zobristSideToMove = rng.Uint64()

	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.Uint64()
	}
}

// pieceZobristIndex returns the Zobrist table index for a piece.
// Returns -1 for empty squares.
func pieceZobristIndex(p Piece) int {
	if p.IsEmpty() {
		return -1
	}
	return int(p.Color())*6 + int(p.Type()) - 1
}

// castlingKeyBit maps a CastlingRights bit position to its zobristCastling
// index: 0=White king, 1=White queen, 2=Black king, 3=Black queen.
func castlingKeyBit(bit uint8) int {
	switch bit {
	case CastleWhiteKing:
		return 0
	case CastleWhiteQueen:
		return 1
	case CastleBlackKing:
		return 2
	default:
		return 3
	}
}

// ComputeHash computes the Zobrist hash for the board's piece placement
// and castling rights only (spec 4.3's "every occupied square" and "every
// enabled castling right" terms). Side-to-move and en-passant file are
// folded in by Game.ComputeHash, since Board has no notion of either.
func (b *Board) ComputeHash() uint64 {
	var hash uint64
	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if !piece.IsEmpty() {
			hash ^= zobristPieces[pieceZobristIndex(piece)][sq]
		}
	}
	for _, bit := range []uint8{CastleWhiteKing, CastleWhiteQueen, CastleBlackKing, CastleBlackQueen} {
		if b.CastlingRights&bit != 0 {
			hash ^= zobristCastling[castlingKeyBit(bit)]
		}
	}
	return hash
}

// ComputeHash computes the full Zobrist hash for the current game state:
// the board's piece/castling hash, XORed with the en-passant file key (if
// any) and the side-to-move key (spec 4.3). The result is directly
// comparable by byte equality via its HashBytes encoding.
func (g *Game) ComputeHash() uint64 {
	hash := g.Board.ComputeHash()
	if g.EnPassantSquare.IsValid() {
		hash ^= zobristEnPassant[g.EnPassantSquare.File()]
	}
	if g.SideToMove == Black {
		hash ^= zobristSideToMove
	}
	return hash
}

// HashBytes returns the hash as 8 big-endian bytes (spec 4.3: "output as
// 8 bytes, big-endian, unsigned, and compared by byte equality").
func HashBytes(hash uint64) [8]byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], hash)
	return out
}
