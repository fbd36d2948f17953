package engine

import (
	"errors"
	"strings"
)

// TerminalState is the terminal outcome of a Game (spec 3: "{running |
// drawn | white_wins | black_wins}").
type TerminalState int

const (
	Running TerminalState = iota
	Drawn
	WhiteWins
	BlackWins
)

// MoveRecord holds one fullmove's tokens (spec 3 move_history: "ordered
// mapping from fullmove_number to a list of [white_token, black_token?]").
type MoveRecord struct {
	White string
	Black string // empty until Black has moved
}

// Game owns a Board plus the side to move, clocks, en-passant target,
// move history, repetition table, and terminal state (spec 3/4.4). It is
// the sole owner of its Board; search components read Game state and call
// its move API but never mutate Board directly (spec 2).
type Game struct {
	Board *Board

	SideToMove      Color
	HalfMoveClock   int
	FullMoveNumber  int
	EnPassantSquare Square // target square a pawn may be captured on; NoSquare if none

	MoveHistory     map[int]*MoveRecord
	RepetitionTable map[uint64]int

	Terminal   TerminalState
	DrawReason GameStatus

	CurrentHash uint64
}

// New creates a Game in the standard starting position (spec 8 property 1).
func New() *Game {
	g := &Game{
		Board:           NewBoard(),
		SideToMove:      White,
		HalfMoveClock:   0,
		FullMoveNumber:  1,
		EnPassantSquare: NoSquare,
		MoveHistory:     map[int]*MoveRecord{},
		RepetitionTable: map[uint64]int{},
	}
	g.CurrentHash = g.ComputeHash()
	g.RepetitionTable[g.CurrentHash] = 1
	return g
}

// IsTerminated reports whether the game has ended (spec 3 is_terminated).
func (g *Game) IsTerminated() bool { return g.Terminal != Running }

// IsDrawn reports whether the game ended in a draw (spec 3 is_drawn).
func (g *Game) IsDrawn() bool { return g.Terminal == Drawn }

// Winner returns the winning color and true, or (0, false) if there is no
// winner (draw, stalemate, or an ongoing game).
func (g *Game) Winner() (Color, bool) {
	switch g.Terminal {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	default:
		return 0, false
	}
}

// LegalMoves returns every legal move for the side to move (spec 4.4
// legal_moves, flat-list form).
func (g *Game) LegalMoves() []Move {
	if g.IsTerminated() {
		return nil
	}
	return LegalMoves(g.Board, g.SideToMove, g.EnPassantSquare)
}

// LegalMovesFor returns every legal move for the given color regardless of
// whose turn it actually is (used by search/mate code evaluating
// hypothetical replies without switching SideToMove).
func (g *Game) LegalMovesFor(color Color) []Move {
	return LegalMoves(g.Board, color, g.EnPassantSquare)
}

// LegalTokens returns the flat list of legal moves for the side to move,
// rendered as algebraic tokens (spec 4.4 legal_moves "flat list" format).
func (g *Game) LegalTokens() []string {
	moves := g.LegalMoves()
	out := make([]string, len(moves))
	for i, mv := range moves {
		out[i] = g.SAN(mv)
	}
	return out
}

// Move parses and applies a move token using the relaxed algebraic
// notation of spec 6, running the full pipeline of spec 4.4: parse,
// resolve against legal moves, apply, and transition terminal state.
func (g *Game) Move(token string) (Move, error) {
	if g.IsTerminated() {
		return Move{}, &InvalidMoveError{Token: token, Phase: PhaseResolve, Err: &GameOverError{}}
	}
	tok, err := parseToken(token)
	if err != nil {
		return Move{}, err
	}
	mv, err := resolve(g, token, tok)
	if err != nil {
		return Move{}, err
	}
	white := g.SideToMove == White
	san := g.SAN(mv)
	if err := g.ApplyMove(mv); err != nil {
		return Move{}, &InvalidMoveError{Token: token, Phase: PhaseExecute, Err: err}
	}
	g.recordToken(white, stripCheckSuffix(san))
	return mv, nil
}

// stripCheckSuffix removes the trailing "+"/"#" SAN appends for check/mate
// (spec 8 S1: move_history stores the bare token, e.g. "Qh4" rather than
// "Qh4#"). g.SAN itself keeps the suffix, since it is also used for
// display (internal/ui/san.go's FormatSAN) and LegalTokens, where the
// standard check/mate marker is wanted.
func stripCheckSuffix(san string) string {
	return strings.TrimRight(san, "+#")
}

func (g *Game) recordToken(white bool, san string) {
	// FullMoveNumber has already been advanced by ApplyMove for a Black
	// move, so the record key is the move number the token was played
	// under, not necessarily the current one.
	num := g.FullMoveNumber
	if !white {
		num--
	}
	rec := g.MoveHistory[num]
	if rec == nil {
		rec = &MoveRecord{}
		g.MoveHistory[num] = rec
	}
	if white {
		rec.White = san
	} else {
		rec.Black = san
	}
}

// ApplyMove executes an already-legal move on the board and runs the rest
// of the spec 4.4 pipeline: en-passant bookkeeping, clocks, repetition,
// check/mate/draw detection, turn flip, and cache invalidation. Search
// components call this directly with moves drawn from LegalMoves/
// LegalMovesFor, bypassing notation parsing.
func (g *Game) ApplyMove(mv Move) error {
	mover := g.Board.Squares[mv.From]
	if mover.IsEmpty() {
		return &SearchError{Context: "ApplyMove", Err: errEmptyMover}
	}

	isPawnOrCapture := mv.Piece == Pawn || mv.IsCapture

	// Step 3: en-passant bookkeeping (pre-move). The window always expires
	// after one half-move; set a fresh target only for a double push.
	g.EnPassantSquare = NoSquare
	if mv.Piece == Pawn && abs(mv.To.Rank()-mv.From.Rank()) == 2 {
		behind := (mv.To.Rank() + mv.From.Rank()) / 2
		g.EnPassantSquare = NewSquare(mv.From.File(), behind)
	}

	// Step 4-5: execute on the board; Board.Apply also updates castling rights.
	g.Board.Apply(mv)

	// Step 6: halfmove clock.
	if isPawnOrCapture {
		g.HalfMoveClock = 0
	} else {
		g.HalfMoveClock++
	}

	opponent := g.SideToMove.Opposite()

	// Step 7: repetition table, keyed on the position *after* this move,
	// with the opponent to move next.
	g.SideToMove = opponent
	g.CurrentHash = g.ComputeHash()
	g.RepetitionTable[g.CurrentHash]++

	// Step 8: check/checkmate/stalemate/draw detection for the opponent,
	// who is now on the move.
	g.updateTerminalState(opponent)

	// Step 9: turn management (side already flipped above).
	if opponent == White {
		g.FullMoveNumber++
	}

	// Step 10: invalidate attacked-square caches.
	g.Board.InvalidateAttackedCache()

	return nil
}

var errEmptyMover = errors.New("no piece on move's origin square")

// updateTerminalState runs spec 4.4's check/checkmate/stalemate detection
// plus the draw rules (fifty/seventy-five-move, threefold/fivefold
// repetition, insufficient material — the last two are the SPEC_FULL.md
// section 6 supplemented features). toMove is the color about to move.
func (g *Game) updateTerminalState(toMove Color) {
	legal := g.LegalMovesFor(toMove)
	inCheck := g.Board.InCheck(toMove)

	if len(legal) == 0 {
		if inCheck {
			if toMove == White {
				g.Terminal = BlackWins
			} else {
				g.Terminal = WhiteWins
			}
			g.DrawReason = Checkmate
		} else {
			g.Terminal = Drawn
			g.DrawReason = Stalemate
		}
		return
	}

	if g.HalfMoveClock >= 150 {
		g.Terminal = Drawn
		g.DrawReason = DrawSeventyFiveMoveRule
		return
	}
	if g.HalfMoveClock >= 100 {
		g.Terminal = Drawn
		g.DrawReason = DrawFiftyMoveRule
		return
	}

	if count := g.RepetitionTable[g.CurrentHash]; count >= 5 {
		g.Terminal = Drawn
		g.DrawReason = DrawFivefoldRepetition
		return
	} else if count >= 3 {
		g.Terminal = Drawn
		g.DrawReason = DrawThreefoldRepetition
		return
	}

	if g.Board.HasInsufficientMaterial() {
		g.Terminal = Drawn
		g.DrawReason = DrawInsufficientMaterial
		return
	}

	g.Terminal = Running
	g.DrawReason = Ongoing
}

// Clone returns a deep, independent copy of the game, used by search to
// fork a position per expansion/rollout without mutating the shared state
// (spec 5, "forked Games... scoped to one expansion or one rollout").
func (g *Game) Clone() *Game {
	clone := &Game{
		Board:           g.Board.Clone(),
		SideToMove:      g.SideToMove,
		HalfMoveClock:   g.HalfMoveClock,
		FullMoveNumber:  g.FullMoveNumber,
		EnPassantSquare: g.EnPassantSquare,
		MoveHistory:     make(map[int]*MoveRecord, len(g.MoveHistory)),
		RepetitionTable: make(map[uint64]int, len(g.RepetitionTable)),
		Terminal:        g.Terminal,
		DrawReason:      g.DrawReason,
		CurrentHash:     g.CurrentHash,
	}
	for k, v := range g.MoveHistory {
		rec := *v
		clone.MoveHistory[k] = &rec
	}
	for k, v := range g.RepetitionTable {
		clone.RepetitionTable[k] = v
	}
	return clone
}

// HasInsufficientMaterial reports whether neither side has enough material
// to force checkmate: K vs K, K+N vs K, K+B vs K, or K+B vs K+B with both
// bishops on the same color square. Supplemented from the Python original
// (not present in spec.md, not excluded by its Non-goals).
func (b *Board) HasInsufficientMaterial() bool {
	var minor [2]int       // count of knights+bishops per color
	var other [2]bool      // any pawn/rook/queen per color
	var bishopSquares [2][]Square

	for sq := Square(0); sq < 64; sq++ {
		p := b.Squares[sq]
		if p.IsEmpty() || p.Type() == King {
			continue
		}
		c := p.Color()
		switch p.Type() {
		case Knight:
			minor[c]++
		case Bishop:
			minor[c]++
			bishopSquares[c] = append(bishopSquares[c], sq)
		default:
			other[c] = true
		}
	}
	if other[White] || other[Black] {
		return false
	}
	if minor[White] > 1 || minor[Black] > 1 {
		return false
	}
	if minor[White] == 1 && minor[Black] == 1 {
		// K+B vs K+B is a draw only when both bishops sit on the same
		// color square; K+N vs K+B (or any mixed pairing) is not.
		if len(bishopSquares[White]) == 1 && len(bishopSquares[Black]) == 1 {
			return squareColor(bishopSquares[White][0]) == squareColor(bishopSquares[Black][0])
		}
		return false
	}
	return true // K vs K, or K+minor vs K
}

func squareColor(sq Square) int {
	return (sq.File() + sq.Rank()) % 2
}
