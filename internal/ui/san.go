package ui

import "chessforge/internal/engine"

// ParseSAN resolves san (spec 6 relaxed algebraic notation, including
// castling) against g's current legal moves without mutating g, returning
// the fully-resolved Move for the caller to apply separately. Delegates to
// Game.Move on a throwaway clone so the parse/resolve pipeline (and its
// error phases) stay in one place: internal/engine/notation.go.
func ParseSAN(g *engine.Game, san string) (engine.Move, error) {
	return g.Clone().Move(san)
}

// FormatSAN renders mv in standard algebraic notation relative to g's
// current position. Thin wrapper over Game.SAN, kept in the ui package
// so callers that only know about moves and games (not the engine's
// internal token grammar) have a stable, short name to call.
func FormatSAN(g *engine.Game, mv engine.Move) string {
	return g.SAN(mv)
}
