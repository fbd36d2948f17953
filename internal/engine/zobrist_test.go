package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDeterministicAcrossEquivalentSetup(t *testing.T) {
	g1 := New()
	g2, err := ParseFEN(startingFEN)
	require.NoError(t, err)
	assert.Equal(t, g1.CurrentHash, g2.CurrentHash)
}

func TestHashChangesAfterMove(t *testing.T) {
	g := New()
	before := g.CurrentHash
	_, err := g.Move("e4")
	require.NoError(t, err)
	assert.NotEqual(t, before, g.CurrentHash)
}

func TestHashIndependentOfMoveOrder(t *testing.T) {
	// Two commuting knight-development orders reaching the identical final
	// position (no pawn moves, so there is no en-passant-window ambiguity).
	g1 := New()
	for _, tok := range []string{"Nc3", "Nc6", "Nf3", "Nf6"} {
		_, err := g1.Move(tok)
		require.NoError(t, err)
	}

	g2 := New()
	for _, tok := range []string{"Nf3", "Nf6", "Nc3", "Nc6"} {
		_, err := g2.Move(tok)
		require.NoError(t, err)
	}

	assert.Equal(t, g1.CurrentHash, g2.CurrentHash)
}

func TestHashBytesBigEndian(t *testing.T) {
	bytes := HashBytes(0x0102030405060708)
	assert.Equal(t, [8]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, bytes)
}

func TestHashDiffersByCastlingRights(t *testing.T) {
	g1, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	g2, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, g1.CurrentHash, g2.CurrentHash)
}

func TestHashDiffersBySideToMove(t *testing.T) {
	white, err := ParseFEN(startingFEN)
	require.NoError(t, err)
	black, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, white.CurrentHash, black.CurrentHash)
}
