package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chessforge/internal/engine"
)

func TestGetOrCreateBuildsRootFromGame(t *testing.T) {
	m := NewStateManager()
	g := engine.New()

	node := m.GetOrCreate(g, "", nil)
	require.NotNil(t, node)
	assert.Equal(t, g.CurrentHash, node.Hash)
	assert.Equal(t, engine.White, node.PlayerTurn)
	assert.False(t, node.IsTerminal)
	assert.Len(t, node.UntriedMoves, 20)
	assert.Empty(t, node.Parents)
}

func TestGetOrCreateReturnsSameNodeForSameHash(t *testing.T) {
	m := NewStateManager()
	g1 := engine.New()
	g2 := engine.New()

	n1 := m.GetOrCreate(g1, "", nil)
	n2 := m.GetOrCreate(g2, "", nil)
	assert.Same(t, n1, n2, "identical starting positions must share one node")
}

func TestGetOrCreateLinksParentAndChild(t *testing.T) {
	m := NewStateManager()
	g := engine.New()
	root := m.GetOrCreate(g, "", nil)

	_, err := g.Move("e4")
	require.NoError(t, err)
	child := m.GetOrCreate(g, "e4", root)

	assert.Same(t, child, root.Children[g.CurrentHash])
	require.Len(t, child.Parents, 1)
	assert.Same(t, root, child.Parents[0])
	assert.Equal(t, root.Depth+1, child.Depth)
}

func TestGetOrCreateTransposesWithoutDuplicateParentLinks(t *testing.T) {
	// Linking the same parent to the same child twice (e.g. because two
	// different expansions raced to the same transposition) must not
	// duplicate the parent edge.
	m := NewStateManager()

	gA := engine.New()
	require.NoError(t, playAll(gA, "Nf3", "Nf6"))
	parentA := m.GetOrCreate(gA, "Nf6", nil)
	require.NoError(t, playAll(gA, "Nc3"))
	m.GetOrCreate(gA, "Nc3", parentA)
	m.GetOrCreate(gA, "Nc3", parentA) // same parent linked twice on purpose

	childHash := gA.CurrentHash
	child, ok := m.Get(childHash)
	require.True(t, ok)
	assert.Len(t, child.Parents, 1)
}

func TestFullyExpandedReflectsRemainingUntriedMoves(t *testing.T) {
	m := NewStateManager()
	g := engine.New()
	node := m.GetOrCreate(g, "", nil)
	assert.False(t, node.FullyExpanded())

	node.UntriedMoves = nil
	assert.True(t, node.FullyExpanded())
}

func playAll(g *engine.Game, tokens ...string) error {
	for _, tok := range tokens {
		if _, err := g.Move(tok); err != nil {
			return err
		}
	}
	return nil
}
