// Package search implements the two cooperating searchers layered on top of
// internal/engine: a Monte Carlo Tree Search driver sharing a DAG of
// position nodes keyed by Zobrist hash, and a forced-mate detector.
// Search components only read engine.Game state and call its move API;
// they never mutate a Board directly.
package search

import (
	"chessforge/internal/engine"
)

// GameStateNode is one position in the shared MCTS DAG. Node identity is
// the position hash, so transposing move orders reach the same node.
type GameStateNode struct {
	Hash            uint64
	FEN             string
	MoveThatLedHere string
	PlayerTurn      engine.Color
	IsTerminal      bool

	// UntriedMoves holds the legal tokens not yet expanded into a child.
	// Expand pops one at random; once empty the node is "fully expanded".
	UntriedMoves []string

	Children map[uint64]*GameStateNode
	Parents  []*GameStateNode

	VisitCount int
	ValueSum   float64

	// Depth is parent.Depth+1 for the parent the node was first created
	// under (0 for a root). It is kept fixed afterwards, even if a shorter
	// route to the node is later discovered.
	Depth int

	ExplorationWeight float64
}

// FullyExpanded reports whether every legal move from this node already
// has a child in the DAG.
func (n *GameStateNode) FullyExpanded() bool {
	return len(n.UntriedMoves) == 0
}

// StateManager maps position hashes to their shared GameStateNode, the
// "state manager keyed by hash" the spec calls for so that transpositions
// reuse one node instead of duplicating subtrees.
type StateManager struct {
	nodes map[uint64]*GameStateNode
}

// NewStateManager returns an empty state manager.
func NewStateManager() *StateManager {
	return &StateManager{nodes: make(map[uint64]*GameStateNode)}
}

// Get returns the node for hash, if one has already been created.
func (m *StateManager) Get(hash uint64) (*GameStateNode, bool) {
	n, ok := m.nodes[hash]
	return n, ok
}

// GetOrCreate returns the existing node for g's current position, or
// builds one from g, links it under parent (if non-nil) via the move
// token that led to it, and registers it in the manager.
func (m *StateManager) GetOrCreate(g *engine.Game, moveThatLedHere string, parent *GameStateNode) *GameStateNode {
	hash := g.CurrentHash
	if existing, ok := m.nodes[hash]; ok {
		if parent != nil {
			existing.linkParent(parent)
		}
		return existing
	}

	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}

	node := &GameStateNode{
		Hash:              hash,
		FEN:               g.ToFEN(),
		MoveThatLedHere:   moveThatLedHere,
		PlayerTurn:        g.SideToMove,
		IsTerminal:        g.IsTerminated(),
		UntriedMoves:      g.LegalTokens(),
		Children:          make(map[uint64]*GameStateNode),
		Depth:             depth,
		ExplorationWeight: defaultExplorationWeight,
	}
	if parent != nil {
		node.linkParent(parent)
	}
	m.nodes[hash] = node
	return node
}

// linkParent records the multi-parent edge in both directions. The DAG is
// cyclic-tolerant by construction: a node may already list parent among
// its parents (reached via a different earlier transposition) and must
// not be linked twice.
func (n *GameStateNode) linkParent(parent *GameStateNode) {
	for _, p := range n.Parents {
		if p.Hash == parent.Hash {
			return
		}
	}
	n.Parents = append(n.Parents, parent)
	parent.Children[n.Hash] = n
}
