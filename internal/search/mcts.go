package search

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"chessforge/internal/engine"
)

const (
	defaultExplorationWeight = 1.414
	defaultDepthPenalty      = 0.01

	// maxSimulationPlies bounds a single rollout so Search always completes
	// in a bounded number of steps even from a position with no practical
	// forced outcome; a rollout that hits the cap scores as a draw.
	maxSimulationPlies = 200
)

// MCTS is the Monte Carlo Tree Search driver described by spec 4.5.1: a
// UCB1 selection policy over a shared DAG of GameStateNodes, random-move
// rollouts, and depth-penalized backpropagation.
type MCTS struct {
	Manager           *StateManager
	ExplorationWeight float64
	DepthPenalty      float64
	rng               *rand.Rand
}

// NewMCTS returns a driver seeded from the wall clock, the teacher's
// standard randomness idiom (see bot.NewRandomEngine).
func NewMCTS() *MCTS {
	return newMCTS(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewMCTSWithSeed returns a driver with reproducible randomness, grounded
// on zobrist.go's fixed-seed pattern, for deterministic tests.
func NewMCTSWithSeed(seed int64) *MCTS {
	return newMCTS(rand.New(rand.NewSource(seed)))
}

func newMCTS(rng *rand.Rand) *MCTS {
	return &MCTS{
		Manager:           NewStateManager(),
		ExplorationWeight: defaultExplorationWeight,
		DepthPenalty:      defaultDepthPenalty,
		rng:               rng,
	}
}

// Search runs iterations playouts from fen and returns the algebraic token
// of the root child with the most visits, the standard MCTS move choice.
func (m *MCTS) Search(fen string, iterations int) (string, error) {
	g, err := engine.ParseFEN(fen)
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}
	rootNode := m.Manager.GetOrCreate(g, "", nil)
	if rootNode.IsTerminal {
		return "", fmt.Errorf("search: position %q is already terminal", fen)
	}

	// An iteration that fails is skipped; the remaining iterations still run.
	for i := 0; i < iterations; i++ {
		_ = m.iterate(rootNode)
	}

	var best *GameStateNode
	for _, child := range rootNode.Children {
		if best == nil || child.VisitCount > best.VisitCount {
			best = child
		}
	}
	if best == nil {
		return "", fmt.Errorf("search: no iterations produced a child move")
	}
	return best.MoveThatLedHere, nil
}

// iterate runs one select/expand/simulate/backpropagate cycle from root.
func (m *MCTS) iterate(root *GameStateNode) error {
	leaf := m.selectLeaf(root)

	if leaf.IsTerminal {
		g, err := engine.ParseFEN(leaf.FEN)
		if err != nil {
			return err
		}
		outcome := terminalOutcome(g)
		m.backpropagate(leaf, outcome, leaf.Depth)
		return nil
	}

	child, childGame, err := m.expand(leaf)
	if err != nil {
		return err
	}
	outcome, simDepth := m.simulate(childGame)
	m.backpropagate(child, outcome, simDepth)
	return nil
}

// selectLeaf descends from root while the current node is fully expanded
// and has children, picking the child maximizing UCB at each step. It
// stops early at a terminal node even if that node happens to have
// children recorded through some other transposition.
func (m *MCTS) selectLeaf(root *GameStateNode) *GameStateNode {
	cur := root
	for !cur.IsTerminal && cur.FullyExpanded() && len(cur.Children) > 0 {
		cur = m.bestChild(cur)
	}
	return cur
}

func (m *MCTS) bestChild(parent *GameStateNode) *GameStateNode {
	var best *GameStateNode
	bestScore := math.Inf(-1)
	for _, child := range parent.Children {
		score := ucb(parent, child, m.ExplorationWeight, m.DepthPenalty)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// ucb is the formula from spec 4.5.1: exploitation plus an exploration
// bonus that shrinks as the child accumulates visits, minus a small
// penalty for depth. An unvisited child always wins selection.
func ucb(parent, child *GameStateNode, c, delta float64) float64 {
	if child.VisitCount == 0 {
		return math.Inf(1)
	}
	exploit := child.ValueSum / float64(child.VisitCount)
	explore := c * math.Sqrt(math.Log(float64(parent.VisitCount))/float64(child.VisitCount))
	return exploit + explore - delta*float64(child.Depth)
}

// expand pops one untried move from leaf (uniformly at random), applies
// it to a fresh Game parsed from leaf's FEN, and links the resulting
// position into the DAG as leaf's child.
func (m *MCTS) expand(leaf *GameStateNode) (*GameStateNode, *engine.Game, error) {
	idx := m.rng.Intn(len(leaf.UntriedMoves))
	token := leaf.UntriedMoves[idx]
	leaf.UntriedMoves = append(leaf.UntriedMoves[:idx:idx], leaf.UntriedMoves[idx+1:]...)

	g, err := engine.ParseFEN(leaf.FEN)
	if err != nil {
		return nil, nil, err
	}
	if _, err := g.Move(token); err != nil {
		return nil, nil, fmt.Errorf("expand: replaying untried move %q: %w", token, err)
	}
	child := m.Manager.GetOrCreate(g, token, leaf)
	return child, g, nil
}

// simulate replays random legal moves from g until the game ends or the
// ply cap is reached, returning the absolute outcome (+1 White, -1 Black,
// 0 draw) and how many plies the rollout ran.
func (m *MCTS) simulate(g *engine.Game) (float64, int) {
	depth := 0
	for !g.IsTerminated() && depth < maxSimulationPlies {
		tokens := g.LegalTokens()
		if len(tokens) == 0 {
			break
		}
		token := tokens[m.rng.Intn(len(tokens))]
		if _, err := g.Move(token); err != nil {
			break
		}
		depth++
	}
	return terminalOutcome(g), depth
}

// terminalOutcome scores a (possibly non-terminal, if the ply cap was hit)
// position in the absolute White/Black convention spec 4.5.1 specifies.
func terminalOutcome(g *engine.Game) float64 {
	if !g.IsTerminated() || g.IsDrawn() {
		return 0
	}
	winner, ok := g.Winner()
	if !ok {
		return 0
	}
	if winner == engine.White {
		return 1
	}
	return -1
}

// backpropagate walks every parent chain above leaf, adding the depth-
// penalized, ply-oriented value to each ancestor's value_sum and
// incrementing its visit count. A node's stored value is always from the
// perspective of whichever side made the move that reached it, so a
// parent can directly maximize over its children's value_sum; since that
// mover alternates every ply, recomputing the orientation from the node's
// own PlayerTurn at each step has the same effect as the spec's "negate
// at each ply flip" rule without needing to thread a running sign.
func (m *MCTS) backpropagate(leaf *GameStateNode, outcome float64, simDepth int) {
	visited := make(map[uint64]bool)
	var walk func(node *GameStateNode)
	walk = func(node *GameStateNode) {
		if visited[node.Hash] {
			return
		}
		visited[node.Hash] = true

		mover := node.PlayerTurn.Opposite()
		value := outcome
		if mover == engine.Black {
			value = -outcome
		}
		node.VisitCount++
		node.ValueSum += value - m.DepthPenalty*float64(simDepth-node.Depth)

		for _, parent := range node.Parents {
			walk(parent)
		}
	}
	walk(leaf)
}
