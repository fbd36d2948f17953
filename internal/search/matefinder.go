package search

import (
	"fmt"

	"chessforge/internal/engine"
)

// MoveNode is one ply of the forced-mate search tree (spec 4.5.2):
// alternating seeker/defender turns, aggregated by AND/OR over children.
type MoveNode struct {
	Move           string
	Depth          int
	Parent         *MoveNode
	Children       []*MoveNode
	PlayerTurn     engine.Color
	SeekingMateFor engine.Color
	IsCheckmate    bool
}

// Route is one line of a retrieved mating sequence: the move played and
// the (possibly several, if the defender had more than one losing reply)
// continuations beneath it.
type Route struct {
	Move     string
	Depth    int
	SubRoute []Route
}

// MateFinder is the forced-mate detector: a depth-bounded, alternating
// search where the seeker only considers checking moves and the defender
// considers everything, aggregated AND/OR per spec 4.5.2.
type MateFinder struct {
	MaxDepth int
}

// NewMateFinder returns a finder bounded to maxDepth plies.
func NewMateFinder(maxDepth int) *MateFinder {
	return &MateFinder{MaxDepth: maxDepth}
}

// Find searches for a forced mate for seeker starting at fen. It returns
// the root of the explored tree (whose IsCheckmate flag reports whether a
// forced mate was found) and an error only for a malformed FEN.
func (f *MateFinder) Find(fen string, seeker engine.Color) (*MoveNode, error) {
	g, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("matefinder: %w", err)
	}
	root := &MoveNode{
		PlayerTurn:     g.SideToMove,
		SeekingMateFor: seeker,
	}
	f.search(g, root, 0)
	return root, nil
}

// search recurses per spec 4.5.2's aggregation rule: on the seeker's turn
// a node is checkmate if ANY child is checkmate (one reply is enough); on
// the defender's turn it is checkmate only if ALL children are checkmate
// (every defense loses) and the defender has at least one legal move — a
// stalemate is an escape, not a mate.
func (f *MateFinder) search(g *engine.Game, node *MoveNode, depth int) bool {
	if depth > f.MaxDepth {
		return false
	}

	if g.IsTerminated() {
		if !g.IsDrawn() {
			if winner, ok := g.Winner(); ok && winner == node.SeekingMateFor {
				node.IsCheckmate = true
				return true
			}
		}
		return false
	}

	seekersTurn := g.SideToMove == node.SeekingMateFor
	candidates := candidateMoves(g, seekersTurn)
	if len(candidates) == 0 {
		return false
	}

	if seekersTurn {
		found := false
		for _, mv := range candidates {
			child := f.applyAndRecurse(g, node, mv, depth)
			if child.IsCheckmate {
				found = true
			}
		}
		node.IsCheckmate = found
		return found
	}

	allLose := true
	for _, mv := range candidates {
		child := f.applyAndRecurse(g, node, mv, depth)
		if !child.IsCheckmate {
			allLose = false
		}
	}
	node.IsCheckmate = allLose
	return allLose
}

// applyAndRecurse forks g with mv applied, builds the child MoveNode, and
// recurses. Search components never mutate a caller's Game directly, so
// every branch works off its own clone.
func (f *MateFinder) applyAndRecurse(g *engine.Game, parent *MoveNode, token string, depth int) *MoveNode {
	clone := g.Clone()
	_, _ = clone.Move(token) // token came from clone's own LegalTokens/check filter

	child := &MoveNode{
		Move:           token,
		Depth:          depth + 1,
		Parent:         parent,
		PlayerTurn:     clone.SideToMove,
		SeekingMateFor: parent.SeekingMateFor,
	}
	parent.Children = append(parent.Children, child)
	f.search(clone, child, depth+1)
	return child
}

// candidateMoves returns the mate-seeker's checking moves only, or every
// legal move for the defender.
func candidateMoves(g *engine.Game, seekersTurn bool) []string {
	tokens := g.LegalTokens()
	if !seekersTurn {
		return tokens
	}

	var checks []string
	for _, tok := range tokens {
		clone := g.Clone()
		if _, err := clone.Move(tok); err != nil {
			continue
		}
		if clone.Board.InCheck(clone.SideToMove) {
			checks = append(checks, tok)
		}
	}
	return checks
}

// ShortestRoutes walks root's is_checkmate children, keeping only the
// routes whose depth equals the minimum depth at which a mate was found,
// per spec 4.5.2's "callers can retrieve the shortest mating line(s)".
func ShortestRoutes(root *MoveNode) []Route {
	if !root.IsCheckmate {
		return nil
	}
	minDepth := minMateDepth(root)
	return collectRoutes(root, minDepth)
}

// minMateDepth finds the shallowest depth at which any descendant
// achieves is_checkmate, scanning only through the checkmate spine (a
// node whose IsCheckmate is false carries no mate beneath it to find).
func minMateDepth(node *MoveNode) int {
	if len(node.Children) == 0 {
		return node.Depth
	}
	best := -1
	for _, child := range node.Children {
		if !child.IsCheckmate {
			continue
		}
		d := minMateDepth(child)
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return node.Depth
	}
	return best
}

func collectRoutes(node *MoveNode, minDepth int) []Route {
	var routes []Route
	for _, child := range node.Children {
		if !child.IsCheckmate {
			continue
		}
		if len(child.Children) == 0 {
			if child.Depth != minDepth {
				continue
			}
			routes = append(routes, Route{Move: child.Move, Depth: child.Depth})
			continue
		}
		subs := collectRoutes(child, minDepth)
		if len(subs) == 0 {
			continue
		}
		routes = append(routes, Route{Move: child.Move, Depth: child.Depth, SubRoute: subs})
	}
	return routes
}
