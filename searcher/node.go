package searcher

import (
	"slices"

	"connectfour/game"
)

// Node is one position in a minimax tree. A single type serves internal and
// leaf nodes: leaves simply have an empty Successors map. Each node
// exclusively owns its children, and a tree lives only for one move
// decision.
type Node struct {
	State      *game.State
	Value      float64
	Successors map[int]*Node
}

func NewNode(state *game.State) *Node {
	return &Node{
		State:      state,
		Successors: make(map[int]*Node),
	}
}

// BestMoves lists every root move whose child value is maximal, in ascending
// column order. It is empty for unexpanded nodes.
func (n *Node) BestMoves() []int {
	var best []int
	bestValue := 0.0
	for _, move := range n.sortedMoves() {
		value := n.Successors[move].Value
		switch {
		case len(best) == 0 || value > bestValue:
			best = []int{move}
			bestValue = value
		case value == bestValue:
			best = append(best, move)
		}
	}
	return best
}

func (n *Node) sortedMoves() []int {
	moves := make([]int, 0, len(n.Successors))
	for move := range n.Successors {
		moves = append(moves, move)
	}
	slices.Sort(moves)
	return moves
}

// Equal recursively compares two trees over state, value, and successors.
func (n *Node) Equal(other *Node) bool {
	if other == nil {
		return false
	}
	if n.Value != other.Value || !n.State.Equal(other.State) {
		return false
	}
	if len(n.Successors) != len(other.Successors) {
		return false
	}
	for move, child := range n.Successors {
		otherChild, ok := other.Successors[move]
		if !ok || !child.Equal(otherChild) {
			return false
		}
	}
	return true
}
