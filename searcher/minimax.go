package searcher

import (
	"fmt"
	"math"
	"sync"

	"connectfour/game"
)

// valueSeed sits strictly outside the achievable evaluation range (terminal
// values are ±100), so the first real candidate always replaces the seed.
const valueSeed = 1e10

type Option func(m *Minimax)

// WithEvaluationFn sets the leaf evaluation function.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithParallelRoots searches each root subtree in its own goroutine. All
// child values are collected before folding, so results are identical to the
// sequential walk.
func WithParallelRoots() Option {
	return func(m *Minimax) {
		m.parallel = true
	}
}

// Minimax is a depth-limited exhaustive searcher. Zero shared state between
// invocations: every Search builds and owns a fresh tree.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	parallel bool
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic(fmt.Sprintf("invalid search depth %d", depth))
	}
	m := &Minimax{ // Default values
		depth:    depth,
		evaluate: game.EvaluateZero,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search expands a fresh tree from state to the configured depth and returns
// its root, with every node's Value and Successors populated.
func (m *Minimax) Search(state *game.State, role game.Mark) *Node {
	root := NewNode(state)
	if m.parallel {
		m.searchRoots(root, role)
	} else {
		Search(root, m.depth, role, m.evaluate)
	}
	return root
}

// searchRoots splits the tree at the root, walking each move's subtree in
// its own goroutine, then folds the collected child values sequentially.
func (m *Minimax) searchRoots(root *Node, role game.Mark) {
	state := root.State
	moves := state.LegalMoves()
	if m.depth == 0 || len(moves) == 0 {
		Search(root, m.depth, role, m.evaluate)
		return
	}

	// Successors is fully populated before any goroutine starts, so each
	// worker writes only inside its own subtree.
	for _, move := range moves {
		child, err := state.Apply(move)
		if err != nil {
			panic(fmt.Sprintf("applying legal move %d: %v", move, err))
		}
		root.Successors[move] = NewNode(child)
	}

	var wg sync.WaitGroup
	for _, move := range moves {
		child := root.Successors[move]
		wg.Add(1)
		go func() {
			defer wg.Done()
			Search(child, m.depth-1, role, m.evaluate)
		}()
	}
	wg.Wait()

	root.Value = fold(root, moves, state.Turn() == role)
}

// Search performs minimax from node out to depth plies, populating
// node.Value and, for every legal move, a recursively searched child in
// node.Successors. It returns the backed-up value.
//
// A node with no legal moves is evaluated directly at any depth, so the
// fold seeds never leak into results.
func Search(node *Node, depth int, role game.Mark, evaluate game.Evaluate) float64 {
	state := node.State
	moves := state.LegalMoves()

	if depth == 0 || len(moves) == 0 {
		node.Value = evaluate(state, role)
		return node.Value
	}

	for _, move := range moves {
		child, err := state.Apply(move)
		if err != nil {
			panic(fmt.Sprintf("applying legal move %d: %v", move, err))
		}
		childNode := NewNode(child)
		node.Successors[move] = childNode
		Search(childNode, depth-1, role, evaluate)
	}

	node.Value = fold(node, moves, state.Turn() == role)
	return node.Value
}

// fold backs up child values: the maximum when the node's side to move is
// the maximizing player, the minimum otherwise.
func fold(node *Node, moves []int, maximizing bool) float64 {
	value := valueSeed
	if maximizing {
		value = -valueSeed
	}
	for _, move := range moves {
		child := node.Successors[move].Value
		if maximizing {
			value = math.Max(value, child)
		} else {
			value = math.Min(value, child)
		}
	}
	return value
}
