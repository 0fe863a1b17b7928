package agent

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/rand"

	"connectfour/game"
	"connectfour/searcher"
)

type MinimaxOption func(m *Minimax)

// WithRand injects the random source used to break ties between equally
// good moves. Defaults to a time-seeded source.
func WithRand(rng *rand.Rand) MinimaxOption {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithDisplay renders the board to w before each move decision.
func WithDisplay(w io.Writer) MinimaxOption {
	return func(m *Minimax) {
		m.out = w
	}
}

// WithParallelSearch splits the search across root subtrees.
func WithParallelSearch() MinimaxOption {
	return func(m *Minimax) {
		m.parallel = true
	}
}

// Minimax picks moves by searching depth plies ahead and evaluating the
// frontier, breaking ties between best moves uniformly at random so equally
// good lines are not exploitable.
type Minimax struct {
	search   *searcher.Minimax
	rng      *rand.Rand
	out      io.Writer
	parallel bool
	role     game.Mark
}

func NewMinimax(depth int, evaluate game.Evaluate, options ...MinimaxOption) *Minimax {
	m := &Minimax{
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(m)
	}

	searchOptions := []searcher.Option{searcher.WithEvaluationFn(evaluate)}
	if m.parallel {
		searchOptions = append(searchOptions, searcher.WithParallelRoots())
	}
	m.search = searcher.NewMinimax(depth, searchOptions...)
	return m
}

func (m *Minimax) Initialize(role game.Mark) {
	m.role = role
}

func (m *Minimax) Play(state *game.State) (int, error) {
	if m.out != nil {
		fmt.Fprint(m.out, state)
	}

	root := m.search.Search(state, m.role)
	best := root.BestMoves()
	if len(best) == 0 {
		return 0, fmt.Errorf("no legal moves for %s", m.role)
	}
	return best[m.rng.Intn(len(best))], nil
}
