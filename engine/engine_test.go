package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"connectfour/game"
)

// scriptedAgent plays a fixed sequence of columns and records its assigned
// role.
type scriptedAgent struct {
	role  game.Mark
	moves []int
	next  int
	seen  []*game.State
}

func (a *scriptedAgent) Initialize(role game.Mark) {
	a.role = role
}

func (a *scriptedAgent) Play(state *game.State) (int, error) {
	a.seen = append(a.seen, state)
	if a.next >= len(a.moves) {
		return 0, fmt.Errorf("no scripted moves left")
	}
	move := a.moves[a.next]
	a.next++
	return move, nil
}

type failingAgent struct{}

func (failingAgent) Initialize(role game.Mark) {}

func (failingAgent) Play(*game.State) (int, error) { return 0, fmt.Errorf("boom") }

func TestRun(t *testing.T) {
	t.Run("alternates turns until a win", func(t *testing.T) {
		// x stacks column 0 while o stacks column 1; x completes a vertical
		// four on its fourth move.
		x := &scriptedAgent{moves: []int{0, 0, 0, 0}}
		o := &scriptedAgent{moves: []int{1, 1, 1}}

		result, err := New(x, o).Run()

		require.NoError(t, err)
		require.Equal(t, game.X, result.Winner)
		require.Equal(t, 7, result.Moves)
		require.True(t, result.Final.IsTerminal())
		require.Equal(t, game.X, x.role, "first agent should be initialized as x")
		require.Equal(t, game.O, o.role, "second agent should be initialized as o")
	})

	t.Run("reports a draw with no winner", func(t *testing.T) {
		grid, err := game.ParseGrid(
			"oooxxxo",
			"xxxooox",
			"oooxxxo",
			"xxxooox",
			"oooxxxo",
			"xxxooox",
		)
		require.NoError(t, err)
		state, err := game.NewStateFromGrid(7, 6, grid, game.X)
		require.NoError(t, err)

		result, err := New(&scriptedAgent{}, &scriptedAgent{}, WithState(state)).Run()

		require.NoError(t, err)
		require.Equal(t, game.None, result.Winner)
		require.Equal(t, 0, result.Moves)
	})

	t.Run("agents receive isolated copies", func(t *testing.T) {
		x := &scriptedAgent{moves: []int{0, 0, 0, 0}}
		o := &scriptedAgent{moves: []int{1, 1, 1}}

		result, err := New(x, o).Run()
		require.NoError(t, err)

		require.Len(t, x.seen, 4)
		for i, state := range x.seen {
			require.Equal(t, game.X, state.Turn(), "agents see the position on their turn")
			require.False(t, state.Equal(result.Final), "turn %d copy should be frozen at its move", i)
		}
	})

	t.Run("aborts when an agent fails", func(t *testing.T) {
		_, err := New(failingAgent{}, &scriptedAgent{}).Run()

		require.ErrorContains(t, err, "agent x failed to move")
	})

	t.Run("aborts on an illegal move", func(t *testing.T) {
		x := &scriptedAgent{moves: []int{99}}

		_, err := New(x, &scriptedAgent{}).Run()

		require.ErrorIs(t, err, game.ErrColumnOutOfRange)
		require.ErrorContains(t, err, "agent x played column 99")
	})
}
