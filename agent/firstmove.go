package agent

import (
	"fmt"

	"connectfour/game"
)

// FirstMove always plays the lowest-numbered legal column.
type FirstMove struct{}

func NewFirstMove() *FirstMove {
	return &FirstMove{}
}

func (a *FirstMove) Initialize(role game.Mark) {}

func (a *FirstMove) Play(state *game.State) (int, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("no legal moves")
	}
	return moves[0], nil
}
