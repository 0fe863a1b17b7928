package agent

import "connectfour/game"

// Agent produces moves for one side of a game.
type Agent interface {
	// Initialize assigns the mark the agent plays. Called once per game,
	// before any moves.
	Initialize(role game.Mark)
	// Play returns the column to drop into, given an isolated copy of the
	// current position. The result must be one of state.LegalMoves().
	Play(state *game.State) (int, error)
}
