// Package engine drives a game of Connect Four between two agents,
// alternating turns on the authoritative state until the game is decided.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"connectfour/agent"
	"connectfour/game"
)

// Default board dimensions.
const (
	DefaultCols = 7
	DefaultRows = 6
)

type Option func(e *Engine)

// WithState starts the game from a position other than the empty default
// board.
func WithState(state *game.State) Option {
	return func(e *Engine) {
		if state != nil {
			e.state = state
		}
	}
}

// Result summarizes a finished game.
type Result struct {
	Winner game.Mark // game.None for a draw
	Moves  int
	Final  *game.State
}

// Engine runs a single game. Construct a fresh one per game.
type Engine struct {
	state  *game.State
	agents map[game.Mark]agent.Agent
}

// New pairs the agent playing x against the agent playing o on a standard
// empty board with x to move, unless WithState overrides the start.
func New(x, o agent.Agent, options ...Option) *Engine {
	e := &Engine{
		state: game.NewState(DefaultCols, DefaultRows, game.X),
		agents: map[game.Mark]agent.Agent{
			game.X: x,
			game.O: o,
		},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run alternates turns until the game is decided. Each agent receives an
// independent copy of the state, so its internal exploration can never
// corrupt the authoritative board. An agent error or illegal move aborts
// the game.
func (e *Engine) Run() (Result, error) {
	for mark, a := range e.agents {
		a.Initialize(mark)
	}

	log.Info().Msgf("player %s is starting", e.state.Turn())

	moves := 0
	for !e.state.IsTerminal() {
		mark := e.state.Turn()
		move, err := e.agents[mark].Play(e.state.Copy())
		if err != nil {
			return Result{}, fmt.Errorf("agent %s failed to move: %w", mark, err)
		}

		next, err := e.state.Apply(move)
		if err != nil {
			return Result{}, fmt.Errorf("agent %s played column %d: %w", mark, move, err)
		}
		e.state = next
		moves++

		log.Debug().Msgf("move %d: player %s played column %d", moves, mark, move)
	}

	log.Info().Msgf("game over after %d moves with winner %q", moves, e.state.Winner())

	return Result{
		Winner: e.state.Winner(),
		Moves:  moves,
		Final:  e.state,
	}, nil
}
