package agent

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"connectfour/game"
)

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent. A nil rng falls back to a time-seeded
// source.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Random{rng: rng}
}

func (a *Random) Initialize(role game.Mark) {}

func (a *Random) Play(state *game.State) (int, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("no legal moves")
	}
	return moves[a.rng.Intn(len(moves))], nil
}
