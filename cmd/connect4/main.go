// Command connect4 plays a single interactive game of Connect Four between
// two configurable agents.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"

	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/game"
)

func main() {
	cols := pflag.Int("cols", engine.DefaultCols, "number of board columns")
	rows := pflag.Int("rows", engine.DefaultRows, "number of board rows")
	depth := pflag.Int("depth", 4, "minimax search depth in plies")
	eval := pflag.String("eval", "windows", "evaluation function: zero, three-lines, or windows")
	agentX := pflag.String("x", "human", "agent playing x: human, minimax, random, or first")
	agentO := pflag.String("o", "minimax", "agent playing o: human, minimax, random, or first")
	seed := pflag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	showSearch := pflag.Bool("show-search", false, "render the board before each minimax decision")
	pflag.Parse()

	// Keep log lines off the board rendering unless something is wrong.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	x, err := buildAgent(*agentX, *depth, *eval, rng, *showSearch)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid x agent")
	}
	o, err := buildAgent(*agentO, *depth, *eval, rng, *showSearch)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid o agent")
	}

	start := game.NewState(*cols, *rows, game.X)
	result, err := engine.New(x, o, engine.WithState(start)).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	fmt.Print(result.Final)
	if result.Winner == game.None {
		fmt.Println("It's a draw!")
	} else {
		fmt.Printf("The winner is: %s!\n", result.Winner)
	}
}

func buildAgent(name string, depth int, eval string, rng *rand.Rand, showSearch bool) (agent.Agent, error) {
	switch name {
	case "human":
		return agent.NewHuman(os.Stdin, os.Stdout), nil
	case "minimax":
		evaluate, err := experiments.EvaluateByName(eval)
		if err != nil {
			return nil, err
		}
		options := []agent.MinimaxOption{agent.WithRand(rng)}
		if showSearch {
			options = append(options, agent.WithDisplay(os.Stdout))
		}
		return agent.NewMinimax(depth, evaluate, options...), nil
	case "random":
		return agent.NewRandom(rng), nil
	case "first":
		return agent.NewFirstMove(), nil
	default:
		return nil, fmt.Errorf("unknown agent %q", name)
	}
}

