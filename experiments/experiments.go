// Package experiments benchmarks agent matchups, aggregating win/draw/loss
// tallies across repeated games and storing per-game records as CSV.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
)

// Evaluation function names used in agent configs.
const (
	EvalZero       = "zero"
	EvalThreeLines = "three-lines"
	EvalWindows    = "windows"
)

// benchmarkMatchups returns the fixed agent pool and the matchups played
// between them, each pair ordered {x, o}.
func benchmarkMatchups() ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	random := metrics.AgentConfig{ID: 1, Kind: "random"}
	threeLines3 := metrics.AgentConfig{ID: 2, Kind: "minimax", Depth: 3, Eval: EvalThreeLines}
	windows3 := metrics.AgentConfig{ID: 3, Kind: "minimax", Depth: 3, Eval: EvalWindows}
	threeLines4 := metrics.AgentConfig{ID: 4, Kind: "minimax", Depth: 4, Eval: EvalThreeLines}
	threeLines2 := metrics.AgentConfig{ID: 5, Kind: "minimax", Depth: 2, Eval: EvalThreeLines}
	windows4 := metrics.AgentConfig{ID: 6, Kind: "minimax", Depth: 4, Eval: EvalWindows}
	windows2 := metrics.AgentConfig{ID: 7, Kind: "minimax", Depth: 2, Eval: EvalWindows}

	configs := []metrics.AgentConfig{
		random, threeLines3, windows3, threeLines4, threeLines2, windows4, windows2,
	}
	matchUps := [][2]metrics.AgentConfig{
		{threeLines3, random},
		{windows3, random},
		{threeLines4, threeLines2},
		{windows4, windows2},
		{windows4, threeLines4},
	}
	return configs, matchUps
}

type gameOutcome struct {
	winner game.Mark
	moves  int
	start  time.Time
	end    time.Time
}

// Run plays every benchmark matchup for cfg.Games fresh games each, tallies
// results from the x agent's perspective, stores CSV reports under
// cfg.Output, and prints the tally table to stdout.
func Run(cfg Config) ([]metrics.MatchupRecord, error) {
	configs, matchUps := benchmarkMatchups()

	log.Info().Msgf("starting benchmark: %d matchups, %d games each, seed %d",
		len(matchUps), cfg.Games, cfg.Seed)

	count := 0
	gameRecords := []metrics.GameRecord{}
	matchupRecords := []metrics.MatchupRecord{}

	for mi, matchUp := range matchUps {
		x := matchUp[0]
		o := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between x=%s and o=%s...",
			mi+1, len(matchUps), x.Label(), o.Label())

		outcomes := make([]gameOutcome, cfg.Games)
		group := new(errgroup.Group)
		if !cfg.Parallel {
			group.SetLimit(1)
		}
		for i := 0; i < cfg.Games; i++ {
			i := i
			// Derived seeds keep games deterministic under a fixed base seed,
			// whether or not they run concurrently.
			seed := cfg.Seed + uint64(mi*cfg.Games+i)
			group.Go(func() error {
				outcome, err := runGame(x, o, seed)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				outcomes[i] = outcome
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}

		record := metrics.MatchupRecord{Matchup: mi + 1, AgentX: x.ID, AgentO: o.ID}
		for _, outcome := range outcomes {
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:        count,
				Matchup:   mi + 1,
				AgentX:    x.ID,
				AgentO:    o.ID,
				Winner:    outcome.winner.String(),
				Moves:     outcome.moves,
				StartTime: outcome.start,
				EndTime:   outcome.end,
				Duration:  outcome.end.Sub(outcome.start),
			})
			switch outcome.winner {
			case game.X:
				record.Wins++
			case game.O:
				record.Losses++
			default:
				record.Draws++
			}
		}
		matchupRecords = append(matchupRecords, record)

		log.Info().Msgf("completed matchup %d of %d: %d wins, %d draws, %d losses",
			mi+1, len(matchUps), record.Wins, record.Draws, record.Losses)
	}

	log.Info().Msg("completed benchmark")

	if err := store(cfg, configs, gameRecords, matchupRecords); err != nil {
		return nil, err
	}
	printTable(configs, matchupRecords)

	return matchupRecords, nil
}

// runGame plays one fresh game between agents built from the two configs.
func runGame(x, o metrics.AgentConfig, seed uint64) (gameOutcome, error) {
	agentX, err := buildAgent(x, seed)
	if err != nil {
		return gameOutcome{}, err
	}
	agentO, err := buildAgent(o, seed+1)
	if err != nil {
		return gameOutcome{}, err
	}

	start := time.Now()
	result, err := engine.New(agentX, agentO).Run()
	if err != nil {
		return gameOutcome{}, err
	}
	return gameOutcome{
		winner: result.Winner,
		moves:  result.Moves,
		start:  start,
		end:    time.Now(),
	}, nil
}

func buildAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	rng := rand.New(rand.NewSource(seed))
	switch config.Kind {
	case "random":
		return agent.NewRandom(rng), nil
	case "minimax":
		evaluate, err := EvaluateByName(config.Eval)
		if err != nil {
			return nil, err
		}
		return agent.NewMinimax(config.Depth, evaluate, agent.WithRand(rng)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

// EvaluateByName maps a benchmark evaluation name to its function.
func EvaluateByName(name string) (game.Evaluate, error) {
	switch name {
	case EvalZero:
		return game.EvaluateZero, nil
	case EvalThreeLines:
		return game.EvaluateThreeLines, nil
	case EvalWindows:
		return game.EvaluateWindows, nil
	default:
		return nil, fmt.Errorf("unknown evaluation function %q", name)
	}
}

func store(cfg Config, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, matchupRecords []metrics.MatchupRecord) error {
	writer, err := metrics.NewWriter(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create benchmark writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMatchupRecords(matchupRecords); err != nil {
		return fmt.Errorf("failed to store matchup records: %w", err)
	}

	log.Info().Msgf("stored benchmark results in %s", writer.BaseDir())
	return nil
}

func printTable(configs []metrics.AgentConfig, records []metrics.MatchupRecord) {
	labels := make(map[int]string, len(configs))
	for _, config := range configs {
		labels[config.ID] = config.Label()
	}

	fmt.Printf("%-60s %6s %6s %6s\n", "matchup", "wins", "draws", "losses")
	for _, record := range records {
		name := fmt.Sprintf("%s vs %s", labels[record.AgentX], labels[record.AgentO])
		fmt.Printf("%-60s %6d %6d %6d\n", name, record.Wins, record.Draws, record.Losses)
	}
}
