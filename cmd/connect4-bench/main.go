// Command connect4-bench runs the fixed benchmark matchups and reports
// win/draw/loss tallies. Settings come from the environment (optionally a
// .env file); flags override.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"connectfour/experiments"
)

func main() {
	games := pflag.Int("games", 0, "games per matchup")
	output := pflag.String("output", "", "root directory for CSV reports")
	seed := pflag.Uint64("seed", 0, "base random seed")
	parallel := pflag.Bool("parallel", false, "run a matchup's games concurrently")
	logLevel := pflag.String("log-level", "info", "log level: debug, info, warn, or error")
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log.Logger = log.Logger.Level(level)

	cfg := experiments.LoadConfig()
	if pflag.Lookup("games").Changed {
		cfg.Games = *games
	}
	if pflag.Lookup("output").Changed {
		cfg.Output = *output
	}
	if pflag.Lookup("seed").Changed {
		cfg.Seed = *seed
	}
	if pflag.Lookup("parallel").Changed {
		cfg.Parallel = *parallel
	}

	if _, err := experiments.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
}
