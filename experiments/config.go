package experiments

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Environment variables configuring the benchmark, optionally loaded from a
// .env file.
const (
	EnvGames    = "CONNECT4_BENCH_GAMES"
	EnvOutput   = "CONNECT4_BENCH_OUTPUT"
	EnvSeed     = "CONNECT4_BENCH_SEED"
	EnvParallel = "CONNECT4_BENCH_PARALLEL"
)

// Config controls a benchmark run.
type Config struct {
	Games    int    // Games per matchup
	Output   string // Root directory for CSV reports
	Seed     uint64 // Base random seed; games derive their own from it
	Parallel bool   // Run a matchup's games concurrently
}

// LoadConfig reads benchmark settings from the environment, after loading a
// .env file when one is present. Unset variables fall back to defaults.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment as is")
	}

	return Config{
		Games:    envInt(EnvGames, 10),
		Output:   envString(EnvOutput, "experiments"),
		Seed:     envUint64(EnvSeed, uint64(time.Now().UnixNano())),
		Parallel: envBool(EnvParallel, false),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Msgf("ignoring %s=%q: %v", key, value, err)
		return fallback
	}
	return parsed
}

func envUint64(key string, fallback uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Warn().Msgf("ignoring %s=%q: %v", key, value, err)
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn().Msgf("ignoring %s=%q: %v", key, value, err)
		return fallback
	}
	return parsed
}
