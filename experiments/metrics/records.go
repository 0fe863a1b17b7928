package metrics

import (
	"fmt"
	"time"
)

// AgentConfig identifies one agent build used in a benchmark.
type AgentConfig struct {
	ID    int
	Kind  string // "minimax" or "random"
	Depth int    // Search depth; 0 for non-search agents
	Eval  string // Evaluation function name; "" for non-search agents
}

// Label renders a short human-readable agent description for reports.
func (c AgentConfig) Label() string {
	if c.Kind != "minimax" {
		return c.Kind
	}
	return fmt.Sprintf("%s(depth=%d,%s)", c.Kind, c.Depth, c.Eval)
}

// GameRecord captures one finished benchmark game.
type GameRecord struct {
	ID        int
	Matchup   int
	AgentX    int // AgentConfig.ID
	AgentO    int // AgentConfig.ID
	Winner    string
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// MatchupRecord tallies a matchup's games from the x agent's perspective.
type MatchupRecord struct {
	Matchup int
	AgentX  int // AgentConfig.ID
	AgentO  int // AgentConfig.ID
	Wins    int
	Draws   int
	Losses  int
}
