package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	writer, err := NewWriter(root)
	require.NoError(t, err)

	t.Run("agent configs", func(t *testing.T) {
		err := writer.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "random"},
			{ID: 2, Kind: "minimax", Depth: 3, Eval: "windows"},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.BaseDir(), "agent_configs.csv"))
		require.Equal(t, []string{"id", "kind", "depth", "eval"}, rows[0])
		require.Equal(t, []string{"1", "random", "0", ""}, rows[1])
		require.Equal(t, []string{"2", "minimax", "3", "windows"}, rows[2])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		err := writer.WriteGameRecords([]GameRecord{{
			ID:        1,
			Matchup:   2,
			AgentX:    1,
			AgentO:    2,
			Winner:    "x",
			Moves:     17,
			StartTime: start,
			EndTime:   start.Add(time.Second),
			Duration:  time.Second,
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.BaseDir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{
			"1", "2", "1", "2", "x", "17",
			"2025-01-02T03:04:05Z", "2025-01-02T03:04:06Z", "1s",
		}, rows[1])
	})

	t.Run("matchup records", func(t *testing.T) {
		err := writer.WriteMatchupRecords([]MatchupRecord{
			{Matchup: 1, AgentX: 2, AgentO: 1, Wins: 8, Draws: 1, Losses: 1},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.BaseDir(), "matchup_records.csv"))
		require.Equal(t, []string{"matchup", "agent_x", "agent_o", "wins", "draws", "losses"}, rows[0])
		require.Equal(t, []string{"1", "2", "1", "8", "1", "1"}, rows[1])
	})
}

func TestAgentConfigLabel(t *testing.T) {
	require.Equal(t, "random", AgentConfig{Kind: "random"}.Label())
	require.Equal(t, "minimax(depth=4,windows)",
		AgentConfig{Kind: "minimax", Depth: 4, Eval: "windows"}.Label())
}
