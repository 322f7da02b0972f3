package snapshots

import (
	"testing"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

func samplePlayers() []stats.PlayerStat {
	return []stats.PlayerStat{
		{Name: "Patrick Mahomes", Team: "KC", Stat: stats.NumberValue(5250)},
		{Name: "Jared Goff", Team: "DET", Stat: stats.NumberValue(4629)},
	}
}

func writeLeaders(t *testing.T, w *Writer, statType string, players []stats.PlayerStat) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for %s", statType)
	}
	if err := w.WriteLeaders(statType, players); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", statType, err)
	}
}
