package testutil

import (
	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// SamplePlayer returns a single leader row.
func SamplePlayer(name, team string, value float64) stats.PlayerStat {
	return stats.PlayerStat{Name: name, Team: team, Stat: stats.NumberValue(value)}
}

// SamplePlayers returns three passing-yards rows in unranked order.
func SamplePlayers() []stats.PlayerStat {
	return []stats.PlayerStat{
		SamplePlayer("Jared Goff", "DET", 4629),
		SamplePlayer("Patrick Mahomes", "KC", 5250),
		SamplePlayer("Joe Burrow", "CIN", 4918),
	}
}

// SampleCatalog returns the built-in categories.
func SampleCatalog() stats.Catalog {
	return stats.NewCatalog(stats.DefaultCategories())
}
