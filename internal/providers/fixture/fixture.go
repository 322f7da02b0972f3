package fixture

import (
	"context"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// Provider returns a static set of leaders useful for local testing and bootstrapping.
type Provider struct {
	leaders map[string][]stats.PlayerStat
}

// New creates a fixture provider seeded with sample rows for the default categories.
func New() *Provider {
	return &Provider{leaders: defaultLeaders()}
}

// FetchLeaders returns a copy of the sample rows for the category, unsorted.
// Unknown categories yield an empty, non-nil list.
func (p *Provider) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := p.leaders[category.Key]
	out := make([]stats.PlayerStat, len(rows))
	copy(out, rows)
	return out, nil
}

func row(name, team string, value float64) stats.PlayerStat {
	return stats.PlayerStat{Name: name, Team: team, Stat: stats.NumberValue(value)}
}

func defaultLeaders() map[string][]stats.PlayerStat {
	return map[string][]stats.PlayerStat{
		"passing_yards": {
			row("Jared Goff", "DET", 4629),
			row("Patrick Mahomes", "KC", 5250),
			row("Joe Burrow", "CIN", 4918),
			row("Baker Mayfield", "TB", 4500),
		},
		"passing_tds": {
			row("Joe Burrow", "CIN", 43),
			row("Lamar Jackson", "BAL", 41),
			row("Baker Mayfield", "TB", 41),
			row("Sam Darnold", "MIN", 35),
		},
		"rushing_yards": {
			row("Derrick Henry", "BAL", 1921),
			row("Saquon Barkley", "PHI", 2005),
			row("Bijan Robinson", "ATL", 1456),
			row("Jahmyr Gibbs", "DET", 1412),
		},
		"receiving_yards": {
			row("Ja'Marr Chase", "CIN", 1708),
			row("Justin Jefferson", "MIN", 1533),
			row("Brian Thomas Jr.", "JAX", 1282),
			row("Amon-Ra St. Brown", "DET", 1263),
		},
		"receptions": {
			row("Ja'Marr Chase", "CIN", 127),
			row("Amon-Ra St. Brown", "DET", 115),
			row("Brock Bowers", "LV", 112),
			row("Malik Nabers", "NYG", 109),
		},
		"field_goals_made": {
			row("Brandon Aubrey", "DAL", 40),
			row("Chris Boswell", "PIT", 41),
			row("Cameron Dicker", "LAC", 36),
			row("Chase McLaughlin", "TB", 29),
		},
	}
}
