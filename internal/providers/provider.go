package providers

import (
	"context"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// StatsProvider fetches the leader rows for one category from an upstream source.
// Rows come back unranked and uncapped; ranking happens in the leaders service.
type StatsProvider interface {
	FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error)
}
