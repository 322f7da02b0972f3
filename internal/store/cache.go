package store

import (
	"context"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// Cache holds the most recent unranked leader rows per stat type.
type Cache interface {
	// Get returns the cached rows and true on a hit. A miss is not an error.
	Get(ctx context.Context, statType string) ([]stats.PlayerStat, bool, error)
	Set(ctx context.Context, statType string, players []stats.PlayerStat) error
}
