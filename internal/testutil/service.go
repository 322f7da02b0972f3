package testutil

import (
	"time"

	"github.com/preston-bernstein/nfl-stats-service/internal/app/leaders"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers"
	"github.com/preston-bernstein/nfl-stats-service/internal/store"
)

// NewLeadersService builds a leaders service over the built-in catalog with an in-memory cache.
func NewLeadersService(p providers.StatsProvider) *leaders.Service {
	return leaders.NewService(leaders.Options{
		Catalog:  SampleCatalog(),
		Provider: p,
		Cache:    store.NewMemoryStore(time.Minute),
	})
}
