package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nfl-stats-service/internal/config"
	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

func TestProviderFactoryBuildsWrappedFixture(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = "fixture"

	prov := newProviderFactory(nil, nil).build(cfg)
	if prov == nil {
		t.Fatalf("expected provider")
	}

	cat, _ := stats.NewCatalog(stats.DefaultCategories()).Lookup("passing_yards")
	players, err := prov.FetchLeaders(context.Background(), cat)
	if err != nil || len(players) == 0 {
		t.Fatalf("expected fixture rows through wrappers, got %d rows err=%v", len(players), err)
	}
}

func TestProviderFactoryDefaultsScrapeSettings(t *testing.T) {
	if prov := newProviderFactory(nil, nil).build(config.Config{Provider: "fixture"}); prov == nil {
		t.Fatalf("expected provider with default limiter and retry settings")
	}
}
