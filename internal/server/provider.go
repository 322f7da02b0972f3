package server

import (
	"log/slog"

	"github.com/preston-bernstein/nfl-stats-service/internal/config"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers/fixture"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers/nflcom"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.StatsProvider {
	switch cfg.Provider {
	case "nflcom", "":
		return nflcom.NewClient(nflcom.Config{
			UserAgent: cfg.Scrape.UserAgent,
			Timeout:   cfg.Scrape.Timeout,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
