package server

import (
	"log/slog"

	"github.com/preston-bernstein/nfl-stats-service/internal/config"
	"github.com/preston-bernstein/nfl-stats-service/internal/metrics"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap puts base behind the shared limiter, then retries each limited attempt.
func (f providerFactory) wrap(cfg config.Config, base providers.StatsProvider) providers.StatsProvider {
	limited := providers.NewRateLimitedProvider(base, cfg.Scrape.RatePerMinute, f.logger)
	return providers.NewRetryingProvider(
		limited,
		f.logger,
		f.metrics,
		normalizeProviderName(cfg.Provider, base),
		cfg.Scrape.RetryAttempts,
		cfg.Scrape.RetryBackoff,
	)
}
