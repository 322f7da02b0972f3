package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

const defaultRequestsPerMinute = 30

// rateLimitedProvider wraps a StatsProvider and spaces upstream calls with a token bucket.
type rateLimitedProvider struct {
	next    StatsProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a StatsProvider allowing perMinute calls per minute with a burst of one.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next StatsProvider, perMinute int, logger *slog.Logger) StatsProvider {
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", category.Key, "provider unavailable")
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", category.Key, "rate-limited fetch canceled", "error", err)
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", category.Key, "rate-limited provider fetch")
	return p.next.FetchLeaders(ctx, category)
}
