package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nfl-stats-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a StatsProvider with exponential backoff, honouring Retry-After on rate limits.
type retryingProvider struct {
	inner        StatsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/baseDelay are <= 0, defaults are used.
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, baseDelay time.Duration) StatsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if baseDelay <= 0 {
		baseDelay = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = baseDelay
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	var players []stats.PlayerStat
	attempt := 0
	policy := &retryAfterBackOff{next: r.newBackOff()}

	operation := func() error {
		attempt++
		start := time.Now()
		result, err := r.inner.FetchLeaders(ctx, category)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			players = result
			return nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
			policy.retryAfter = rlErr.RetryAfter
		}
		if IsPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, category.Key, "provider fetch retry",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, category.Key, "provider fetch failed",
			"attempts", attempt,
			"error", err,
		)
		return nil, err
	}
	return players, nil
}

// retryAfterBackOff serves a pending Retry-After once before falling back to the wrapped policy.
type retryAfterBackOff struct {
	next       backoff.BackOff
	retryAfter time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	if b.retryAfter > 0 {
		d := b.retryAfter
		b.retryAfter = 0
		return d
	}
	return b.next.NextBackOff()
}

func (b *retryAfterBackOff) Reset() {
	b.retryAfter = 0
	b.next.Reset()
}
