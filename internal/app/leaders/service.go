package leaders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nfl-stats-service/internal/logging"
	"github.com/preston-bernstein/nfl-stats-service/internal/metrics"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers"
	"github.com/preston-bernstein/nfl-stats-service/internal/snapshots"
	"github.com/preston-bernstein/nfl-stats-service/internal/store"
)

const (
	// DefaultLimit applies when a caller asks for zero or fewer rows.
	DefaultLimit = 20
	// DefaultMaxResults caps any single response.
	DefaultMaxResults = 100
)

// ErrUnknownCategory is returned for stat types missing from the catalog.
var ErrUnknownCategory = errors.New("unknown stat type")

// SnapshotWriter persists the last good leader list for a stat type.
type SnapshotWriter interface {
	WriteLeaders(statType string, players []stats.PlayerStat) error
}

// Options wires the service. Cache, Snapshots, and SnapshotWriter are optional.
type Options struct {
	Catalog        stats.Catalog
	Provider       providers.StatsProvider
	Cache          store.Cache
	Snapshots      snapshots.Store
	SnapshotWriter SnapshotWriter
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	MaxResults     int
}

// Service resolves leader lists: cache first, then the provider chain, then the last snapshot.
type Service struct {
	catalog    stats.Catalog
	provider   providers.StatsProvider
	cache      store.Cache
	snapshots  snapshots.Store
	writer     SnapshotWriter
	logger     *slog.Logger
	metrics    *metrics.Recorder
	maxResults int
}

// NewService constructs a Service from opts.
func NewService(opts Options) *Service {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Service{
		catalog:    opts.Catalog,
		provider:   opts.Provider,
		cache:      opts.Cache,
		snapshots:  opts.Snapshots,
		writer:     opts.SnapshotWriter,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		maxResults: maxResults,
	}
}

// Catalog exposes the configured categories.
func (s *Service) Catalog() stats.Catalog {
	return s.catalog
}

// Limit maps a requested row count onto [1, maxResults], using DefaultLimit for n <= 0.
func (s *Service) Limit(n int) int {
	if n <= 0 {
		n = DefaultLimit
	}
	if n > s.maxResults {
		n = s.maxResults
	}
	return n
}

// Leaders returns the top n players for statType ranked by stat descending.
// Upstream failures never surface here; they degrade to the last snapshot or an empty list.
func (s *Service) Leaders(ctx context.Context, statType string, n int) (stats.LeadersResponse, error) {
	cat, ok := s.catalog.Lookup(statType)
	if !ok {
		return stats.LeadersResponse{}, fmt.Errorf("%w: %s", ErrUnknownCategory, statType)
	}
	players := s.load(ctx, cat)
	return stats.NewLeadersResponse(cat.Key, stats.Rank(players, s.Limit(n))), nil
}

// Refresh fetches statType from the provider and stores it, bypassing the cache.
func (s *Service) Refresh(ctx context.Context, statType string) error {
	cat, ok := s.catalog.Lookup(statType)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, statType)
	}
	_, err := s.fetch(ctx, cat)
	return err
}

// RefreshAll refreshes every category and joins the failures.
func (s *Service) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, key := range s.catalog.Keys() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Refresh(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) load(ctx context.Context, cat stats.Category) []stats.PlayerStat {
	logger := logging.FromContext(ctx, s.logger)

	if s.cache != nil {
		players, hit, err := s.cache.Get(ctx, cat.Key)
		if err != nil {
			logging.Warn(logger, "leader cache read failed",
				slog.String(logging.FieldStatType, cat.Key),
				"error", err,
			)
		}
		s.metrics.RecordCacheLookup(cat.Key, hit)
		if hit {
			return players
		}
	}

	players, err := s.fetch(ctx, cat)
	if err == nil {
		return players
	}
	logging.Warn(logger, "leader fetch failed, using fallback",
		slog.String(logging.FieldStatType, cat.Key),
		"error", err,
	)
	return s.fallback(ctx, cat)
}

func (s *Service) fetch(ctx context.Context, cat stats.Category) ([]stats.PlayerStat, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	players, err := s.provider.FetchLeaders(ctx, cat)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []stats.PlayerStat{}
	}

	logger := logging.FromContext(ctx, s.logger)
	if s.cache != nil {
		if err := s.cache.Set(ctx, cat.Key, players); err != nil {
			logging.Warn(logger, "leader cache write failed",
				slog.String(logging.FieldStatType, cat.Key),
				"error", err,
			)
		}
	}
	if s.writer != nil && len(players) > 0 {
		if err := s.writer.WriteLeaders(cat.Key, players); err != nil {
			logging.Warn(logger, "leader snapshot write failed",
				slog.String(logging.FieldStatType, cat.Key),
				"error", err,
			)
		}
	}
	logging.Info(logger, "leaders fetched",
		slog.String(logging.FieldStatType, cat.Key),
		slog.Int(logging.FieldCount, len(players)),
	)
	return players, nil
}

func (s *Service) fallback(ctx context.Context, cat stats.Category) []stats.PlayerStat {
	if s.snapshots == nil {
		return []stats.PlayerStat{}
	}
	snap, err := s.snapshots.LoadLeaders(cat.Key)
	if err != nil {
		logging.Info(logging.FromContext(ctx, s.logger), "no leader snapshot available",
			slog.String(logging.FieldStatType, cat.Key),
			"error", err,
		)
		return []stats.PlayerStat{}
	}
	return snap.Players
}
