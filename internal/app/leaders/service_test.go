package leaders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nfl-stats-service/internal/metrics"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers"
	"github.com/preston-bernstein/nfl-stats-service/internal/snapshots"
	"github.com/preston-bernstein/nfl-stats-service/internal/store"
	"github.com/preston-bernstein/nfl-stats-service/internal/teststubs"
)

type stubProvider struct {
	players []stats.PlayerStat
	err     error
	calls   int
}

func (s *stubProvider) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.players, nil
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]stats.PlayerStat, bool, error) {
	return nil, false, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, []stats.PlayerStat) error {
	return errors.New("cache down")
}

func row(name, team string, v float64) stats.PlayerStat {
	return stats.PlayerStat{Name: name, Team: team, Stat: stats.NumberValue(v)}
}

func unsorted() []stats.PlayerStat {
	return []stats.PlayerStat{
		row("Jared Goff", "DET", 4629),
		row("Patrick Mahomes", "KC", 5250),
		row("Joe Burrow", "CIN", 4918),
	}
}

func newService(p providers.StatsProvider, opts Options) *Service {
	opts.Catalog = stats.NewCatalog(stats.DefaultCategories())
	opts.Provider = p
	return NewService(opts)
}

func TestLeadersRanksAndCaps(t *testing.T) {
	svc := newService(&stubProvider{players: unsorted()}, Options{})

	resp, err := svc.Leaders(context.Background(), "passing_yards", 2)
	require.NoError(t, err)

	assert.Equal(t, stats.StatusOK, resp.Status)
	assert.Equal(t, "passing_yards", resp.StatType)
	assert.Equal(t, 2, resp.Results)
	require.Len(t, resp.Players, 2)
	assert.Equal(t, "Patrick Mahomes", resp.Players[0].Name)
	assert.Equal(t, "Joe Burrow", resp.Players[1].Name)
}

func TestLeadersUnknownCategory(t *testing.T) {
	p := &stubProvider{}
	svc := newService(p, Options{})

	_, err := svc.Leaders(context.Background(), "punt_returns", 5)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Zero(t, p.calls)
}

func TestLeadersCacheHitAvoidsProvider(t *testing.T) {
	p := &stubProvider{players: unsorted()}
	rec := metrics.NewRecorder()
	svc := newService(p, Options{Cache: store.NewMemoryStore(time.Minute), Metrics: rec})
	ctx := context.Background()

	_, err := svc.Leaders(ctx, "passing_yards", 20)
	require.NoError(t, err)
	resp, err := svc.Leaders(ctx, "passing_yards", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, p.calls)
	assert.Equal(t, 1, resp.Results)
	assert.Equal(t, 1, rec.CacheHits())
	assert.Equal(t, 1, rec.CacheMisses())
}

func TestLeadersFallsBackToSnapshot(t *testing.T) {
	dir := t.TempDir()
	writer := snapshots.NewWriter(dir)
	require.NoError(t, writer.WriteLeaders("passing_yards", unsorted()))

	svc := newService(&stubProvider{err: errors.New("upstream down")}, Options{
		Snapshots: snapshots.NewFSStore(dir),
	})

	resp, err := svc.Leaders(context.Background(), "passing_yards", 20)
	require.NoError(t, err)
	assert.Equal(t, stats.StatusOK, resp.Status)
	assert.Equal(t, 3, resp.Results)
	assert.Equal(t, "Patrick Mahomes", resp.Players[0].Name)
}

func TestLeadersEmptyWithoutSnapshot(t *testing.T) {
	svc := newService(&stubProvider{err: errors.New("upstream down")}, Options{
		Snapshots: snapshots.NewFSStore(t.TempDir()),
	})

	resp, err := svc.Leaders(context.Background(), "receptions", 20)
	require.NoError(t, err)
	assert.Equal(t, stats.StatusNoData, resp.Status)
	assert.Equal(t, 0, resp.Results)
	assert.NotNil(t, resp.Players)
}

func TestLeadersWritesSnapshotOnSuccess(t *testing.T) {
	dir := t.TempDir()
	svc := newService(&stubProvider{players: unsorted()}, Options{
		SnapshotWriter: snapshots.NewWriter(dir),
	})

	_, err := svc.Leaders(context.Background(), "passing_yards", 20)
	require.NoError(t, err)

	snap, err := snapshots.NewFSStore(dir).LoadLeaders("passing_yards")
	require.NoError(t, err)
	assert.Len(t, snap.Players, 3)
}

func TestLeadersSurvivesCacheFailures(t *testing.T) {
	p := &stubProvider{players: unsorted()}
	svc := newService(p, Options{Cache: failingCache{}})

	resp, err := svc.Leaders(context.Background(), "passing_yards", 20)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Results)
	assert.Equal(t, 1, p.calls)
}

func TestLeadersWithoutProvider(t *testing.T) {
	svc := NewService(Options{Catalog: stats.NewCatalog(stats.DefaultCategories())})

	resp, err := svc.Leaders(context.Background(), "passing_yards", 20)
	require.NoError(t, err)
	assert.Equal(t, stats.StatusNoData, resp.Status)
	assert.ErrorIs(t, svc.Refresh(context.Background(), "passing_yards"), providers.ErrProviderUnavailable)
}

func TestLimit(t *testing.T) {
	svc := NewService(Options{MaxResults: 50})
	assert.Equal(t, DefaultLimit, svc.Limit(0))
	assert.Equal(t, DefaultLimit, svc.Limit(-3))
	assert.Equal(t, 7, svc.Limit(7))
	assert.Equal(t, 50, svc.Limit(500))
	assert.Equal(t, DefaultMaxResults, NewService(Options{}).Limit(1000))
}

func TestRefreshBypassesCache(t *testing.T) {
	p := &stubProvider{players: unsorted()}
	cache := store.NewMemoryStore(time.Minute)
	svc := newService(p, Options{Cache: cache})
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx, "passing_yards"))
	require.NoError(t, svc.Refresh(ctx, "passing_yards"))
	assert.Equal(t, 2, p.calls)

	cached, ok, err := cache.Get(ctx, "passing_yards")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, cached, 3)

	assert.ErrorIs(t, svc.Refresh(ctx, "nope"), ErrUnknownCategory)
}

func TestRefreshAllJoinsErrors(t *testing.T) {
	p := &stubProvider{err: errors.New("boom")}
	svc := newService(p, Options{})

	err := svc.RefreshAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, len(stats.DefaultCategories()), p.calls)
	assert.Contains(t, err.Error(), "passing_yards")
}

func TestRefreshAllStopsOnCanceledContext(t *testing.T) {
	p := &stubProvider{players: unsorted()}
	svc := newService(p, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, svc.RefreshAll(ctx), context.Canceled)
	assert.Zero(t, p.calls)
}

func TestRefreshAllVisitsCategoriesInKeyOrder(t *testing.T) {
	p := &teststubs.StubProvider{Players: unsorted()}
	svc := newService(p, Options{})

	require.NoError(t, svc.RefreshAll(context.Background()))
	assert.Equal(t, stats.NewCatalog(stats.DefaultCategories()).Keys(), p.Requested())
}

func TestLeadersSnapshotWritesSkipEmptyResults(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{}
	svc := newService(&teststubs.StubProvider{Players: nil}, Options{SnapshotWriter: writer})

	resp, err := svc.Leaders(context.Background(), "rushing_yards", 20)
	require.NoError(t, err)
	assert.Equal(t, stats.StatusNoData, resp.Status)

	_, written := writer.Written("rushing_yards")
	assert.False(t, written)
}

func TestLeadersToleratesSnapshotWriteFailure(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{Err: errors.New("disk full")}
	svc := newService(&teststubs.StubProvider{Players: unsorted()}, Options{SnapshotWriter: writer})

	resp, err := svc.Leaders(context.Background(), "passing_yards", 20)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Results)
}

func TestLeadersFallbackUsesSnapshotStore(t *testing.T) {
	snaps := &teststubs.StubSnapshotStore{Leaders: map[string][]stats.PlayerStat{
		"receptions": {row("Amon-Ra St. Brown", "DET", 119), row("CeeDee Lamb", "DAL", 135)},
	}}
	svc := newService(&teststubs.StubProvider{Err: providers.ErrProviderUnavailable}, Options{Snapshots: snaps})

	resp, err := svc.Leaders(context.Background(), "receptions", 1)
	require.NoError(t, err)
	require.Len(t, resp.Players, 1)
	assert.Equal(t, "CeeDee Lamb", resp.Players[0].Name)

	resp, err = svc.Leaders(context.Background(), "passing_tds", 5)
	require.NoError(t, err)
	assert.Equal(t, stats.StatusNoData, resp.Status)
}
