package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nfl-stats-service/internal/snapshots"
)

// StubProvider is a test double for providers.StatsProvider.
type StubProvider struct {
	Players []stats.PlayerStat
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}

	mu       sync.Mutex
	statKeys []string
}

// FetchLeaders returns configured players and error while tracking calls.
func (s *StubProvider) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	s.mu.Lock()
	s.statKeys = append(s.statKeys, category.Key)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.mu.Unlock()
	s.Calls.Add(1)
	return s.Players, s.Err
}

// Requested lists the stat types fetched so far, in call order.
func (s *StubProvider) Requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.statKeys))
	copy(out, s.statKeys)
	return out
}

// StubRefresher is a test double for poller.Refresher.
type StubRefresher struct {
	Calls  atomic.Int32
	Notify chan struct{}

	mu  sync.Mutex
	err error
}

// SetErr changes the error returned by subsequent refreshes.
func (s *StubRefresher) SetErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// RefreshAll records the call and returns the configured error.
func (s *StubRefresher) RefreshAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Leaders map[string][]stats.PlayerStat // keyed by stat type
	LoadErr error
}

// LoadLeaders returns the players for statType if present in the Leaders map.
func (s *StubSnapshotStore) LoadLeaders(statType string) (snapshots.Snapshot, error) {
	if s.LoadErr != nil {
		return snapshots.Snapshot{}, s.LoadErr
	}
	players, ok := s.Leaders[statType]
	if !ok {
		return snapshots.Snapshot{}, errors.New("snapshot not found")
	}
	return snapshots.Snapshot{StatType: statType, Players: players}, nil
}

// StubSnapshotWriter is a test double for leaders.SnapshotWriter.
type StubSnapshotWriter struct {
	Err error

	mu      sync.Mutex
	written map[string][]stats.PlayerStat
}

// WriteLeaders records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteLeaders(statType string, players []stats.PlayerStat) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written == nil {
		w.written = make(map[string][]stats.PlayerStat)
	}
	w.written[statType] = players
	return nil
}

// Written returns the players recorded for statType.
func (w *StubSnapshotWriter) Written(statType string) ([]stats.PlayerStat, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	players, ok := w.written[statType]
	return players, ok
}
