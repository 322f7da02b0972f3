package store

import (
	"context"
	"sync"
	"time"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// DefaultTTL bounds how long leader rows are served before a refetch.
const DefaultTTL = 5 * time.Minute

type entry struct {
	players   []stats.PlayerStat
	expiresAt time.Time
}

// MemoryStore keeps a thread-safe, TTL-bounded copy of leader rows in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore. A non-positive ttl uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns a copy of the rows for statType if present and not expired.
func (s *MemoryStore) Get(_ context.Context, statType string) ([]stats.PlayerStat, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[statType]
	s.mu.RUnlock()

	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return clonePlayers(e.players), true, nil
}

// Set replaces the rows for statType and restarts its TTL.
func (s *MemoryStore) Set(_ context.Context, statType string, players []stats.PlayerStat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[statType] = entry{
		players:   clonePlayers(players),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// Len reports how many stat types are held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func clonePlayers(players []stats.PlayerStat) []stats.PlayerStat {
	out := make([]stats.PlayerStat, len(players))
	copy(out, players)
	return out
}
