package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// Snapshot is the last successfully scraped, unranked leader list for one stat type.
type Snapshot struct {
	StatType string             `json:"stat_type"`
	SavedAt  time.Time          `json:"saved_at"`
	Players  []stats.PlayerStat `json:"players"`
}

// Store defines how snapshots are loaded.
type Store interface {
	LoadLeaders(statType string) (Snapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadLeaders reads {basePath}/leaders/{statType}.json.
// A missing file surfaces as an error satisfying errors.Is(err, os.ErrNotExist).
func (s *FSStore) LoadLeaders(statType string) (Snapshot, error) {
	if s == nil {
		return Snapshot{}, errors.New("snapshot store not configured")
	}
	if statType == "" {
		return Snapshot{}, errors.New("snapshot stat type required")
	}
	f, err := os.Open(LeadersSnapshotPath(s.basePath, statType))
	if err != nil {
		return Snapshot{}, err
	}
	defer f.Close()

	var snap Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return Snapshot{}, err
	}
	if snap.StatType == "" {
		snap.StatType = statType
	}
	if snap.Players == nil {
		snap.Players = []stats.PlayerStat{}
	}
	return snap, nil
}
