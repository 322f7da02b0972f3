package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// Writer persists leader snapshots and keeps the manifest current.
type Writer struct {
	basePath string
	now      func() time.Time
	mu       sync.Mutex
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{
		basePath: basePath,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteLeaders replaces the snapshot for statType. Unchanged player lists leave the
// file untouched but still bump the manifest timestamp.
func (w *Writer) WriteLeaders(statType string, players []stats.PlayerStat) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if statType == "" {
		return fmt.Errorf("stat type required")
	}
	if players == nil {
		players = []stats.PlayerStat{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	target := LeadersSnapshotPath(w.basePath, statType)
	if !w.samePlayers(target, players) {
		snap := Snapshot{StatType: statType, SavedAt: now, Players: players}
		if err := writeJSONAtomic(target, snap); err != nil {
			return err
		}
	}
	return w.updateManifest(statType, now)
}

func (w *Writer) samePlayers(path string, players []stats.PlayerStat) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	var existing Snapshot
	if err := json.NewDecoder(f).Decode(&existing); err != nil {
		return false
	}
	a, errA := json.Marshal(existing.Players)
	b, errB := json.Marshal(players)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

func (w *Writer) updateManifest(statType string, now time.Time) error {
	m, _ := ReadManifest(w.basePath)
	m.Leaders[statType] = now
	return writeManifest(w.basePath, m, now)
}

// writeJSONAtomic writes payload to a temp file next to target and renames it into place.
func writeJSONAtomic(target string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
