package testutil

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/nfl-stats-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir())
}

// WriteSnapshot writes the sample players as the snapshot for statType.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, statType string) {
	t.Helper()
	if err := writeSnapshotPayload(w, statType); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", statType, err)
	}
}

func writeSnapshotPayload(w *snapshots.Writer, statType string) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	return w.WriteLeaders(statType, SamplePlayers())
}

// SnapshotPath returns the expected file path for a stat type snapshot.
func SnapshotPath(w *snapshots.Writer, statType string) string {
	return snapshots.LeadersSnapshotPath(w.BasePath(), statType)
}
