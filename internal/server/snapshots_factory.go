package server

import (
	"github.com/preston-bernstein/nfl-stats-service/internal/config"
	"github.com/preston-bernstein/nfl-stats-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

// buildSnapshots returns empty components when snapshots are disabled.
func buildSnapshots(cfg config.Config) snapshotComponents {
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Dir == "" {
		return snapshotComponents{}
	}
	return snapshotComponents{
		store:  snapshots.NewFSStore(cfg.Snapshots.Dir),
		writer: snapshots.NewWriter(cfg.Snapshots.Dir),
	}
}
