package snapshots

import (
	"fmt"
	"path/filepath"
)

const leadersDir = "leaders"

// LeadersSnapshotPath builds the path to the last-good snapshot for a stat type.
func LeadersSnapshotPath(basePath, statType string) string {
	return filepath.Join(basePath, leadersDir, fmt.Sprintf("%s.json", statType))
}

func manifestPath(basePath string) string {
	return filepath.Join(basePath, "manifest.json")
}
