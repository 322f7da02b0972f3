package config

// SnapshotConfig controls last-good leader snapshots on disk.
type SnapshotConfig struct {
	Enabled bool
	Dir     string
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled: boolEnvOrDefault(envSnapshotsEnabled, true),
		Dir:     envOrDefault(envSnapshotDir, defaultSnapshotDir),
	}
}
