package snapshots

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest records when each stat type was last snapshotted.
type Manifest struct {
	Version     int                  `json:"version"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Leaders     map[string]time.Time `json:"leaders"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Leaders:     map[string]time.Time{},
	}
}

// ReadManifest loads the manifest under basePath, or an empty one when missing or unreadable.
func ReadManifest(basePath string) (Manifest, error) {
	f, err := os.Open(manifestPath(basePath))
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	if m.Leaders == nil {
		m.Leaders = map[string]time.Time{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.GeneratedAt = now
	return writeJSONAtomic(manifestPath(basePath), m)
}
