package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

type catalogFile struct {
	Categories []stats.Category `yaml:"categories"`
}

// LoadCatalog builds the stat catalog. An empty path yields the built-in categories;
// otherwise the YAML file replaces them entirely.
func LoadCatalog(path string) (stats.Catalog, error) {
	if path == "" {
		return stats.NewCatalog(stats.DefaultCategories()), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return stats.Catalog{}, fmt.Errorf("reading categories file: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return stats.Catalog{}, fmt.Errorf("parsing categories file: %w", err)
	}
	catalog := stats.NewCatalog(file.Categories)
	if catalog.Len() == 0 {
		return stats.Catalog{}, fmt.Errorf("categories file %s defines no usable categories", path)
	}
	return catalog, nil
}
