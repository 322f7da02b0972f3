package stats

import (
	"sort"
	"strings"
)

const nflStatsBase = "https://www.nfl.com/stats/player-stats/category"

// Category describes one NFL.com leaders table and the column holding its statistic.
type Category struct {
	Key    string `json:"key" yaml:"key"`
	URL    string `json:"url" yaml:"url"`
	Column string `json:"column" yaml:"column"`
	Label  string `json:"label" yaml:"label"`
}

// DefaultCategories returns the built-in 2025 regular season categories.
func DefaultCategories() []Category {
	return []Category{
		{Key: "passing_yards", URL: nflStatsBase + "/passing/2025/REG/all/passingyards/desc", Column: "YDS", Label: "Yards"},
		{Key: "passing_tds", URL: nflStatsBase + "/passing/2025/REG/all/passingtouchdowns/desc", Column: "TD", Label: "TDs"},
		{Key: "rushing_yards", URL: nflStatsBase + "/rushing/2025/REG/all/rushingyards/desc", Column: "YDS", Label: "Yards"},
		{Key: "receiving_yards", URL: nflStatsBase + "/receiving/2025/REG/all/receivingyards/desc", Column: "YDS", Label: "Yards"},
		{Key: "receptions", URL: nflStatsBase + "/receiving/2025/REG/all/receptions/desc", Column: "REC", Label: "Receptions"},
		{Key: "field_goals_made", URL: nflStatsBase + "/field-goals-made/2025/REG/all/fieldgoalsmade/desc", Column: "FGM", Label: "FGM"},
	}
}

// Catalog indexes categories by key. The zero value is empty and safe to use.
type Catalog struct {
	byKey map[string]Category
	order []string
}

// NewCatalog builds a catalog; later entries with the same key replace earlier ones
// but keep the first entry's position. Entries without a key or URL are skipped.
func NewCatalog(categories []Category) Catalog {
	byKey := make(map[string]Category, len(categories))
	order := make([]string, 0, len(categories))
	for _, c := range categories {
		c.Key = strings.TrimSpace(c.Key)
		if c.Key == "" || c.URL == "" {
			continue
		}
		if c.Label == "" {
			c.Label = c.Column
		}
		if _, seen := byKey[c.Key]; !seen {
			order = append(order, c.Key)
		}
		byKey[c.Key] = c
	}
	return Catalog{byKey: byKey, order: order}
}

// Lookup returns the category for key.
func (c Catalog) Lookup(key string) (Category, bool) {
	cat, ok := c.byKey[key]
	return cat, ok
}

// Keys returns the category keys in sorted order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c.byKey))
	for k := range c.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Declared returns the category keys in the order they were first declared.
func (c Catalog) Declared() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Categories returns all categories sorted by key.
func (c Catalog) Categories() []Category {
	keys := c.Keys()
	out := make([]Category, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.byKey[k])
	}
	return out
}

// Len reports the number of categories.
func (c Catalog) Len() int {
	return len(c.byKey)
}
