package stats

import "sort"

// Rank returns a copy of players ordered by stat descending, capped at limit.
// Ties keep their input order. A non-positive limit keeps every player.
func Rank(players []PlayerStat, limit int) []PlayerStat {
	ranked := make([]PlayerStat, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stat.Float() > ranked[j].Stat.Float()
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
