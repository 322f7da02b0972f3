package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankOrdersDescendingAndCaps(t *testing.T) {
	players := []PlayerStat{
		{Name: "low", Stat: NumberValue(100)},
		{Name: "high", Stat: NumberValue(300)},
		{Name: "tie-a", Stat: NumberValue(200)},
		{Name: "tie-b", Stat: TextValue("200")},
	}

	ranked := Rank(players, 3)

	names := make([]string, 0, len(ranked))
	for _, p := range ranked {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"high", "tie-a", "tie-b"}, names)
	assert.Equal(t, "low", players[0].Name, "input must not be reordered")
}

func TestRankNonPositiveLimitKeepsAll(t *testing.T) {
	players := []PlayerStat{{Name: "a"}, {Name: "b"}}
	assert.Len(t, Rank(players, 0), 2)
	assert.Len(t, Rank(nil, 5), 0)
}
