package statspanel

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// DefaultStatLabel heads the statistic column.
const DefaultStatLabel = "Yards"

var tableTemplate = template.Must(template.New("stats-table").Parse(
	`<table><tr><th>Player</th><th>Team</th><th>{{.Label}}</th></tr>` +
		`{{range .Players}}<tr><td>{{.Name}}</td><td>{{.Team}}</td><td>{{.Stat}}</td></tr>{{end}}` +
		`</table>`,
))

// RenderTable builds the full table markup: one header row then one row per player in order.
// Cell text is HTML-escaped.
func RenderTable(label string, players []stats.PlayerStat) (markup string, err error) {
	if label == "" {
		label = DefaultStatLabel
	}
	defer func() {
		if r := recover(); r != nil {
			err = &RenderFault{Index: -1, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	var b strings.Builder
	data := struct {
		Label   string
		Players []stats.PlayerStat
	}{Label: label, Players: players}
	if execErr := tableTemplate.Execute(&b, data); execErr != nil {
		return "", &RenderFault{Index: -1, Err: execErr}
	}
	return b.String(), nil
}
