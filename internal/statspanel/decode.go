package statspanel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// Pointers distinguish absent or null fields from empty ones.
type wireRecord struct {
	Name *string          `json:"name"`
	Team *string          `json:"team"`
	Stat *stats.StatValue `json:"stat"`
}

type wireResponse struct {
	Players *[]*wireRecord `json:"players"`
}

// decodeBody parses a stats payload. Syntax and type errors are ParseErrors;
// structurally incomplete payloads are RenderFaults.
func decodeBody(body io.Reader) ([]stats.PlayerStat, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read body: %w", err)}
	}

	var payload wireResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ParseError{Err: err}
	}
	if payload.Players == nil {
		return nil, &RenderFault{Index: -1, Err: errors.New("players is not a list")}
	}

	records := *payload.Players
	out := make([]stats.PlayerStat, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, &RenderFault{Index: i, Err: errors.New("record is null")}
		}
		switch {
		case rec.Name == nil:
			return nil, &RenderFault{Index: i, Field: "name"}
		case rec.Team == nil:
			return nil, &RenderFault{Index: i, Field: "team"}
		case rec.Stat == nil:
			return nil, &RenderFault{Index: i, Field: "stat"}
		}
		out = append(out, stats.PlayerStat{Name: *rec.Name, Team: *rec.Team, Stat: *rec.Stat})
	}
	return out, nil
}
