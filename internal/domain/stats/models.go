package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Response status values mirrored by the leaders API.
const (
	StatusOK     = "ok"
	StatusNoData = "no_data"
	StatusError  = "error"
)

// StatValue holds a statistic that may arrive as a JSON number or a JSON string.
// Numbers keep their numeric form; strings are rendered verbatim.
type StatValue struct {
	number   float64
	text     string
	isNumber bool
}

// NumberValue wraps a numeric statistic.
func NumberValue(v float64) StatValue {
	return StatValue{number: v, isNumber: true}
}

// TextValue wraps a textual statistic.
func TextValue(v string) StatValue {
	return StatValue{text: v}
}

// IsNumber reports whether the value was numeric on the wire.
func (v StatValue) IsNumber() bool {
	return v.isNumber
}

// Float returns the numeric value; text values are parsed leniently and yield 0 when not numeric.
func (v StatValue) Float() float64 {
	if v.isNumber {
		return v.number
	}
	parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v.text), ",", ""), 64)
	if err != nil {
		return 0
	}
	return parsed
}

// String formats numbers in their shortest decimal form (5250.0 -> "5250").
func (v StatValue) String() string {
	if v.isNumber {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

func (v StatValue) MarshalJSON() ([]byte, error) {
	if v.isNumber {
		return json.Marshal(v.number)
	}
	return json.Marshal(v.text)
}

func (v *StatValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("stat value: empty input")
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case 'n':
		// null leaves the zero value; callers decide whether that is acceptable.
		return nil
	default:
		var f float64
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return fmt.Errorf("stat value: %w", err)
		}
		*v = NumberValue(f)
		return nil
	}
}

// PlayerStat is one player's statistic row.
type PlayerStat struct {
	Name string    `json:"name"`
	Team string    `json:"team"`
	Stat StatValue `json:"stat"`
}

// LeadersResponse is the payload served by /api/{stat_type}.
type LeadersResponse struct {
	Status   string       `json:"status"`
	StatType string       `json:"stat_type"`
	Results  int          `json:"results"`
	Players  []PlayerStat `json:"players"`
}

// NewLeadersResponse builds a response, deriving status and count from players.
func NewLeadersResponse(statType string, players []PlayerStat) LeadersResponse {
	if players == nil {
		players = []PlayerStat{}
	}
	status := StatusOK
	if len(players) == 0 {
		status = StatusNoData
	}
	return LeadersResponse{
		Status:   status,
		StatType: statType,
		Results:  len(players),
		Players:  players,
	}
}
