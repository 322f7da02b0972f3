package testutil

import "time"

// NowAt pins a component clock, such as nflcom's Retry-After base, to t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses v as a UTC instant and panics on malformed input.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}
