package testutil

import (
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// NoonOn returns a clock fixed at 12:00 UTC on date (YYYY-MM-DD), so any
// North American season timezone still reports the same calendar day.
func NoonOn(date string) func() time.Time {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return NowAt(day.Add(12 * time.Hour))
}
