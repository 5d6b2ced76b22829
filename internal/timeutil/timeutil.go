// Package timeutil holds the calendar-date helpers shared by the poller, the
// providers and the HTTP layer. Game days are keyed by YYYY-MM-DD strings.
package timeutil

import "time"

// DateLayout is the game-day key format.
const DateLayout = time.DateOnly

// ParseDate parses a game-day key.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats t as a game-day key in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateIn returns the game-day key of t as seen from loc. A nil loc keeps t's
// location, so a 02:00 UTC instant can still belong to the previous evening's
// slate in the season timezone.
func DateIn(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return FormatDate(t)
}
