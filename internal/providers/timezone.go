package providers

import (
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/timeutil"
)

// ResolveTimezone loads the season timezone named in a games request. Empty
// or unknown names return nil so callers fall back to their own clock.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}

// GameDay resolves the date of a games request: date itself when set,
// otherwise today in tz.
func GameDay(date, tz string, now time.Time) string {
	if date != "" {
		return date
	}
	return timeutil.DateIn(now, ResolveTimezone(tz))
}
