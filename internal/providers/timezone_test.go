package providers

import (
	"testing"
	"time"
)

func TestResolveTimezone(t *testing.T) {
	if loc := ResolveTimezone("UTC"); loc == nil || loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %v", loc)
	}
	for _, tz := range []string{"", "Not/AZone"} {
		if loc := ResolveTimezone(tz); loc != nil {
			t.Fatalf("expected nil for %q, got %v", tz, loc)
		}
	}
}

func TestGameDay(t *testing.T) {
	now := time.Date(2024, 4, 21, 2, 0, 0, 0, time.UTC)

	if got := GameDay("2024-05-01", "UTC", now); got != "2024-05-01" {
		t.Fatalf("expected explicit date kept, got %s", got)
	}
	if got := GameDay("", "UTC", now); got != "2024-04-21" {
		t.Fatalf("expected today in UTC, got %s", got)
	}
	if got := GameDay("", "Not/AZone", now); got != "2024-04-21" {
		t.Fatalf("expected clock date for unknown zone, got %s", got)
	}
}
