package teams

import "strings"

// PlaceholderAbbrev marks a bracket slot whose team is not decided yet.
const PlaceholderAbbrev = "TBD"

// Team is the NHL reference shape; Abbrev is the canonical key.
type Team struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	Logo   string `json:"logo,omitempty"`
}

// IsPlaceholder reports whether an abbreviation is an undecided seed.
// Empty abbreviations are placeholders too.
func IsPlaceholder(abbrev string) bool {
	trimmed := strings.TrimSpace(abbrev)
	return trimmed == "" || strings.EqualFold(trimmed, PlaceholderAbbrev)
}

// NormalizeAbbrev upper-cases and trims an abbreviation for lookups.
func NormalizeAbbrev(abbrev string) string {
	return strings.ToUpper(strings.TrimSpace(abbrev))
}
