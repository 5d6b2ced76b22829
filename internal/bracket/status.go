package bracket

import "strings"

// Status is the single classification a team holds in a bracket snapshot.
type Status int

const (
	NotYetInBracket Status = iota
	ActiveCurrentRound
	AdvancedPendingNextOpponent
	Eliminated
	// ActiveEarlierRound is a team whose series in a round before the current
	// one is still undecided. It is in the playoffs but neither in the current
	// round nor advanced.
	ActiveEarlierRound
)

var statusNames = map[Status]string{
	NotYetInBracket:             "not_in_bracket",
	ActiveCurrentRound:          "active",
	AdvancedPendingNextOpponent: "advanced",
	Eliminated:                  "eliminated",
	ActiveEarlierRound:          "active_earlier_round",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[NotYetInBracket]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if strings.EqualFold(name, string(text)) {
			*s = status
			return nil
		}
	}
	*s = NotYetInBracket
	return nil
}

// Alive reports whether the status counts as still in the playoffs.
func (s Status) Alive() bool {
	switch s {
	case ActiveCurrentRound, AdvancedPendingNextOpponent, ActiveEarlierRound:
		return true
	}
	return false
}
