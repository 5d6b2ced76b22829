package playoffs

// SeriesWinThreshold is the number of wins that takes a best-of-seven series.
const SeriesWinThreshold = 4

// Seed is one side of a series.
type Seed struct {
	Abbrev string `json:"abbrev"`
	Wins   int    `json:"wins"`
}

// Series is a best-of-seven matchup.
type Series struct {
	SeriesLetter string `json:"seriesLetter,omitempty"`
	TopSeed      Seed   `json:"topSeed"`
	BottomSeed   Seed   `json:"bottomSeed"`
}

// Winner returns the side that reached the win threshold, if any.
func (s Series) Winner() (Seed, bool) {
	switch {
	case s.TopSeed.Wins >= SeriesWinThreshold:
		return s.TopSeed, true
	case s.BottomSeed.Wins >= SeriesWinThreshold:
		return s.BottomSeed, true
	default:
		return Seed{}, false
	}
}

// Round is one ordered round of the bracket.
type Round struct {
	RoundNumber int      `json:"roundNumber"`
	Series      []Series `json:"series"`
}

// Bracket is the full playoff structure with a pointer to the round in play.
type Bracket struct {
	CurrentRound int     `json:"currentRound"`
	Rounds       []Round `json:"rounds"`
}
