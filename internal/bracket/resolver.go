package bracket

import (
	"sort"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/teams"
)

// Resolver holds the classification of every team in one bracket snapshot.
// A nil Resolver answers false to every predicate.
type Resolver struct {
	currentRound int
	statuses     map[string]Status
}

// facts collected for one team before classification.
type facts struct {
	lost       bool
	won        bool
	pending    bool
	lagging    bool
	laterRound bool
}

// Resolve classifies every non-placeholder team in the bracket. A nil bracket
// yields an empty resolver.
func Resolve(b *playoffs.Bracket) *Resolver {
	r := &Resolver{statuses: make(map[string]Status)}
	if b == nil {
		return r
	}
	r.currentRound = b.CurrentRound

	seen := make(map[string]*facts)
	get := func(abbrev string) *facts {
		f, ok := seen[abbrev]
		if !ok {
			f = &facts{}
			seen[abbrev] = f
		}
		return f
	}

	for _, round := range b.Rounds {
		for _, series := range round.Series {
			sides := [2]playoffs.Seed{series.TopSeed, series.BottomSeed}
			_, decided := series.Winner()
			for i, side := range sides {
				if teams.IsPlaceholder(side.Abbrev) {
					continue
				}
				f := get(teams.NormalizeAbbrev(side.Abbrev))
				// Losing any series eliminates, whichever round it sits in.
				if sides[1-i].Wins >= playoffs.SeriesWinThreshold {
					f.lost = true
				}
				if round.RoundNumber > b.CurrentRound {
					f.laterRound = true
					continue
				}
				switch {
				case side.Wins >= playoffs.SeriesWinThreshold:
					f.won = true
				case decided:
				case round.RoundNumber == b.CurrentRound:
					f.pending = true
				default:
					// Still playing a round the bracket has already moved past.
					f.lagging = true
				}
			}
		}
	}

	for abbrev, f := range seen {
		r.statuses[abbrev] = classify(f)
	}
	return r
}

func classify(f *facts) Status {
	switch {
	case f.lost:
		return Eliminated
	case f.pending:
		return ActiveCurrentRound
	case f.lagging:
		return ActiveEarlierRound
	case f.won || f.laterRound:
		return AdvancedPendingNextOpponent
	default:
		return NotYetInBracket
	}
}

// CurrentRound returns the round pointer of the resolved snapshot.
func (r *Resolver) CurrentRound() int {
	if r == nil {
		return 0
	}
	return r.currentRound
}

// Status returns the classification of abbrev.
func (r *Resolver) Status(abbrev string) Status {
	if r == nil || teams.IsPlaceholder(abbrev) {
		return NotYetInBracket
	}
	return r.statuses[teams.NormalizeAbbrev(abbrev)]
}

// IsTeamInPlayoffs reports whether the team appears in the bracket and is not eliminated.
func (r *Resolver) IsTeamInPlayoffs(abbrev string) bool {
	return r.Status(abbrev).Alive()
}

func (r *Resolver) IsTeamEliminated(abbrev string) bool {
	return r.Status(abbrev) == Eliminated
}

func (r *Resolver) HasTeamAdvanced(abbrev string) bool {
	return r.Status(abbrev) == AdvancedPendingNextOpponent
}

func (r *Resolver) IsTeamInCurrentRound(abbrev string) bool {
	return r.Status(abbrev) == ActiveCurrentRound
}

// Teams lists the abbreviations holding status, sorted.
func (r *Resolver) Teams(status Status) []string {
	out := []string{}
	if r == nil {
		return out
	}
	for abbrev, s := range r.statuses {
		if s == status {
			out = append(out, abbrev)
		}
	}
	sort.Strings(out)
	return out
}

// Statuses returns a copy of the full classification.
func (r *Resolver) Statuses() map[string]Status {
	out := make(map[string]Status)
	if r == nil {
		return out
	}
	for abbrev, s := range r.statuses {
		out[abbrev] = s
	}
	return out
}
