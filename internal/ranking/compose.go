// Package ranking blends season standings with playoff survival counts.
package ranking

import (
	"cmp"
	"slices"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
)

// Weights of the playoff score. Part of the ranking contract.
const (
	TeamWeight   = 10
	PlayerWeight = 5
)

// InPlayoffsFunc reports whether an NHL team abbreviation is still alive.
type InPlayoffsFunc func(abbrev string) bool

// Score computes the composite playoff score.
func Score(teamsInPlayoffs, playersInPlayoffs int) int {
	return teamsInPlayoffs*TeamWeight + playersInPlayoffs*PlayerWeight
}

// Compose builds one PlayoffTeamRanking per season ranking row, sorted by
// playoff score descending with ties left in ranking order.
//
// A nil argument means the dataset is not loaded yet; in that case the result
// is empty rather than partially computed.
func Compose(rankings []fantasy.Ranking, bets []fantasy.TeamBets, rosters map[int]fantasy.TeamRoster, inPlayoffs InPlayoffsFunc) []fantasy.PlayoffTeamRanking {
	out := []fantasy.PlayoffTeamRanking{}
	if rankings == nil || bets == nil || rosters == nil || inPlayoffs == nil {
		return out
	}

	betsByTeam := make(map[int][]fantasy.TeamBet, len(bets))
	for _, tb := range bets {
		if _, ok := betsByTeam[tb.TeamID]; !ok {
			betsByTeam[tb.TeamID] = tb.Bets
		}
	}

	for _, r := range rankings {
		row := fantasy.PlayoffTeamRanking{Ranking: r}

		teamBets := betsByTeam[r.TeamID]
		row.TotalTeams = len(teamBets)
		for _, b := range teamBets {
			if inPlayoffs(b.NHLTeam) {
				row.TeamsInPlayoffs++
			}
		}

		roster := rosters[r.TeamID]
		row.TotalPlayers = len(roster.Players)
		for _, p := range roster.Players {
			if inPlayoffs(p.NHLTeam) {
				row.PlayersInPlayoffs++
			}
		}

		row.PlayoffScore = Score(row.TeamsInPlayoffs, row.PlayersInPlayoffs)
		out = append(out, row)
	}

	slices.SortStableFunc(out, func(a, b fantasy.PlayoffTeamRanking) int {
		return cmp.Compare(b.PlayoffScore, a.PlayoffScore)
	})
	return out
}
