package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/bracket"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/players"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
)

func bostonOverToronto() *bracket.Resolver {
	return bracket.Resolve(&playoffs.Bracket{
		CurrentRound: 1,
		Rounds: []playoffs.Round{{
			RoundNumber: 1,
			Series: []playoffs.Series{{
				TopSeed:    playoffs.Seed{Abbrev: "BOS", Wins: 4},
				BottomSeed: playoffs.Seed{Abbrev: "TOR", Wins: 2},
			}},
		}},
	})
}

func skaters(abbrevs ...string) fantasy.TeamRoster {
	roster := fantasy.TeamRoster{Players: []players.Player{}}
	for _, a := range abbrevs {
		roster.Players = append(roster.Players, players.Player{NHLTeam: a})
	}
	return roster
}

func TestScenarioSingleTeamScore(t *testing.T) {
	got := Compose(
		[]fantasy.Ranking{{TeamID: 1, TeamName: "Alpha", Rank: 1}},
		[]fantasy.TeamBets{{TeamID: 1, Bets: []fantasy.TeamBet{{NHLTeam: "BOS"}, {NHLTeam: "TOR"}}}},
		map[int]fantasy.TeamRoster{1: skaters("BOS", "BOS")},
		bostonOverToronto().IsTeamInPlayoffs,
	)

	require.Len(t, got, 1)
	row := got[0]
	assert.Equal(t, "Alpha", row.TeamName)
	assert.Equal(t, 1, row.TeamsInPlayoffs)
	assert.Equal(t, 2, row.TotalTeams)
	assert.Equal(t, 2, row.PlayersInPlayoffs)
	assert.Equal(t, 2, row.TotalPlayers)
	assert.Equal(t, 20, row.PlayoffScore)
}

func TestComposeSortsByScoreKeepingTies(t *testing.T) {
	rankings := []fantasy.Ranking{
		{TeamID: 1, TeamName: "Alpha", Rank: 1},
		{TeamID: 2, TeamName: "Beta", Rank: 2},
		{TeamID: 3, TeamName: "Gamma", Rank: 3},
		{TeamID: 4, TeamName: "Delta", Rank: 4},
	}
	bets := []fantasy.TeamBets{
		{TeamID: 1, Bets: []fantasy.TeamBet{{NHLTeam: "TOR"}}},
		{TeamID: 2, Bets: []fantasy.TeamBet{{NHLTeam: "BOS"}}},
		{TeamID: 3, Bets: []fantasy.TeamBet{{NHLTeam: "BOS"}}},
		{TeamID: 3, Bets: []fantasy.TeamBet{{NHLTeam: "TOR"}, {NHLTeam: "BOS"}}},
	}
	rosters := map[int]fantasy.TeamRoster{
		1: skaters("TOR"),
		2: skaters("TOR", "BOS"),
		3: skaters("TOR", "BOS"),
	}

	got := Compose(rankings, bets, rosters, bostonOverToronto().IsTeamInPlayoffs)
	require.Len(t, got, 4)

	names := []string{}
	for _, row := range got {
		names = append(names, row.TeamName)
		assert.Equal(t, Score(row.TeamsInPlayoffs, row.PlayersInPlayoffs), row.PlayoffScore)
	}
	assert.Equal(t, []string{"Beta", "Gamma", "Alpha", "Delta"}, names)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].PlayoffScore, got[i].PlayoffScore)
	}

	delta := got[3]
	assert.Equal(t, 0, delta.TotalTeams)
	assert.Equal(t, 0, delta.TotalPlayers)
	assert.Equal(t, 4, delta.Rank)
}

func TestComposeRequiresEveryDataset(t *testing.T) {
	rankings := []fantasy.Ranking{{TeamID: 1}}
	bets := []fantasy.TeamBets{}
	rosters := map[int]fantasy.TeamRoster{}
	alive := func(string) bool { return true }

	assert.Empty(t, Compose(nil, bets, rosters, alive))
	assert.Empty(t, Compose(rankings, nil, rosters, alive))
	assert.Empty(t, Compose(rankings, bets, nil, alive))
	assert.Empty(t, Compose(rankings, bets, rosters, nil))
	assert.NotNil(t, Compose(nil, nil, nil, nil))

	got := Compose(rankings, bets, rosters, alive)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].PlayoffScore)
}

func TestScoreWeights(t *testing.T) {
	assert.Equal(t, 0, Score(0, 0))
	assert.Equal(t, 10, Score(1, 0))
	assert.Equal(t, 5, Score(0, 1))
	assert.Equal(t, 35, Score(2, 3))
}
