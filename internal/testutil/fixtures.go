package testutil

import (
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/players"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/teams"
)

// SampleRegistry returns two registered fantasy teams: 1 "Alpha" and 2 "Beta".
func SampleRegistry() []fantasy.Team {
	return []fantasy.Team{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Beta"},
	}
}

// SamplePlayer returns a roster entry owned by owner with the given points.
func SamplePlayer(id, nhlTeam string, owner players.FantasyRef, points float64) players.Player {
	return players.Player{
		ID:          id,
		Name:        "Player " + id,
		NHLTeam:     nhlTeam,
		FantasyTeam: owner,
		Points:      players.Points(points),
	}
}

// SampleGame returns a BOS (home) vs TOR (away) game with one Alpha player on
// each roster and one Beta player on the away roster.
func SampleGame(id string) games.Game {
	return games.Game{
		ID:       id,
		State:    games.StateFuture,
		HomeTeam: teams.Team{Abbrev: "BOS", Name: "Boston Bruins"},
		AwayTeam: teams.Team{Abbrev: "TOR", Name: "Toronto Maple Leafs"},
		HomeTeamPlayers: []players.Player{
			SamplePlayer(id+"-h1", "BOS", players.FantasyRef{ID: 1}, 2),
		},
		AwayTeamPlayers: []players.Player{
			SamplePlayer(id+"-a1", "TOR", players.FantasyRef{Name: "alpha"}, 1),
			SamplePlayer(id+"-a2", "TOR", players.FantasyRef{Name: "Beta"}, 3),
		},
	}
}

// SampleDayResponse builds a DayResponse with a single sample game and date.
func SampleDayResponse(date string, id string) games.DayResponse {
	return games.NewDayResponse(date, []games.Game{SampleGame(id)})
}

// SampleBracket returns a two-round bracket in round 2: BOS beat TOR, FLA beat
// TBL, and BOS vs FLA is in progress.
func SampleBracket() *playoffs.Bracket {
	return &playoffs.Bracket{
		CurrentRound: 2,
		Rounds: []playoffs.Round{
			{
				RoundNumber: 1,
				Series: []playoffs.Series{
					{SeriesLetter: "A", TopSeed: playoffs.Seed{Abbrev: "BOS", Wins: 4}, BottomSeed: playoffs.Seed{Abbrev: "TOR", Wins: 3}},
					{SeriesLetter: "B", TopSeed: playoffs.Seed{Abbrev: "FLA", Wins: 4}, BottomSeed: playoffs.Seed{Abbrev: "TBL", Wins: 1}},
				},
			},
			{
				RoundNumber: 2,
				Series: []playoffs.Series{
					{SeriesLetter: "I", TopSeed: playoffs.Seed{Abbrev: "BOS", Wins: 1}, BottomSeed: playoffs.Seed{Abbrev: "FLA", Wins: 2}},
				},
			},
		},
	}
}

// SampleRankings returns season standings for the sample registry, Alpha first.
func SampleRankings() []fantasy.Ranking {
	return []fantasy.Ranking{
		{TeamID: 1, TeamName: "Alpha", Goals: 30, Assists: 40, TotalPoints: 70, Rank: 1},
		{TeamID: 2, TeamName: "Beta", Goals: 28, Assists: 35, TotalPoints: 63, Rank: 2},
	}
}

// SampleBets gives Alpha eliminated picks and Beta surviving picks.
func SampleBets() []fantasy.TeamBets {
	return []fantasy.TeamBets{
		{TeamID: 1, Bets: []fantasy.TeamBet{{NHLTeam: "TOR"}, {NHLTeam: "TBL"}}},
		{TeamID: 2, Bets: []fantasy.TeamBet{{NHLTeam: "BOS"}, {NHLTeam: "FLA"}}},
	}
}

// SampleRosters mirrors SampleBets: Alpha's players are out, Beta's are alive.
func SampleRosters() map[int]fantasy.TeamRoster {
	return map[int]fantasy.TeamRoster{
		1: {Players: []players.Player{
			SamplePlayer("r1", "TOR", players.FantasyRef{ID: 1}, 0),
			SamplePlayer("r2", "TBL", players.FantasyRef{ID: 1}, 0),
		}},
		2: {Players: []players.Player{
			SamplePlayer("r3", "BOS", players.FantasyRef{ID: 2}, 0),
			SamplePlayer("r4", "FLA", players.FantasyRef{ID: 2}, 0),
		}},
	}
}
