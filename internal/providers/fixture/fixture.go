package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/players"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/timeutil"
)

var (
	bos = teams.Team{Abbrev: "BOS", Name: "Boston Bruins"}
	tor = teams.Team{Abbrev: "TOR", Name: "Toronto Maple Leafs"}
	fla = teams.Team{Abbrev: "FLA", Name: "Florida Panthers"}
	tbl = teams.Team{Abbrev: "TBL", Name: "Tampa Bay Lightning"}
	nyr = teams.Team{Abbrev: "NYR", Name: "New York Rangers"}
	wsh = teams.Team{Abbrev: "WSH", Name: "Washington Capitals"}
	car = teams.Team{Abbrev: "CAR", Name: "Carolina Hurricanes"}
	nyi = teams.Team{Abbrev: "NYI", Name: "New York Islanders"}
)

// Provider returns a static, internally consistent set of datasets useful for
// local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns two second-round games on date, or today in tz when date is empty.
func (p *Provider) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	_ = ctx

	day := p.now().UTC()
	if loc := providers.ResolveTimezone(tz); loc != nil {
		day = day.In(loc)
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	if date != "" {
		parsed, err := timeutil.ParseDate(date)
		if err == nil {
			day = parsed.UTC()
		}
	}

	return []games.Game{
		{
			ID:        "fixture-1",
			StartTime: day.Add(23 * time.Hour).Format(time.RFC3339),
			State:     games.StateFuture,
			HomeTeam:  fla,
			AwayTeam:  bos,
			HomeTeamPlayers: []players.Player{
				player("8477933", "Sam Reinhart", "C", fla.Abbrev, players.FantasyRef{Name: "Ice Breakers"}, 12),
				player("8477493", "Aleksander Barkov", "C", fla.Abbrev, players.FantasyRef{ID: 2}, 10),
				player("8478366", "Evan Rodrigues", "C", fla.Abbrev, players.FantasyRef{}, 3),
			},
			AwayTeamPlayers: []players.Player{
				player("8478498", "David Pastrnak", "R", bos.Abbrev, players.FantasyRef{Name: "top shelf"}, 9),
				player("8475745", "Charlie Coyle", "C", bos.Abbrev, players.FantasyRef{Name: "Waiver Wire"}, 4),
			},
			Series: &games.SeriesStatus{Round: 2, TopSeedAbbrev: fla.Abbrev, TopSeedWins: 2, BottomSeedAbbrev: bos.Abbrev, BottomSeedWins: 1},
		},
		{
			ID:        "fixture-2",
			StartTime: day.Add(23*time.Hour + 30*time.Minute).Format(time.RFC3339),
			State:     games.StateFuture,
			HomeTeam:  nyr,
			AwayTeam:  car,
			HomeTeamPlayers: []players.Player{
				player("8478550", "Artemi Panarin", "L", nyr.Abbrev, players.FantasyRef{ID: 1, Name: "Ice Breakers"}, 11),
				player("8476459", "Mika Zibanejad", "C", nyr.Abbrev, players.FantasyRef{Name: "Five Hole"}, 7),
			},
			AwayTeamPlayers: []players.Player{
				player("8478427", "Sebastian Aho", "C", car.Abbrev, players.FantasyRef{Name: "Top Shelf"}, 8),
				player("8480830", "Andrei Svechnikov", "R", car.Abbrev, players.FantasyRef{Name: "waiver wire"}, 5),
			},
			Series: &games.SeriesStatus{Round: 2, TopSeedAbbrev: nyr.Abbrev, TopSeedWins: 1, BottomSeedAbbrev: car.Abbrev, BottomSeedWins: 1},
		},
	}, nil
}

// FetchRegistry returns the three registered fantasy teams.
func (p *Provider) FetchRegistry(ctx context.Context) ([]fantasy.Team, error) {
	_ = ctx
	return []fantasy.Team{
		{ID: 1, Name: "Ice Breakers"},
		{ID: 2, Name: "Top Shelf"},
		{ID: 3, Name: "Five Hole"},
	}, nil
}

// FetchBracket returns an Eastern bracket midway through the second round.
func (p *Provider) FetchBracket(ctx context.Context) (*playoffs.Bracket, error) {
	_ = ctx
	return &playoffs.Bracket{
		CurrentRound: 2,
		Rounds: []playoffs.Round{
			{
				RoundNumber: 1,
				Series: []playoffs.Series{
					series("A", fla, 4, tbl, 1),
					series("B", bos, 4, tor, 3),
					series("C", nyr, 4, wsh, 0),
					series("D", car, 4, nyi, 1),
				},
			},
			{
				RoundNumber: 2,
				Series: []playoffs.Series{
					series("I", fla, 2, bos, 1),
					series("J", nyr, 1, car, 1),
				},
			},
			{
				RoundNumber: 3,
				Series: []playoffs.Series{
					{SeriesLetter: "M", TopSeed: playoffs.Seed{Abbrev: teams.PlaceholderAbbrev}, BottomSeed: playoffs.Seed{Abbrev: teams.PlaceholderAbbrev}},
				},
			},
		},
	}, nil
}

// FetchRankings returns season standings for the registered teams.
func (p *Provider) FetchRankings(ctx context.Context) ([]fantasy.Ranking, error) {
	_ = ctx
	return []fantasy.Ranking{
		{TeamID: 2, TeamName: "Top Shelf", Goals: 212, Assists: 340, TotalPoints: 552, Rank: 1},
		{TeamID: 1, TeamName: "Ice Breakers", Goals: 205, Assists: 331, TotalPoints: 536, Rank: 2},
		{TeamID: 3, TeamName: "Five Hole", Goals: 190, Assists: 322, TotalPoints: 512, Rank: 3},
	}, nil
}

// FetchBets returns each team's NHL-team picks.
func (p *Provider) FetchBets(ctx context.Context) ([]fantasy.TeamBets, error) {
	_ = ctx
	return []fantasy.TeamBets{
		{TeamID: 1, Bets: bets(fla, nyr, tor)},
		{TeamID: 2, Bets: bets(bos, car, tbl)},
		{TeamID: 3, Bets: bets(wsh, nyi)},
	}, nil
}

// FetchRosters returns each team's season roster.
func (p *Provider) FetchRosters(ctx context.Context) (map[int]fantasy.TeamRoster, error) {
	_ = ctx
	return map[int]fantasy.TeamRoster{
		1: {Players: []players.Player{
			{ID: "8477933", Name: "Sam Reinhart", NHLTeam: fla.Abbrev},
			{ID: "8478550", Name: "Artemi Panarin", NHLTeam: nyr.Abbrev},
			{ID: "8479318", Name: "Auston Matthews", NHLTeam: tor.Abbrev},
		}},
		2: {Players: []players.Player{
			{ID: "8477493", Name: "Aleksander Barkov", NHLTeam: fla.Abbrev},
			{ID: "8478498", Name: "David Pastrnak", NHLTeam: bos.Abbrev},
			{ID: "8478427", Name: "Sebastian Aho", NHLTeam: car.Abbrev},
		}},
		3: {Players: []players.Player{
			{ID: "8476459", Name: "Mika Zibanejad", NHLTeam: nyr.Abbrev},
			{ID: "8471214", Name: "Alex Ovechkin", NHLTeam: wsh.Abbrev},
		}},
	}, nil
}

func player(id, name, position, nhlTeam string, owner players.FantasyRef, points float64) players.Player {
	return players.Player{
		ID:          id,
		Name:        name,
		Position:    position,
		NHLTeam:     nhlTeam,
		FantasyTeam: owner,
		Points:      players.Points(points),
	}
}

func series(letter string, top teams.Team, topWins int, bottom teams.Team, bottomWins int) playoffs.Series {
	return playoffs.Series{
		SeriesLetter: letter,
		TopSeed:      playoffs.Seed{Abbrev: top.Abbrev, Wins: topWins},
		BottomSeed:   playoffs.Seed{Abbrev: bottom.Abbrev, Wins: bottomWins},
	}
}

func bets(picks ...teams.Team) []fantasy.TeamBet {
	out := make([]fantasy.TeamBet, 0, len(picks))
	for _, t := range picks {
		out = append(out, fantasy.TeamBet{NHLTeam: t.Abbrev})
	}
	return out
}
