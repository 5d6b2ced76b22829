package providers

import (
	"context"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
)

// GamesProvider fetches the games, with rosters, of one calendar date.
// The date is a YYYY-MM-DD string; providers interpret an empty date as
// "today" in tz.
type GamesProvider interface {
	FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error)
}

// RegistryProvider fetches the fantasy team registry.
type RegistryProvider interface {
	FetchRegistry(ctx context.Context) ([]fantasy.Team, error)
}

// BracketProvider fetches the current playoff bracket.
type BracketProvider interface {
	FetchBracket(ctx context.Context) (*playoffs.Bracket, error)
}

// StandingsProvider fetches season rankings, bets and per-team rosters.
type StandingsProvider interface {
	FetchRankings(ctx context.Context) ([]fantasy.Ranking, error)
	FetchBets(ctx context.Context) ([]fantasy.TeamBets, error)
	FetchRosters(ctx context.Context) (map[int]fantasy.TeamRoster, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GamesProvider
	RegistryProvider
	BracketProvider
	StandingsProvider
}
