package games

import (
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/players"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/teams"
)

// GameState mirrors the upstream lifecycle values for a game.
type GameState string

const (
	StateFuture   GameState = "FUT"
	StatePregame  GameState = "PRE"
	StateLive     GameState = "LIVE"
	StateCritical GameState = "CRIT"
	StateFinal    GameState = "FINAL"
	StateOff      GameState = "OFF"
)

// SeriesStatus is present on games that belong to the playoff bracket.
type SeriesStatus struct {
	Round            int    `json:"round"`
	TopSeedAbbrev    string `json:"topSeedTeamAbbrev"`
	TopSeedWins      int    `json:"topSeedWins"`
	BottomSeedAbbrev string `json:"bottomSeedTeamAbbrev"`
	BottomSeedWins   int    `json:"bottomSeedWins"`
}

// Game is one scheduled NHL game with both rosters.
type Game struct {
	ID              string           `json:"id"`
	StartTime       string           `json:"startTimeUTC,omitempty"`
	State           GameState        `json:"gameState,omitempty"`
	HomeTeam        teams.Team       `json:"homeTeam"`
	AwayTeam        teams.Team       `json:"awayTeam"`
	HomeTeamPlayers []players.Player `json:"homeTeamPlayers"`
	AwayTeamPlayers []players.Player `json:"awayTeamPlayers"`
	Series          *SeriesStatus    `json:"seriesStatus,omitempty"`
}

// DayResponse is the per-date games payload.
type DayResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewDayResponse builds a DayResponse payload.
func NewDayResponse(date string, games []Game) DayResponse {
	return DayResponse{
		Date:  date,
		Games: games,
	}
}
