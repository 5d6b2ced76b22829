package fantasy

import (
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/players"
)

// Team is a registered fantasy team.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Ranking is one row of the season-long standings.
type Ranking struct {
	TeamID      int    `json:"teamId"`
	TeamName    string `json:"teamName"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	TotalPoints int    `json:"totalPoints"`
	Rank        int    `json:"rank"`
}

// TeamBet is a fantasy team's declared pick of an NHL team.
type TeamBet struct {
	NHLTeam string `json:"nhlTeam"`
}

// TeamBets groups every bet declared by one fantasy team.
type TeamBets struct {
	TeamID int       `json:"teamId"`
	Bets   []TeamBet `json:"bets"`
}

// TeamRoster is the season roster snapshot of one fantasy team.
type TeamRoster struct {
	Players []players.Player `json:"players"`
}

// FantasyTeamCount is the per-date rollup of one fantasy team's players.
// PlayerCount always equals len(Players) and TotalPoints the sum of their points.
type FantasyTeamCount struct {
	TeamID      int                  `json:"teamId"`
	TeamName    string               `json:"teamName"`
	Join        JoinKind             `json:"join"`
	PlayerCount int                  `json:"playerCount"`
	Players     []players.GamePlayer `json:"players"`
	TotalPoints float64              `json:"totalPoints"`
}

// PlayoffTeamRanking extends a season ranking with playoff survival counts.
type PlayoffTeamRanking struct {
	Ranking
	TeamsInPlayoffs   int `json:"teamsInPlayoffs"`
	TotalTeams        int `json:"totalTeams"`
	PlayersInPlayoffs int `json:"playersInPlayoffs"`
	TotalPlayers      int `json:"totalPlayers"`
	PlayoffScore      int `json:"playoffScore"`
}
