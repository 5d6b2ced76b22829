// Package roster rolls per-game rosters up into per-fantasy-team counts.
package roster

import (
	"cmp"
	"slices"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/players"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/teams"
)

type bucketKey struct {
	kind fantasy.JoinKind
	id   int
	name string
}

// Join groups every owned roster entry of the given games by fantasy team.
//
// A player is counted once per game appearance. Entries whose owner matches
// the registry are bucketed by registry id; unmatched owners get one bucket
// per distinct case-folded name with TeamID 0 and Join set to Unmatched.
// Buckets come out in first-encounter order, players within a bucket sorted
// by points descending (stable). Empty games or an empty registry yield an
// empty, non-nil slice.
func Join(dayGames []games.Game, registry *fantasy.Registry) []fantasy.FantasyTeamCount {
	out := []fantasy.FantasyTeamCount{}
	if len(dayGames) == 0 || registry.Len() == 0 {
		return out
	}

	index := make(map[bucketKey]int)

	add := func(g games.Game, team teams.Team, p players.Player) {
		if p.FantasyTeam.IsEmpty() {
			return
		}
		join := registry.Resolve(p.FantasyTeam)
		key := bucketKey{kind: join.Kind, id: join.TeamID}
		if !join.IsMatched() {
			key.name = registry.FoldName(join.Name)
		}

		pos, ok := index[key]
		if !ok {
			pos = len(out)
			index[key] = pos
			out = append(out, fantasy.FantasyTeamCount{
				TeamID:   join.TeamID,
				TeamName: join.Name,
				Join:     join.Kind,
				Players:  []players.GamePlayer{},
			})
		}

		count := &out[pos]
		count.PlayerCount++
		count.TotalPoints += float64(p.Points)
		count.Players = append(count.Players, players.GamePlayer{
			Player:   p,
			GameID:   g.ID,
			TeamName: team.Name,
			TeamLogo: team.Logo,
		})
	}

	for _, g := range dayGames {
		for _, p := range g.HomeTeamPlayers {
			add(g, g.HomeTeam, p)
		}
		for _, p := range g.AwayTeamPlayers {
			add(g, g.AwayTeam, p)
		}
	}

	for i := range out {
		slices.SortStableFunc(out[i].Players, func(a, b players.GamePlayer) int {
			return cmp.Compare(b.Points, a.Points)
		})
	}

	return slices.DeleteFunc(out, func(c fantasy.FantasyTeamCount) bool {
		return c.PlayerCount == 0
	})
}
