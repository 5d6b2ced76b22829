package games

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameJSONTags(t *testing.T) {
	gameType := reflect.TypeOf(Game{})
	fields := map[string]string{
		"ID":              "id",
		"HomeTeam":        "homeTeam",
		"AwayTeam":        "awayTeam",
		"HomeTeamPlayers": "homeTeamPlayers",
		"AwayTeamPlayers": "awayTeamPlayers",
	}

	for name, tag := range fields {
		field, ok := gameType.FieldByName(name)
		require.True(t, ok, "missing field %s", name)
		assert.Equal(t, tag, field.Tag.Get("json"), "field %s", name)
	}
}

func TestGameDecodesRosterPayload(t *testing.T) {
	raw := `{
		"id": "2024030411",
		"homeTeam": {"abbrev": "BOS", "name": "Bruins", "logo": "bos.svg"},
		"awayTeam": {"abbrev": "TOR", "name": "Maple Leafs"},
		"homeTeamPlayers": [{"id": "1", "fantasyTeam": "Alpha", "points": 2}],
		"awayTeamPlayers": [{"id": "2", "points": "n/a"}],
		"seriesStatus": {"round": 1, "topSeedTeamAbbrev": "BOS", "topSeedWins": 3, "bottomSeedTeamAbbrev": "TOR", "bottomSeedWins": 1}
	}`

	var g Game
	require.NoError(t, json.Unmarshal([]byte(raw), &g))
	assert.Equal(t, "bos.svg", g.HomeTeam.Logo)
	require.Len(t, g.HomeTeamPlayers, 1)
	assert.Equal(t, "Alpha", g.HomeTeamPlayers[0].FantasyTeam.Name)
	assert.EqualValues(t, 0, g.AwayTeamPlayers[0].Points)
	require.NotNil(t, g.Series)
	assert.Equal(t, 3, g.Series.TopSeedWins)
}

func TestNewDayResponse(t *testing.T) {
	resp := NewDayResponse("2024-05-01", []Game{{ID: "g1"}})
	assert.Equal(t, "2024-05-01", resp.Date)
	assert.Len(t, resp.Games, 1)
}
