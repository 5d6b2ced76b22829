package fantasy

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/players"
)

func sampleRegistry() *Registry {
	return NewRegistry([]Team{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Équipe Rouge"},
		{ID: 1, Name: "Duplicate"},
	})
}

func TestRegistryIgnoresDuplicateIDs(t *testing.T) {
	reg := sampleRegistry()
	assert.Equal(t, 2, reg.Len())
	team, ok := reg.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Alpha", team.Name)
}

func TestRegistryResolve(t *testing.T) {
	reg := sampleRegistry()

	cases := []struct {
		name string
		ref  players.FantasyRef
		want JoinKey
	}{
		{"by id", players.FantasyRef{ID: 2}, JoinKey{Kind: Matched, TeamID: 2, Name: "Équipe Rouge"}},
		{"by exact name", players.FantasyRef{Name: "Alpha"}, JoinKey{Kind: Matched, TeamID: 1, Name: "Alpha"}},
		{"by folded name", players.FantasyRef{Name: "ÉQUIPE ROUGE"}, JoinKey{Kind: Matched, TeamID: 2, Name: "Équipe Rouge"}},
		{"id wins over name", players.FantasyRef{ID: 1, Name: "Équipe Rouge"}, JoinKey{Kind: Matched, TeamID: 1, Name: "Alpha"}},
		{"unknown id falls back to name", players.FantasyRef{ID: 99, Name: "alpha"}, JoinKey{Kind: Matched, TeamID: 1, Name: "Alpha"}},
		{"unknown name", players.FantasyRef{Name: " Omega "}, JoinKey{Kind: Unmatched, Name: "Omega"}},
		{"unknown id only", players.FantasyRef{ID: 42}, JoinKey{Kind: Unmatched, Name: "42"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reg.Resolve(tc.ref))
		})
	}
}

func TestNilRegistryResolvesUnmatched(t *testing.T) {
	var reg *Registry
	assert.Equal(t, 0, reg.Len())
	assert.Nil(t, reg.Teams())
	key := reg.Resolve(players.FantasyRef{Name: "Alpha"})
	assert.False(t, key.IsMatched())
	assert.Equal(t, "Alpha", key.Name)
}

func TestJoinKindText(t *testing.T) {
	data, err := json.Marshal(FantasyTeamCount{Join: Matched})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"join":"matched"`)

	var decoded FantasyTeamCount
	require.NoError(t, json.Unmarshal([]byte(`{"join":"unmatched"}`), &decoded))
	assert.Equal(t, Unmatched, decoded.Join)
}

func TestPlayoffTeamRankingFlattensRanking(t *testing.T) {
	row := PlayoffTeamRanking{Ranking: Ranking{TeamID: 3, TeamName: "Gamma", Rank: 1}, PlayoffScore: 20}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"teamId":3,"teamName":"Gamma","goals":0,"assists":0,"totalPoints":0,"rank":1,
		"teamsInPlayoffs":0,"totalTeams":0,"playersInPlayoffs":0,"totalPlayers":0,"playoffScore":20}`, string(data))
}

func TestFoldNameSharedAcrossGoroutines(t *testing.T) {
	r := NewRegistry([]Team{{ID: 1, Name: "Straße"}})
	assert.Equal(t, "strasse", r.FoldName("  STRASSE "))
	assert.Equal(t, "alpha", (*Registry)(nil).FoldName("ALPHA"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := r.Resolve(players.FantasyRef{Name: "STRASSE"})
				assert.Equal(t, Matched, key.Kind)
			}
		}()
	}
	wg.Wait()
}
