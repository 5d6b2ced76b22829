package store

import (
	"testing"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
)

func TestMemoryStoreStartsUnloaded(t *testing.T) {
	s := NewMemoryStore()

	if s.Registry() != nil || s.Games("2024-04-20") != nil || s.Bracket() != nil {
		t.Fatalf("expected nil slots before load")
	}
	if s.Rankings() != nil || s.Bets() != nil || s.Rosters() != nil {
		t.Fatalf("expected nil slots before load")
	}
}

func TestMemoryStoreNilLoadBecomesEmpty(t *testing.T) {
	s := NewMemoryStore()
	s.SetRegistry(nil)
	s.SetGames("2024-04-20", nil)
	s.SetBracket(nil)
	s.SetRankings(nil)
	s.SetBets(nil)
	s.SetRosters(nil)

	if got := s.Registry(); got == nil || len(got) != 0 {
		t.Fatalf("expected loaded empty registry, got %#v", got)
	}
	if got := s.Games("2024-04-20"); got == nil || len(got) != 0 {
		t.Fatalf("expected loaded empty games, got %#v", got)
	}
	if got := s.Bracket(); got == nil || len(got.Rounds) != 0 {
		t.Fatalf("expected loaded empty bracket, got %#v", got)
	}
	if got := s.Rosters(); got == nil || len(got) != 0 {
		t.Fatalf("expected loaded empty rosters, got %#v", got)
	}
	if got := s.Rankings(); got == nil || len(got) != 0 {
		t.Fatalf("expected loaded empty rankings, got %#v", got)
	}
	if got := s.Bets(); got == nil || len(got) != 0 {
		t.Fatalf("expected loaded empty bets, got %#v", got)
	}
}

func TestMemoryStoreGamesByDate(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames("2024-04-20", []games.Game{{ID: "a"}})
	s.SetGames("2024-04-21", []games.Game{{ID: "b"}, {ID: "c"}})

	if got := len(s.Games("2024-04-21")); got != 2 {
		t.Fatalf("expected 2 games, got %d", got)
	}
	if s.Games("2024-04-22") != nil {
		t.Fatalf("expected unknown date to be nil")
	}
	if len(s.Games("2024-04-20")) != 1 {
		t.Fatalf("expected earlier date kept")
	}
}

func TestMemoryStorePrunesOldestGameDates(t *testing.T) {
	s := NewMemoryStore(WithGameDays(2))
	s.SetGames("2024-04-21", []games.Game{{ID: "b"}})
	s.SetGames("2024-04-20", []games.Game{{ID: "a"}})
	s.SetGames("2024-04-22", []games.Game{{ID: "c"}})

	if s.Games("2024-04-20") != nil {
		t.Fatalf("expected oldest date pruned")
	}
	if s.Games("2024-04-21") == nil || s.Games("2024-04-22") == nil {
		t.Fatalf("expected newest dates kept")
	}

	s.SetGames("2024-04-22", []games.Game{{ID: "d"}})
	if s.Games("2024-04-21") == nil {
		t.Fatalf("expected replacing a kept date not to prune")
	}
	if got := NewMemoryStore(WithGameDays(0)).gameDays; got != DefaultGameDays {
		t.Fatalf("expected default game days, got %d", got)
	}
}

func TestMemoryStoreCopiesOnSet(t *testing.T) {
	s := NewMemoryStore()
	registry := []fantasy.Team{{ID: 1, Name: "Alpha"}}
	dayGames := []games.Game{{ID: "a"}}
	bets := []fantasy.TeamBets{{TeamID: 1}}
	rankings := []fantasy.Ranking{{TeamID: 1, TeamName: "Alpha"}}
	rosters := map[int]fantasy.TeamRoster{1: {}}
	s.SetRegistry(registry)
	s.SetGames("2024-04-20", dayGames)
	s.SetBets(bets)
	s.SetRankings(rankings)
	s.SetRosters(rosters)

	registry[0].Name = "mutated"
	dayGames[0].ID = "mutated"
	bets[0].TeamID = 99
	rankings[0].TeamName = "mutated"
	delete(rosters, 1)

	if s.Registry()[0].Name != "Alpha" || s.Games("2024-04-20")[0].ID != "a" {
		t.Fatalf("expected stored registry and games untouched by caller writes")
	}
	if s.Bets()[0].TeamID != 1 || s.Rankings()[0].TeamName != "Alpha" {
		t.Fatalf("expected stored bets and rankings untouched by caller writes")
	}
	if _, ok := s.Rosters()[1]; !ok {
		t.Fatalf("expected stored rosters untouched by caller writes")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	s.SetRankings([]fantasy.Ranking{{TeamID: 1, TeamName: "original"}})
	s.SetRosters(map[int]fantasy.TeamRoster{1: {}})

	list := s.Rankings()
	list[0].TeamName = "mutated"
	if got := s.Rankings()[0].TeamName; got != "original" {
		t.Fatalf("expected stored ranking untouched, got %s", got)
	}

	rosters := s.Rosters()
	delete(rosters, 1)
	if _, ok := s.Rosters()[1]; !ok {
		t.Fatalf("expected stored rosters untouched")
	}
}

func TestMemoryStoreReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetBracket(&playoffs.Bracket{CurrentRound: 1})
	s.SetBracket(&playoffs.Bracket{CurrentRound: 2})

	if got := s.Bracket().CurrentRound; got != 2 {
		t.Fatalf("expected replaced bracket, got round %d", got)
	}
}
