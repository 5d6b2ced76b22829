package store

import (
	"maps"
	"slices"
	"sync"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
)

// Dataset names one independently loaded input.
type Dataset string

const (
	DatasetRegistry Dataset = "registry"
	DatasetGames    Dataset = "games"
	DatasetBracket  Dataset = "bracket"
	DatasetRankings Dataset = "rankings"
	DatasetBets     Dataset = "bets"
	DatasetRosters  Dataset = "rosters"
)

// AllDatasets lists every dataset in refresh order.
var AllDatasets = []Dataset{
	DatasetRegistry,
	DatasetGames,
	DatasetBracket,
	DatasetRankings,
	DatasetBets,
	DatasetRosters,
}

// DefaultGameDays is how many distinct game dates a store keeps.
const DefaultGameDays = 14

// MemoryStore keeps a thread-safe snapshot of every dataset in memory.
// A slot that was never set reads as nil ("not loaded"). Setters store a
// copy of their input.
type MemoryStore struct {
	mu       sync.RWMutex
	registry []fantasy.Team
	games    map[string][]games.Game
	gameDays int
	bracket  *playoffs.Bracket
	rankings []fantasy.Ranking
	bets     []fantasy.TeamBets
	rosters  map[int]fantasy.TeamRoster
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithGameDays bounds the number of game dates kept; the oldest dates are
// dropped first. Non-positive values keep the default.
func WithGameDays(days int) Option {
	return func(s *MemoryStore) {
		if days > 0 {
			s.gameDays = days
		}
	}
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		games:    make(map[string][]games.Game),
		gameDays: DefaultGameDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetRegistry replaces the fantasy team registry.
func (s *MemoryStore) SetRegistry(teams []fantasy.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = loadedCopy(teams)
}

// Registry returns a copy of the registry, or nil if not loaded.
func (s *MemoryStore) Registry() []fantasy.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.registry)
}

// SetGames replaces the games of one date.
func (s *MemoryStore) SetGames(date string, dayGames []games.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[date] = loadedCopy(dayGames)
	s.pruneGamesLocked()
}

// pruneGamesLocked drops the oldest dates beyond gameDays. YYYY-MM-DD keys
// sort chronologically.
func (s *MemoryStore) pruneGamesLocked() {
	if len(s.games) <= s.gameDays {
		return
	}
	dates := make([]string, 0, len(s.games))
	for d := range s.games {
		dates = append(dates, d)
	}
	slices.Sort(dates)
	for _, d := range dates[:len(dates)-s.gameDays] {
		delete(s.games, d)
	}
}

// Games returns a copy of the games for date, or nil if that date was never loaded.
func (s *MemoryStore) Games(date string) []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.games[date])
}

// SetBracket replaces the playoff bracket.
func (s *MemoryStore) SetBracket(b *playoffs.Bracket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b == nil {
		b = &playoffs.Bracket{}
	}
	s.bracket = b
}

// Bracket returns the stored bracket, or nil if not loaded. The bracket is
// replaced wholesale on refresh and must not be mutated by callers.
func (s *MemoryStore) Bracket() *playoffs.Bracket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bracket
}

// SetRankings replaces the season rankings.
func (s *MemoryStore) SetRankings(rankings []fantasy.Ranking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rankings = loadedCopy(rankings)
}

// Rankings returns a copy of the season rankings, or nil if not loaded.
func (s *MemoryStore) Rankings() []fantasy.Ranking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.rankings)
}

// SetBets replaces every team's bets.
func (s *MemoryStore) SetBets(bets []fantasy.TeamBets) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bets = loadedCopy(bets)
}

// Bets returns a copy of the bets, or nil if not loaded.
func (s *MemoryStore) Bets() []fantasy.TeamBets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.bets)
}

// SetRosters replaces the per-team roster snapshots.
func (s *MemoryStore) SetRosters(rosters map[int]fantasy.TeamRoster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rosters == nil {
		s.rosters = map[int]fantasy.TeamRoster{}
		return
	}
	s.rosters = maps.Clone(rosters)
}

// Rosters returns a copy of the roster map, or nil if not loaded.
func (s *MemoryStore) Rosters() map[int]fantasy.TeamRoster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rosters == nil {
		return nil
	}
	return maps.Clone(s.rosters)
}

// loadedCopy copies in, turning a nil result from a successful load into
// "loaded, empty".
func loadedCopy[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
