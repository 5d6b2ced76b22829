package standings

import (
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/aggregate"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/bracket"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/timeutil"
)

// Store defines the read side of the dataset store.
type Store interface {
	Registry() []fantasy.Team
	Games(date string) []games.Game
	Bracket() *playoffs.Bracket
	Rankings() []fantasy.Ranking
	Bets() []fantasy.TeamBets
	Rosters() map[int]fantasy.TeamRoster
}

// TeamStatus is the bracket classification of one NHL team with every predicate spelled out.
type TeamStatus struct {
	Abbrev         string         `json:"abbrev"`
	Status         bracket.Status `json:"status"`
	InPlayoffs     bool           `json:"inPlayoffs"`
	Eliminated     bool           `json:"eliminated"`
	Advanced       bool           `json:"advanced"`
	InCurrentRound bool           `json:"inCurrentRound"`
}

// BracketView lists the classification of every team in the bracket.
type BracketView struct {
	Loaded       bool                      `json:"loaded"`
	CurrentRound int                       `json:"currentRound"`
	Teams        map[string]bracket.Status `json:"teams"`
}

// Service coordinates derived-state reads using a Store and an aggregate engine.
type Service struct {
	store    Store
	engine   *aggregate.Engine
	location *time.Location
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used to compute today.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs a Service. A nil location means UTC.
func NewService(store Store, engine *aggregate.Engine, location *time.Location, opts ...Option) *Service {
	if location == nil {
		location = time.UTC
	}
	s := &Service{
		store:    store,
		engine:   engine,
		location: location,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current date in the season timezone.
func (s *Service) Today() string {
	return timeutil.DateIn(s.now(), s.location)
}

// FantasyCounts returns the per-team rollup of players in date's games.
// An empty date means today.
func (s *Service) FantasyCounts(date string) []fantasy.FantasyTeamCount {
	if date == "" {
		date = s.Today()
	}
	return s.engine.FantasyCounts(s.store.Games(date), s.store.Registry())
}

// TeamStatus classifies one NHL team against the current bracket.
func (s *Service) TeamStatus(abbrev string) TeamStatus {
	r := s.engine.Bracket(s.store.Bracket())
	return TeamStatus{
		Abbrev:         teams.NormalizeAbbrev(abbrev),
		Status:         r.Status(abbrev),
		InPlayoffs:     r.IsTeamInPlayoffs(abbrev),
		Eliminated:     r.IsTeamEliminated(abbrev),
		Advanced:       r.HasTeamAdvanced(abbrev),
		InCurrentRound: r.IsTeamInCurrentRound(abbrev),
	}
}

// Bracket returns the classification of every team in the current bracket.
func (s *Service) Bracket() BracketView {
	b := s.store.Bracket()
	r := s.engine.Bracket(b)
	return BracketView{
		Loaded:       b != nil,
		CurrentRound: r.CurrentRound(),
		Teams:        r.Statuses(),
	}
}

// PlayoffRankings returns the season ranking re-ordered by playoff score.
func (s *Service) PlayoffRankings() []fantasy.PlayoffTeamRanking {
	return s.engine.PlayoffRankings(s.store.Rankings(), s.store.Bets(), s.store.Rosters(), s.store.Bracket())
}

// Snapshot derives every record for date in one pass.
func (s *Service) Snapshot(date string) aggregate.Result {
	if date == "" {
		date = s.Today()
	}
	return s.engine.Compute(aggregate.Datasets{
		Registry: s.store.Registry(),
		Games:    s.store.Games(date),
		Bracket:  s.store.Bracket(),
		Rankings: s.store.Rankings(),
		Bets:     s.store.Bets(),
		Rosters:  s.store.Rosters(),
	})
}
