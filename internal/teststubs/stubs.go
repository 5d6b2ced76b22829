package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
)

// StubProvider is a test double for providers.DataProvider. Errs holds a
// failure per dataset name; Err fails every dataset.
type StubProvider struct {
	Games    []games.Game
	Registry []fantasy.Team
	Bracket  *playoffs.Bracket
	Rankings []fantasy.Ranking
	Bets     []fantasy.TeamBets
	Rosters  map[int]fantasy.TeamRoster

	Err    error
	Errs   map[string]error
	Calls  atomic.Int32
	Notify chan struct{}

	mu        sync.Mutex
	lastDate  string
	lastTZ    string
	errsGuard sync.RWMutex
}

// SetErr changes the failure of one dataset while a poller may be running.
func (s *StubProvider) SetErr(dataset string, err error) {
	s.errsGuard.Lock()
	defer s.errsGuard.Unlock()
	if s.Errs == nil {
		s.Errs = make(map[string]error)
	}
	s.Errs[dataset] = err
}

// LastGamesRequest returns the date and timezone of the latest games fetch.
func (s *StubProvider) LastGamesRequest() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDate, s.lastTZ
}

func (s *StubProvider) errFor(dataset string) error {
	s.errsGuard.RLock()
	defer s.errsGuard.RUnlock()
	if err, ok := s.Errs[dataset]; ok && err != nil {
		return err
	}
	return s.Err
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	_ = ctx
	s.mu.Lock()
	s.lastDate, s.lastTZ = date, tz
	s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if err := s.errFor("games"); err != nil {
		return nil, err
	}
	return s.Games, nil
}

func (s *StubProvider) FetchRegistry(ctx context.Context) ([]fantasy.Team, error) {
	if err := s.errFor("registry"); err != nil {
		return nil, err
	}
	return s.Registry, nil
}

func (s *StubProvider) FetchBracket(ctx context.Context) (*playoffs.Bracket, error) {
	if err := s.errFor("bracket"); err != nil {
		return nil, err
	}
	return s.Bracket, nil
}

func (s *StubProvider) FetchRankings(ctx context.Context) ([]fantasy.Ranking, error) {
	if err := s.errFor("rankings"); err != nil {
		return nil, err
	}
	return s.Rankings, nil
}

func (s *StubProvider) FetchBets(ctx context.Context) ([]fantasy.TeamBets, error) {
	if err := s.errFor("bets"); err != nil {
		return nil, err
	}
	return s.Bets, nil
}

func (s *StubProvider) FetchRosters(ctx context.Context) (map[int]fantasy.TeamRoster, error) {
	if err := s.errFor("rosters"); err != nil {
		return nil, err
	}
	return s.Rosters, nil
}

// StubSink is a test double for poller.Sink.
type StubSink struct {
	mu       sync.Mutex
	Games    map[string]games.DayResponse // keyed by date
	Datasets map[string]any
	Err      error
}

// WriteGames records the day for verification in tests.
func (w *StubSink) WriteGames(date string, day games.DayResponse) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	if w.Games == nil {
		w.Games = make(map[string]games.DayResponse)
	}
	w.Games[date] = day
	return nil
}

// WriteDataset records the payload for verification in tests.
func (w *StubSink) WriteDataset(dataset string, payload any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	if w.Datasets == nil {
		w.Datasets = make(map[string]any)
	}
	w.Datasets[dataset] = payload
	return nil
}

// WrittenGames returns the recorded day for date.
func (w *StubSink) WrittenGames(date string) (games.DayResponse, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	day, ok := w.Games[date]
	return day, ok
}
