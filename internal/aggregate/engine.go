// Package aggregate runs the bracket, roster and ranking components in
// dependency order and memoizes their results by input digest.
package aggregate

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/bracket"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/ranking"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/roster"
)

const DefaultCacheSize = 64

// Component names used for metrics and logs.
const (
	ComponentBracket  = "bracket"
	ComponentRoster   = "roster"
	ComponentRankings = "rankings"
)

// Datasets is one consistent view of every raw input. Nil fields are not loaded.
type Datasets struct {
	Registry []fantasy.Team
	Games    []games.Game
	Bracket  *playoffs.Bracket
	Rankings []fantasy.Ranking
	Bets     []fantasy.TeamBets
	Rosters  map[int]fantasy.TeamRoster
}

// Result holds every derived record for one Datasets view.
type Result struct {
	FantasyCounts   []fantasy.FantasyTeamCount
	Bracket         *bracket.Resolver
	PlayoffRankings []fantasy.PlayoffTeamRanking
}

// Engine memoizes component outputs. Returned values are shared between
// callers and must be treated as read-only.
type Engine struct {
	logger   *slog.Logger
	recorder *metrics.Recorder

	counts   *memo[[]fantasy.FantasyTeamCount]
	brackets *memo[*bracket.Resolver]
	rankings *memo[[]fantasy.PlayoffTeamRanking]
}

// NewEngine builds an engine whose caches hold at most size entries each.
func NewEngine(size int, logger *slog.Logger, recorder *metrics.Recorder) *Engine {
	return &Engine{
		logger:   logger,
		recorder: recorder,
		counts:   newMemo[[]fantasy.FantasyTeamCount](size),
		brackets: newMemo[*bracket.Resolver](size),
		rankings: newMemo[[]fantasy.PlayoffTeamRanking](size),
	}
}

// FantasyCounts joins the day's rosters against the registry.
func (e *Engine) FantasyCounts(dayGames []games.Game, registry []fantasy.Team) []fantasy.FantasyTeamCount {
	return cached(e, e.counts, ComponentRoster, func() []fantasy.FantasyTeamCount {
		var reg *fantasy.Registry
		if registry != nil {
			reg = fantasy.NewRegistry(registry)
		}
		return roster.Join(dayGames, reg)
	}, dayGames, registry)
}

// Bracket classifies every team of b.
func (e *Engine) Bracket(b *playoffs.Bracket) *bracket.Resolver {
	return cached(e, e.brackets, ComponentBracket, func() *bracket.Resolver {
		return bracket.Resolve(b)
	}, b)
}

// PlayoffRankings composes the playoff score ranking. A nil bracket counts
// as a missing dataset.
func (e *Engine) PlayoffRankings(rankings []fantasy.Ranking, bets []fantasy.TeamBets, rosters map[int]fantasy.TeamRoster, b *playoffs.Bracket) []fantasy.PlayoffTeamRanking {
	return cached(e, e.rankings, ComponentRankings, func() []fantasy.PlayoffTeamRanking {
		var inPlayoffs ranking.InPlayoffsFunc
		if b != nil {
			inPlayoffs = e.Bracket(b).IsTeamInPlayoffs
		}
		return ranking.Compose(rankings, bets, rosters, inPlayoffs)
	}, rankings, bets, rosters, b)
}

// Compute derives every record from one Datasets view.
func (e *Engine) Compute(d Datasets) Result {
	return Result{
		FantasyCounts:   e.FantasyCounts(d.Games, d.Registry),
		Bracket:         e.Bracket(d.Bracket),
		PlayoffRankings: e.PlayoffRankings(d.Rankings, d.Bets, d.Rosters, d.Bracket),
	}
}

func cached[V any](e *Engine, m *memo[V], component string, compute func() V, inputs ...any) V {
	start := time.Now()
	key, err := digest(inputs...)
	if err != nil {
		// Unhashable input: compute without caching.
		logging.Warn(e.logger, "aggregate inputs not hashable", logging.FieldComponent, component, logging.FieldError, err)
		v := compute()
		e.recorder.RecordAggregation(component, time.Since(start), false)
		return v
	}
	if v, ok := m.get(key); ok {
		e.recorder.RecordAggregation(component, time.Since(start), true)
		return v
	}
	v := compute()
	m.put(key, v)
	elapsed := time.Since(start)
	e.recorder.RecordAggregation(component, elapsed, false)
	logging.Debug(e.logger, "aggregate cache miss",
		logging.FieldComponent, component,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return v
}
