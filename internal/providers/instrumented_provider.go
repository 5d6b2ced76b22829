package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/store"
)

// Dataset names reported in metrics and logs.
const (
	DatasetGames    = string(store.DatasetGames)
	DatasetRegistry = string(store.DatasetRegistry)
	DatasetBracket  = string(store.DatasetBracket)
	DatasetRankings = string(store.DatasetRankings)
	DatasetBets     = string(store.DatasetBets)
	DatasetRosters  = string(store.DatasetRosters)
)

// instrumentedProvider records latency and failures of every fetch and wraps
// failures in a DatasetError.
type instrumentedProvider struct {
	inner    DataProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewInstrumentedProvider wraps inner with fetch metrics and failure logs.
func NewInstrumentedProvider(inner DataProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	return observe(ctx, p, DatasetGames, func() ([]games.Game, error) {
		return p.inner.FetchGames(ctx, date, tz)
	})
}

func (p *instrumentedProvider) FetchRegistry(ctx context.Context) ([]fantasy.Team, error) {
	return observe(ctx, p, DatasetRegistry, func() ([]fantasy.Team, error) {
		return p.inner.FetchRegistry(ctx)
	})
}

func (p *instrumentedProvider) FetchBracket(ctx context.Context) (*playoffs.Bracket, error) {
	return observe(ctx, p, DatasetBracket, func() (*playoffs.Bracket, error) {
		return p.inner.FetchBracket(ctx)
	})
}

func (p *instrumentedProvider) FetchRankings(ctx context.Context) ([]fantasy.Ranking, error) {
	return observe(ctx, p, DatasetRankings, func() ([]fantasy.Ranking, error) {
		return p.inner.FetchRankings(ctx)
	})
}

func (p *instrumentedProvider) FetchBets(ctx context.Context) ([]fantasy.TeamBets, error) {
	return observe(ctx, p, DatasetBets, func() ([]fantasy.TeamBets, error) {
		return p.inner.FetchBets(ctx)
	})
}

func (p *instrumentedProvider) FetchRosters(ctx context.Context) (map[int]fantasy.TeamRoster, error) {
	return observe(ctx, p, DatasetRosters, func() (map[int]fantasy.TeamRoster, error) {
		return p.inner.FetchRosters(ctx)
	})
}

func observe[T any](ctx context.Context, p *instrumentedProvider, dataset string, fetch func() (T, error)) (T, error) {
	start := p.now()
	v, err := fetch()
	elapsed := p.now().Sub(start)
	p.recorder.RecordFetch(dataset, elapsed, err)

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "dataset fetch failed",
			logging.FieldDataset, dataset,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			logging.FieldError, err,
		)
		var zero T
		if _, ok := AsDatasetError(err); ok {
			return zero, err
		}
		return zero, &DatasetError{Provider: p.name, Dataset: dataset, Err: err}
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "dataset fetched",
		logging.FieldDataset, dataset,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return v, nil
}
