package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/store"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/timeutil"
)

const (
	defaultInterval = 2 * time.Minute
	// Consecutive failing cycles tolerated before the service reports not ready.
	maxConsecutiveFailures = 3
)

// Store receives every successfully fetched dataset.
type Store interface {
	SetRegistry([]fantasy.Team)
	SetGames(date string, dayGames []games.Game)
	SetBracket(*playoffs.Bracket)
	SetRankings([]fantasy.Ranking)
	SetBets([]fantasy.TeamBets)
	SetRosters(map[int]fantasy.TeamRoster)
}

// Sink optionally persists fetched datasets as snapshots.
type Sink interface {
	WriteGames(date string, day games.DayResponse) error
	WriteDataset(dataset string, payload any) error
}

// Options tune a Poller. Zero values pick defaults.
type Options struct {
	Sink     Sink
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Interval time.Duration
	// Location decides which calendar date "today" is.
	Location *time.Location
}

// Poller refreshes every dataset on an interval. Each dataset succeeds or
// fails on its own; a failed dataset keeps its previous value in the store.
type Poller struct {
	provider providers.DataProvider
	store    Store
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	location *time.Location
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// DatasetStatus is the refresh history of one dataset.
type DatasetStatus struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastSuccess         time.Time `json:"lastSuccess"`
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int                      `json:"consecutiveFailures"`
	LastError           string                   `json:"lastError,omitempty"`
	LastAttempt         time.Time                `json:"lastAttempt"`
	LastSuccess         time.Time                `json:"lastSuccess"`
	Datasets            map[string]DatasetStatus `json:"datasets"`
}

// IsReady reports whether every dataset has loaded at least once and the
// poller is not failing repeatedly.
func (s Status) IsReady() bool {
	for _, d := range store.AllDatasets {
		if s.Datasets[string(d)].LastSuccess.IsZero() {
			return false
		}
	}
	return s.ConsecutiveFailures < maxConsecutiveFailures
}

// New constructs a Poller with sane defaults.
func New(provider providers.DataProvider, st Store, opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Poller{
		provider: provider,
		store:    st,
		sink:     opts.Sink,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		interval: opts.Interval,
		location: opts.Location,
		now:      time.Now,
		done:     make(chan struct{}),
		status:   Status{Datasets: make(map[string]DatasetStatus)},
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RefreshNow runs one synchronous refresh cycle and returns the joined
// per-dataset errors, if any.
func (p *Poller) RefreshNow(ctx context.Context) error {
	return p.fetchOnce(ctx)
}

type step struct {
	dataset string
	run     func(ctx context.Context) (int, error)
}

func (p *Poller) steps(today string) []step {
	return []step{
		{providers.DatasetRegistry, func(ctx context.Context) (int, error) {
			v, err := p.provider.FetchRegistry(ctx)
			if err != nil {
				return 0, err
			}
			p.store.SetRegistry(v)
			p.persist(providers.DatasetRegistry, v)
			return len(v), nil
		}},
		{providers.DatasetGames, func(ctx context.Context) (int, error) {
			v, err := p.provider.FetchGames(ctx, today, p.location.String())
			if err != nil {
				return 0, err
			}
			p.store.SetGames(today, v)
			if p.sink != nil {
				if werr := p.sink.WriteGames(today, games.NewDayResponse(today, v)); werr != nil {
					logging.Error(p.logger, "poller snapshot write failed", werr, logging.FieldDataset, providers.DatasetGames)
				}
			}
			return len(v), nil
		}},
		{providers.DatasetBracket, func(ctx context.Context) (int, error) {
			v, err := p.provider.FetchBracket(ctx)
			if err != nil {
				return 0, err
			}
			p.store.SetBracket(v)
			n := 0
			if v != nil {
				n = len(v.Rounds)
			}
			p.persist(providers.DatasetBracket, v)
			return n, nil
		}},
		{providers.DatasetRankings, func(ctx context.Context) (int, error) {
			v, err := p.provider.FetchRankings(ctx)
			if err != nil {
				return 0, err
			}
			p.store.SetRankings(v)
			p.persist(providers.DatasetRankings, v)
			return len(v), nil
		}},
		{providers.DatasetBets, func(ctx context.Context) (int, error) {
			v, err := p.provider.FetchBets(ctx)
			if err != nil {
				return 0, err
			}
			p.store.SetBets(v)
			p.persist(providers.DatasetBets, v)
			return len(v), nil
		}},
		{providers.DatasetRosters, func(ctx context.Context) (int, error) {
			v, err := p.provider.FetchRosters(ctx)
			if err != nil {
				return 0, err
			}
			p.store.SetRosters(v)
			p.persist(providers.DatasetRosters, v)
			return len(v), nil
		}},
	}
}

// persist writes a dateless dataset to the sink. Write failures are logged
// and never fail the refresh.
func (p *Poller) persist(dataset string, payload any) {
	if p.sink == nil {
		return
	}
	if err := p.sink.WriteDataset(dataset, payload); err != nil {
		logging.Error(p.logger, "poller snapshot write failed", err, logging.FieldDataset, dataset)
	}
}

func (p *Poller) fetchOnce(ctx context.Context) error {
	start := p.now()
	p.recordAttempt(start)
	today := timeutil.DateIn(start, p.location)

	var errs []error
	for _, s := range p.steps(today) {
		stepStart := time.Now()
		n, err := s.run(ctx)
		if err != nil {
			logging.Error(p.logger, "poller dataset refresh failed", err,
				logging.FieldDataset, s.dataset,
				logging.FieldDurationMS, time.Since(stepStart).Milliseconds(),
			)
			p.recordDataset(s.dataset, err, start)
			errs = append(errs, fmt.Errorf("%s: %w", s.dataset, err))
			continue
		}
		p.recordDataset(s.dataset, nil, start)
		logging.Debug(p.logger, "poller refreshed dataset",
			logging.FieldDataset, s.dataset,
			logging.FieldCount, n,
			logging.FieldDate, today,
		)
	}

	err := errors.Join(errs...)
	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		p.recordFailure(err, start)
		return err
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed datasets",
		logging.FieldDate, today,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordDataset(dataset string, err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	ds := p.status.Datasets[dataset]
	if err != nil {
		ds.ConsecutiveFailures++
		ds.LastError = err.Error()
	} else {
		ds.ConsecutiveFailures = 0
		ds.LastError = ""
		ds.LastSuccess = at
	}
	p.status.Datasets[dataset] = ds
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	out := p.status
	out.Datasets = maps.Clone(p.status.Datasets)
	return out
}
