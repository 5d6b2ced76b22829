package testutil

import (
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/aggregate"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/app/standings"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/store"
)

// SampleDate is the calendar day the sample datasets are loaded for.
const SampleDate = "2024-05-01"

// NewLoadedStore returns a memory store with every sample dataset loaded and
// dayGames stored under SampleDate.
func NewLoadedStore(dayGames []games.Game) *store.MemoryStore {
	ms := store.NewMemoryStore()
	ms.SetRegistry(SampleRegistry())
	ms.SetGames(SampleDate, dayGames)
	ms.SetBracket(SampleBracket())
	ms.SetRankings(SampleRankings())
	ms.SetBets(SampleBets())
	ms.SetRosters(SampleRosters())
	return ms
}

// NewStandingsService builds a standings service over st whose today is SampleDate in UTC.
func NewStandingsService(st standings.Store) *standings.Service {
	return standings.NewService(st, aggregate.NewEngine(aggregate.DefaultCacheSize, nil, nil), time.UTC,
		standings.WithClock(NoonOn(SampleDate)))
}

// NewServiceWithGames builds a standings service backed by a fully loaded store
// with g as the games of SampleDate.
func NewServiceWithGames(g []games.Game) *standings.Service {
	return NewStandingsService(NewLoadedStore(g))
}

// NewEmptyService builds a standings service over a store with nothing loaded.
func NewEmptyService() *standings.Service {
	return NewStandingsService(store.NewMemoryStore())
}
