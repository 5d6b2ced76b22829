package metrics

import (
	"sync"
	"time"
)

type datasetStats struct {
	fetches          int
	errors           int
	lastFetchLatency time.Duration
}

type componentStats struct {
	runs      int
	cacheHits int
	lastRun   time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset fetches and
// aggregation runs, mirrored to OpenTelemetry instruments when configured.
type Recorder struct {
	mu         sync.Mutex
	datasets   map[string]*datasetStats
	components map[string]*componentStats
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		datasets:   make(map[string]*datasetStats),
		components: make(map[string]*componentStats),
		otel:       otel,
	}
}

// RecordFetch counts one dataset fetch and stores its latency.
func (r *Recorder) RecordFetch(dataset string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.datasets[dataset]
	if !ok {
		stats = &datasetStats{}
		r.datasets[dataset] = stats
	}
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(dataset, duration, err)
	}
}

// RecordAggregation counts one run of a derived-state component. Cache hits
// are counted as runs too.
func (r *Recorder) RecordAggregation(component string, duration time.Duration, cacheHit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.components[component]
	if !ok {
		stats = &componentStats{}
		r.components[component] = stats
	}
	stats.runs++
	stats.lastRun = duration
	if cacheHit {
		stats.cacheHits++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAggregation(component, duration, cacheHit)
	}
}

// Snapshot is a copy of the current stats for one dataset.
type Snapshot struct {
	Fetches          int
	Errors           int
	LastFetchLatency time.Duration
}

// Snapshot returns the stats recorded for a dataset.
func (r *Recorder) Snapshot(dataset string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.datasets[dataset]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// ComponentSnapshot is a copy of the current stats for one aggregation component.
type ComponentSnapshot struct {
	Runs      int
	CacheHits int
	LastRun   time.Duration
}

// Component returns the stats recorded for an aggregation component.
func (r *Recorder) Component(component string) ComponentSnapshot {
	if r == nil {
		return ComponentSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.components[component]
	if !ok {
		return ComponentSnapshot{}
	}
	return ComponentSnapshot{
		Runs:      stats.runs,
		CacheHits: stats.cacheHits,
		LastRun:   stats.lastRun,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}
