package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/config"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base, name := selectProvider(cfg, f.logger)
	return f.wrap(name, base)
}

func (f providerFactory) wrap(name string, base providers.DataProvider) providers.DataProvider {
	return providers.NewInstrumentedProvider(base, normalizeProviderName(name, base), f.logger, f.metrics)
}
