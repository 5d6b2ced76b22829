package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/config"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/snapshots"
)

// selectProvider returns the configured data source and the name it reports under.
func selectProvider(cfg config.Config, logger *slog.Logger) (providers.DataProvider, string) {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New(), config.ProviderFixture
	case config.ProviderSnapshot:
		return snapshots.NewFSStore(cfg.SnapshotDir), snapshots.ProviderName
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New(), config.ProviderFixture
	}
}
