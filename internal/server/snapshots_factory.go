package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/config"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/poller"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/snapshots"
)

// buildSnapshotSink returns a writer that records every fetched dataset under
// SnapshotDir, or nil when recording is off. Replaying from snapshots never
// records, since it would rewrite the files it reads.
func buildSnapshotSink(cfg config.Config, logger *slog.Logger) poller.Sink {
	if !cfg.Snapshots.Record {
		return nil
	}
	if cfg.Provider == config.ProviderSnapshot {
		logging.Warn(logger, "snapshot recording ignored for snapshot provider")
		return nil
	}
	logging.Info(logger, "recording dataset snapshots",
		slog.String("dir", cfg.SnapshotDir),
		slog.Int("retention_days", cfg.Snapshots.RetentionDays),
	)
	return snapshots.NewWriter(cfg.SnapshotDir, cfg.Snapshots.RetentionDays)
}
