package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envSnapshotDir  = "SNAPSHOT_DIR"
	envTimezone     = "SEASON_TIMEZONE"
	envCacheSize    = "CACHE_SIZE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken   = "ADMIN_TOKEN"
	envSnapRecord   = "SNAPSHOT_RECORD"
	envSnapRetain   = "SNAPSHOT_RETENTION_DAYS"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"

	defaultPort          = "4000"
	// Datasets move at most a few times per period of a game.
	defaultPollInterval  = 2 * time.Minute
	defaultProvider      = "fixture"
	defaultSnapshotDir   = "data/snapshots"
	defaultTimezone      = "America/New_York"
	defaultCacheSize     = 64
	defaultRetentionDays = 14
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nhl-fantasy-service"
)

// Provider names accepted in PROVIDER.
const (
	ProviderFixture  = "fixture"
	ProviderSnapshot = "snapshot"
)
