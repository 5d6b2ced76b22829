package config

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port           string        `env:"PORT" envDefault:"4000"`
	PollInterval   time.Duration `env:"POLL_INTERVAL" envDefault:"2m"`
	Provider       string        `env:"PROVIDER" envDefault:"fixture"`
	SnapshotDir    string        `env:"SNAPSHOT_DIR" envDefault:"data/snapshots"`
	SeasonTimezone string        `env:"SEASON_TIMEZONE" envDefault:"America/New_York"`
	CacheSize      int           `env:"CACHE_SIZE" envDefault:"64"`
	AdminToken     string        `env:"ADMIN_TOKEN"`
	Snapshots      SnapshotConfig
	Log            LogConfig
	Metrics        MetricsConfig
}

// SnapshotConfig controls recording of fetched datasets to SnapshotDir.
type SnapshotConfig struct {
	Record        bool `env:"SNAPSHOT_RECORD" envDefault:"false"`
	RetentionDays int  `env:"SNAPSHOT_RETENTION_DAYS" envDefault:"14"`
}

// LogConfig selects logger level and handler format.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables with sensible defaults.
// Malformed or non-positive durations and sizes fall back to their defaults;
// other malformed values are reported.
func Load() (Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(time.Duration(0)): lenientDuration,
		},
	})
	if err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// lenientDuration maps unparsable input to zero so normalize can apply the default.
func lenientDuration(raw string) (any, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return time.Duration(0), nil
	}
	return d, nil
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.Port) == "" {
		c.Port = defaultPort
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = defaultProvider
	}
	if strings.TrimSpace(c.SnapshotDir) == "" {
		c.SnapshotDir = defaultSnapshotDir
	}
	if strings.TrimSpace(c.SeasonTimezone) == "" {
		c.SeasonTimezone = defaultTimezone
	}
	if c.CacheSize <= 0 {
		c.CacheSize = defaultCacheSize
	}
	if c.Snapshots.RetentionDays <= 0 {
		c.Snapshots.RetentionDays = defaultRetentionDays
	}
	c.AdminToken = strings.TrimSpace(c.AdminToken)
	c.Metrics.normalize()
}

// Location resolves SeasonTimezone, falling back to UTC when unknown.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.SeasonTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
