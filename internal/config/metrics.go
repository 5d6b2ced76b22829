package config

import "strings"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Port         string `env:"METRICS_PORT" envDefault:"9090"`
	OtlpEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"nhl-fantasy-service"`
	OtlpInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
}

func (m *MetricsConfig) normalize() {
	if strings.TrimSpace(m.Port) == "" {
		m.Port = defaultMetricsPort
	}
	if strings.TrimSpace(m.ServiceName) == "" {
		m.ServiceName = defaultServiceName
	}
}
