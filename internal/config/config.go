package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"80"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// FedEx
	FedExAccount     string `envconfig:"FEDEX_ACCOUNT"`
	FedExAccessToken string `envconfig:"FEDEX_ACCESS_TOKEN"`
	FedExBaseURL     string `envconfig:"FEDEX_BASE_URL"`
	FedExGatewayURL  string `envconfig:"FEDEX_GATEWAY_URL"`
	FedExTest        bool   `envconfig:"FEDEX_TEST" default:"false"`
	FedExEnabled     bool   `envconfig:"FEDEX_ENABLED" default:"true"`
	FedExUseMock     bool   `envconfig:"FEDEX_USE_MOCK" default:"false"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"true"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://jaeger-collector.observability.svc.cluster.local:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"fedex-adapter"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("fedex.enabled", c.FedExEnabled),
		attribute.Bool("fedex.test", c.FedExTest),
	}
}
