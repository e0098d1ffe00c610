package pubsub

import "github.com/ecowaste/site/internal/config"

// TracingConfig holds configuration for OpenTelemetry tracing.
type TracingConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	ZipkinURL      string
}

// TracingConfigFrom reads the tracing settings from the application config.
func TracingConfigFrom(cfg config.Provider, version string) TracingConfig {
	return TracingConfig{
		Enabled:        cfg.GetTracingEnabled(),
		ServiceName:    cfg.GetTracingServiceName(),
		ServiceVersion: version,
		ZipkinURL:      cfg.GetZipkinURL(),
	}
}
