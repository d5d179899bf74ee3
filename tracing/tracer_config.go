package tracing

import (
	"time"

	"github.com/zalgonoise/cfg"
)

// Config holds the connection settings of a GRPCExporter.
type Config struct {
	timeout time.Duration
	useTLS  bool

	username string
	password string
}

// WithTimeout sets the timeout for creating the exporter. Negative durations are ignored, while zero falls back to
// the default timeout of ten seconds.
func WithTimeout(dur time.Duration) cfg.Option[Config] {
	if dur < 0 {
		return cfg.NoOp[Config]{}
	}

	return cfg.Register(func(config Config) Config {
		config.timeout = dur

		return config
	})
}

// WithTLS connects to the collector over TLS, even when no credentials are configured.
func WithTLS() cfg.Option[Config] {
	return cfg.Register(func(config Config) Config {
		config.useTLS = true

		return config
	})
}

// WithBasicAuth sends the input credentials with every export call. It implies WithTLS, as the credentials require a
// secure transport.
func WithBasicAuth(username, password string) cfg.Option[Config] {
	if username == "" && password == "" {
		return cfg.NoOp[Config]{}
	}

	return cfg.Register(func(config Config) Config {
		config.useTLS = true
		config.username = username
		config.password = password

		return config
	})
}
