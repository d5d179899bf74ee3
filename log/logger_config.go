package log

import (
	"io"
	"log/slog"

	"github.com/zalgonoise/cfg"
)

const (
	formatJSON = iota
	formatText
)

type Config struct {
	format int
	source bool
	level  slog.Level
	writer io.Writer

	withTraceID bool
	withSpanID  bool
}

func AsText() cfg.Option[Config] {
	return cfg.Register(func(config Config) Config {
		config.format = formatText

		return config
	})
}

func AsJSON() cfg.Option[Config] {
	return cfg.Register(func(config Config) Config {
		config.format = formatJSON

		return config
	})
}

func WithSource() cfg.Option[Config] {
	return cfg.Register(func(config Config) Config {
		config.source = true

		return config
	})
}

func WithLevel(level slog.Level) cfg.Option[Config] {
	return cfg.Register(func(config Config) Config {
		config.level = level

		return config
	})
}

func WithWriter(w io.Writer) cfg.Option[Config] {
	if w == nil {
		return cfg.NoOp[Config]{}
	}

	return cfg.Register(func(config Config) Config {
		config.writer = w

		return config
	})
}

func WithTraceContext(withSpanID bool) cfg.Option[Config] {
	return cfg.Register(func(config Config) Config {
		config.withTraceID = true
		config.withSpanID = withSpanID

		return config
	})
}
