package notify

import (
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Config describes a Manager through environment variables.
// Load it with config.Load from pkg/config.
type Config struct {
	Name       string `env:"NOTIFY_MANAGER_NAME"`
	StrictKeys bool   `env:"NOTIFY_STRICT_KEYS" envDefault:"false"`

	// Env selects a logger preset: development, staging or production.
	Env string `env:"NOTIFY_ENV"`

	// LogLevel and LogFormat override the preset. Without Env and overrides
	// the logger writes JSON at warn level.
	LogLevel  string `env:"NOTIFY_LOG_LEVEL"`
	LogFormat string `env:"NOTIFY_LOG_FORMAT"`
}

// Logger builds the logger NewFromConfig gives the manager. opts are applied
// last, e.g. logger.WithOutput in tests.
func (c Config) Logger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{
		logger.WithLevel(slog.LevelWarn),
		logger.WithFormat(logger.FormatJSON),
	}
	if c.Env != "" {
		service := c.Name
		if service == "" {
			service = "notify"
		}
		base = append(base, logger.WithEnvironment(c.Env, service))
	}

	var level slog.Level
	if c.LogLevel != "" && level.UnmarshalText([]byte(c.LogLevel)) == nil {
		base = append(base, logger.WithLevel(level))
	}
	switch format := logger.Format(c.LogFormat); format {
	case logger.FormatJSON, logger.FormatText:
		base = append(base, logger.WithFormat(format))
	}

	base = append(base, logger.WithAttr(logger.Component("notify")))
	return logger.New(append(base, opts...)...)
}

// NewFromConfig builds a Manager from cfg. Explicit options are applied after
// the ones derived from cfg and win over them.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	base := []Option{
		WithName(cfg.Name),
		WithLogger(cfg.Logger()),
	}
	if cfg.StrictKeys {
		base = append(base, WithStrictKeys())
	}
	return New(append(base, opts...)...)
}
