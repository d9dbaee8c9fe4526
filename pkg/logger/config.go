package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the environment driven logger configuration.
type Config struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Level  string `env:"LOG_LEVEL"`  // overrides the environment default when set
	Format string `env:"LOG_FORMAT"` // overrides the environment default when set
}

// Options converts cfg into logger options. Invalid level or format values
// are reported instead of silently ignored.
func (cfg Config) Options(service string) ([]Option, error) {
	opts := []Option{WithEnvironment(cfg.Env, service)}

	if cfg.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("%w: level %q", ErrInvalidConfig, cfg.Level)
		}
		opts = append(opts, WithLevel(level))
	}

	switch f := Format(strings.ToLower(cfg.Format)); f {
	case "":
	case FormatJSON, FormatText:
		opts = append(opts, WithFormat(f))
	default:
		return nil, fmt.Errorf("%w: format %q", ErrInvalidConfig, cfg.Format)
	}

	return opts, nil
}
