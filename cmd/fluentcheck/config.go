package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrParsingConfig is returned when the environment cannot be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config holds the environment defaults. Flags override them per invocation.
type Config struct {
	Output    string `env:"FLUENTCHECK_OUTPUT" envDefault:"json"`
	LogLevel  string `env:"FLUENTCHECK_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"FLUENTCHECK_LOG_FORMAT" envDefault:"text"`
	Throw     bool   `env:"FLUENTCHECK_THROW" envDefault:"false"`
}

func loadConfig() (Config, error) {
	return parseConfig(env.Options{})
}

// parseConfig reads Config using opts; tests pass opts.Environment instead of
// touching the process environment.
func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, errors.Join(ErrParsingConfig, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, "text", "json"))
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}
