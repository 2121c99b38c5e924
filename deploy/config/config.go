package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

type Config struct {
	Log     Log
	Metrics Metrics
}

type Log struct {
	Level string `env:"CONVERTER_LOG_LEVEL" env-default:"warn"`
	File  string `env:"CONVERTER_LOG_FILE" env-default:""`
}

type Metrics struct {
	Summary bool `env:"CONVERTER_METRICS_SUMMARY" env-default:"false"`
}

func NewConfig() *Config {
	cfg, err := ReadConfig()
	if err != nil {
		log.Fatal("Error reading env: ", err)
	}

	return cfg
}

func ReadConfig() (*Config, error) {
	const op = "config.ReadConfig"

	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, op)
	}

	if _, err := cfg.Log.SlogLevel(); err != nil {
		return nil, errors.Wrap(err, op)
	}

	return cfg, nil
}

// SlogLevel maps CONVERTER_LOG_LEVEL onto a slog level.
func (l Log) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.Errorf("unknown log level %q", l.Level)
	}
}
