// Package config loads galaxyplot settings from the environment.
//
// Command-line flags are applied on top of the values loaded here.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime options.
type Config struct {
	Galaxy   string `env:"GALAXYPLOT_GALAXY"`
	Headless bool   `env:"GALAXYPLOT_HEADLESS"`
	Out      string `env:"GALAXYPLOT_OUT"`

	Width  int `env:"GALAXYPLOT_WIDTH"  envDefault:"1440"`
	Height int `env:"GALAXYPLOT_HEIGHT" envDefault:"400"`
	Scale  int `env:"GALAXYPLOT_SCALE"  envDefault:"1"`
	TPS    int `env:"GALAXYPLOT_TPS"    envDefault:"60"`

	LogLevel string `env:"GALAXYPLOT_LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the environment configuration with defaults applied.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that the renderers cannot recover from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: invalid scale %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: invalid tps %d", c.TPS)
	}
	if c.Out != "" && !c.Headless {
		return fmt.Errorf("config: --out requires --headless")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: unknown log level %q", s)
	}
}
