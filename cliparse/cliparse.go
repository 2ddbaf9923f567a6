package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"8080"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	AdminKey     string `env:"ADMIN_KEY"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseFlags loads .env and the environment, then applies CLI overrides
func ParseFlags(args []string) (Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("quickly-pair", flag.ContinueOnError)

	// Env values become the flag defaults so CLI wins when both are set
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "Admin key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unknown database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SlogLevel converts LogLevel to a slog.Level
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
