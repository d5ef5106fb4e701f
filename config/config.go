package config

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string   `env:"ENVIRONMENT" envDefault:"development"`
	Logger      Logger   `envPrefix:"LOGGER_"`
	HTTP        HTTP     `envPrefix:"HTTP_"`
	Database    Database `envPrefix:"DATABASE_"`
}

type Logger struct {
	Level  slog.Level `env:"LEVEL" envDefault:"info"`
	Format string     `env:"FORMAT" envDefault:"text"`
}

type HTTP struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type Database struct {
	Driver     string `env:"DRIVER" envDefault:"sqlite"`
	DSN        string `env:"DSN" envDefault:":memory:"`
	Seed       bool   `env:"SEED" envDefault:"false"`
	LogQueries bool   `env:"LOG_QUERIES" envDefault:"false"`
}

// IsDevelopment reports whether development-only surfaces (API document,
// reference page) should be exposed.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

// Load reads an optional .env file then parses SHOWCASE_ prefixed
// environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "could not load .env file")
	}

	return Parse()
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "SHOWCASE_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	switch conf.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, errors.Errorf("unsupported database driver %q", conf.Database.Driver)
	}

	return &conf, nil
}
