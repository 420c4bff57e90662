// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/database"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/kvstore"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/tracing"
)

// Config holds every setting the commands need.
type Config struct {
	Addr string `env:"BOOKING_ADDR" envDefault:":8080"`
	// Port, when set, overrides the port part of Addr.
	Port string `env:"PORT"`

	Store      string `env:"BOOKING_STORE" envDefault:"sqlite"`
	SQLitePath string `env:"BOOKING_SQLITE_PATH" envDefault:"booking.db"`
	Postgres   database.PostgresConfig

	LogLevel  string `env:"BOOKING_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BOOKING_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"BOOKING_LOG_FILE"`

	Tracing tracing.Config
}

// Load reads an optional .env file from the working directory, then parses
// the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings that cannot work.
func (c Config) Validate() error {
	switch c.Store {
	case kvstore.KindMemory, kvstore.KindSQLite, kvstore.KindPostgres:
	default:
		return fmt.Errorf("unknown store %q (want memory, sqlite or postgres)", c.Store)
	}
	if c.Store == kvstore.KindSQLite && c.SQLitePath == "" {
		return fmt.Errorf("sqlite store needs BOOKING_SQLITE_PATH")
	}
	return nil
}

// ListenAddr returns the HTTP listen address.
func (c Config) ListenAddr() string {
	if c.Port != "" {
		return ":" + c.Port
	}
	return c.Addr
}

// StoreOptions returns the key-value backend options.
func (c Config) StoreOptions() kvstore.Options {
	return kvstore.Options{
		Kind:        c.Store,
		SQLitePath:  c.SQLitePath,
		PostgresDSN: c.Postgres.DSN(),
	}
}
