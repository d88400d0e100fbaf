// Package app provides the application context and dependency management
// for the stocktake CLI. It centralizes configuration, logging, and
// command wiring so that commands stay thin and testable.
package app

import (
	"github.com/rs/zerolog"

	"github.com/stocktake/stocktake/internal/cmd/globals"
)

// App represents the stocktake application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Global flags bound to the root command
	flags *globals.Flags

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// Configuration is loaded from env vars, .env files and the optional
// config file; it can be customized further with functional options.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format (table, json, yaml).
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
