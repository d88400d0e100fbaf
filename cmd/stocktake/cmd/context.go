// Package cmd implements the stocktake subcommands. Commands depend on the
// narrow AppContext interface rather than the concrete App type, which keeps
// them testable with stub implementations.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/stocktake/stocktake"
)

// AppContext defines what commands need from the application.
type AppContext interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// PipelineOptions returns pipeline options derived from config file and
	// environment. Command flags are appended after these.
	PipelineOptions() []stocktake.Option

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}
