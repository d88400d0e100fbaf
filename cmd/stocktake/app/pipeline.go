package app

import (
	"github.com/stocktake/stocktake"
)

// PipelineOptions constructs pipeline options from the app configuration.
// Command flags are applied on top of these, so flags win over config file
// and environment values.
func (a *App) PipelineOptions() []stocktake.Option {
	var opts []stocktake.Option

	if a.config.Label1 != "" || a.config.Label2 != "" {
		opts = append(opts, stocktake.WithLabels(a.config.Label1, a.config.Label2))
	}

	if a.config.OutDir != "" {
		opts = append(opts, stocktake.WithOutputDir(a.config.OutDir))
	}

	if !a.config.Chart {
		opts = append(opts, stocktake.WithChart(false))
	}

	if len(a.config.ColumnMap) > 0 {
		opts = append(opts, stocktake.WithColumnMap(a.config.ColumnMap))
	}

	return opts
}
