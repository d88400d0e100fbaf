package stocktake

import (
	"github.com/stocktake/stocktake/pkg/cleaner"
	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
)

// Option is a function that configures a Runner.
type Option func(*config) error

// config holds the runner configuration assembled from options.
type config struct {
	path1, path2   string
	label1, label2 string
	outDir         string
	chart          bool
	cleanerOpts    []cleaner.Option
	cleaner        *cleaner.Cleaner
}

// defaultConfig returns the baseline configuration.
func defaultConfig() *config {
	return &config{
		label1: constants.DefaultLabel1,
		label2: constants.DefaultLabel2,
		chart:  true,
	}
}

// validate checks the assembled configuration and builds the cleaner.
func (c *config) validate() error {
	if c.path1 == "" || c.path2 == "" {
		return errors.NewValidationError("snapshots", nil, "two snapshot paths are required")
	}
	if c.label1 == c.label2 {
		return errors.NewValidationError("labels", c.label1, "snapshot labels must differ")
	}
	c.cleaner = cleaner.New(c.cleanerOpts...)
	return nil
}

// WithSnapshots sets the two snapshot file paths (older first).
func WithSnapshots(path1, path2 string) Option {
	return func(c *config) error {
		c.path1 = path1
		c.path2 = path2
		return nil
	}
}

// WithLabels overrides the snapshot labels used in logs, issues and the report.
func WithLabels(label1, label2 string) Option {
	return func(c *config) error {
		if label1 != "" {
			c.label1 = label1
		}
		if label2 != "" {
			c.label2 = label2
		}
		return nil
	}
}

// WithOutputDir enables file output into dir. Without it, Run only returns
// in-memory results.
func WithOutputDir(dir string) Option {
	return func(c *config) error {
		c.outDir = dir
		return nil
	}
}

// WithChart toggles rendering of the quantity comparison chart.
func WithChart(enabled bool) Option {
	return func(c *config) error {
		c.chart = enabled
		return nil
	}
}

// WithColumnMap overrides the default column rename map.
func WithColumnMap(renames map[string]string) Option {
	return func(c *config) error {
		c.cleanerOpts = append(c.cleanerOpts, cleaner.WithColumnMap(renames))
		return nil
	}
}
