// Package stocktake reconciles two point-in-time inventory snapshots keyed
// by SKU. It loads raw CSV tables, cleans them while collecting structured
// data-quality issues, performs a full outer-join reconciliation, and
// optionally writes the reconciliation table, JSON report and quantity chart
// to an output directory.
package stocktake

import (
	"context"

	"github.com/stocktake/stocktake/internal/sources/csvfile"
	"github.com/stocktake/stocktake/pkg/chart"
	"github.com/stocktake/stocktake/pkg/cleaner"
	"github.com/stocktake/stocktake/pkg/inventory"
	"github.com/stocktake/stocktake/pkg/logging"
	"github.com/stocktake/stocktake/pkg/reconcile"
	"github.com/stocktake/stocktake/pkg/report"
)

// Runner executes the reconciliation pipeline. Create one with New; a Runner
// is stateless between runs and safe to reuse.
type Runner struct {
	config *config
}

// Result holds everything one pipeline run produced. Output paths are empty
// when no output directory was configured.
type Result struct {
	Week1   *inventory.Snapshot
	Week2   *inventory.Snapshot
	Issues  map[string][]cleaner.Issue
	Items   []reconcile.Item
	Summary reconcile.Summary
	Report  *report.Report

	ItemsPath  string
	ReportPath string
	ChartPath  string
}

// New creates a Runner with the given options. Both snapshot paths are
// required.
func New(opts ...Option) (*Runner, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Runner{config: cfg}, nil
}

// Run executes load → clean → reconcile → write. A schema violation in
// either snapshot fails the run with no partial output; data-quality defects
// are recorded as issues and never abort.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	log := logging.Ctx(ctx)

	week1, issues1, err := r.Clean(ctx, r.config.path1, r.config.label1)
	if err != nil {
		return nil, err
	}
	week2, issues2, err := r.Clean(ctx, r.config.path2, r.config.label2)
	if err != nil {
		return nil, err
	}

	items, summary := reconcile.Reconcile(week1, week2)
	log.Info().
		Int("total", summary.Total).
		Int("added", summary.AddedRows).
		Int("removed", summary.RemovedRows).
		Int("changed", summary.ChangedRows).
		Int("unchanged", summary.UnchangedRows).
		Msg("Reconciled snapshots")

	issues := map[string][]cleaner.Issue{
		r.config.label1: issues1,
		r.config.label2: issues2,
	}

	result := &Result{
		Week1:   week1,
		Week2:   week2,
		Issues:  issues,
		Items:   items,
		Summary: summary,
		Report:  report.New(summary, issues),
	}

	if r.config.outDir == "" {
		return result, nil
	}

	writer, err := report.NewWriter(r.config.outDir)
	if err != nil {
		return nil, err
	}
	if result.ItemsPath, err = writer.WriteItems(items); err != nil {
		return nil, err
	}
	if result.ReportPath, err = writer.WriteReport(result.Report); err != nil {
		return nil, err
	}
	if r.config.chart {
		if result.ChartPath, err = chart.Save(writer.Dir(), r.config.label1, r.config.label2, items); err != nil {
			return nil, err
		}
	}

	log.Info().Str("dir", writer.Dir()).Msg("Wrote reconciliation outputs")
	return result, nil
}

// Clean loads and cleans a single snapshot file. It is used by Run for both
// snapshots and exposed for cleaning one file in isolation.
func (r *Runner) Clean(ctx context.Context, path, label string) (*inventory.Snapshot, []cleaner.Issue, error) {
	table, err := csvfile.Load(path, label)
	if err != nil {
		return nil, nil, err
	}

	snapshot, issues, err := r.config.cleaner.Clean(table)
	if err != nil {
		return nil, nil, err
	}

	logging.Ctx(ctx).Info().
		Str("snapshot", label).
		Int("rows", len(table.Rows)).
		Int("records", len(snapshot.Records)).
		Int("skus", len(snapshot.SKUs())).
		Int("issues", len(issues)).
		Msg("Cleaned snapshot")

	return snapshot, issues, nil
}
