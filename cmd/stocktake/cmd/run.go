package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake"
	"github.com/stocktake/stocktake/internal/cmd/output"
	"github.com/stocktake/stocktake/pkg/logging"
	"github.com/stocktake/stocktake/pkg/reconcile"
)

// NewRunCommand creates the run command with app dependencies.
func NewRunCommand(app AppContext) *cobra.Command {
	var (
		dir     string
		label1  string
		label2  string
		noChart bool
		renames map[string]string
	)

	cmd := &cobra.Command{
		Use:   "run <before.csv> <after.csv>",
		Short: "Reconcile two inventory snapshots",
		Long: `Run cleans both snapshot CSV files, reconciles them by SKU and
classifies every SKU as added, removed, changed or unchanged.

With --dir set, the reconciliation table, the JSON report and the
quantity comparison chart are written into that directory. Without it,
only the summary is printed.`,
		Example: `  stocktake run week1.csv week2.csv --dir out/
  stocktake run before.csv after.csv --label1 before --label2 after
  stocktake run week1.csv week2.csv --rename item_no=sku -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.PipelineOptions()
			opts = append(opts, stocktake.WithSnapshots(args[0], args[1]))
			opts = append(opts, stocktake.WithLabels(label1, label2))
			if dir != "" {
				opts = append(opts, stocktake.WithOutputDir(dir))
			}
			if noChart {
				opts = append(opts, stocktake.WithChart(false))
			}
			if len(renames) > 0 {
				opts = append(opts, stocktake.WithColumnMap(renames))
			}

			runner, err := stocktake.New(opts...)
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			result, err := runner.Run(ctx)
			if err != nil {
				return err
			}

			return printRunResult(cmd, app, result)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to write reconciliation outputs into")
	cmd.Flags().StringVar(&label1, "label1", "", "label for the first snapshot")
	cmd.Flags().StringVar(&label2, "label2", "", "label for the second snapshot")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "skip rendering the quantity comparison chart")
	cmd.Flags().StringToStringVar(&renames, "rename", nil, "column renames as raw=canonical pairs (replaces the defaults)")

	return cmd
}

// printRunResult writes the run outcome to stdout in the configured format.
func printRunResult(cmd *cobra.Command, app AppContext, result *stocktake.Result) error {
	format := output.DetectFormat(app.OutputFormat())
	if format != output.FormatTable {
		formatter := output.NewFormatter(format)
		return formatter.Format(cmd.OutOrStdout(), result.Report)
	}

	data := summaryTable(result)
	formatter := &output.TableFormatter{}
	if err := formatter.Format(cmd.OutOrStdout(), data); err != nil {
		return err
	}

	if result.ItemsPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nItems:  %s\nReport: %s\n", result.ItemsPath, result.ReportPath)
		if result.ChartPath != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Chart:  %s\n", result.ChartPath)
		}
	}
	return nil
}

// summaryTable flattens a run result into a metric/count table.
func summaryTable(result *stocktake.Result) output.Data {
	s := result.Summary

	rows := [][]string{
		{"Total SKUs", strconv.Itoa(s.Total)},
		{string(reconcile.StatusAdded), strconv.Itoa(s.AddedRows)},
		{string(reconcile.StatusRemoved), strconv.Itoa(s.RemovedRows)},
		{string(reconcile.StatusChanged), strconv.Itoa(s.ChangedRows)},
		{string(reconcile.StatusUnchanged), strconv.Itoa(s.UnchangedRows)},
		{"Name mismatches", strconv.Itoa(s.NameMismatches)},
		{"Location changes", strconv.Itoa(s.LocationChanges)},
	}
	for _, label := range []string{result.Week1.Label, result.Week2.Label} {
		rows = append(rows, []string{"Issues in " + label, strconv.Itoa(len(result.Issues[label]))})
	}

	return output.Data{
		Headers: []string{"Metric", "Count"},
		Rows:    rows,
	}
}
