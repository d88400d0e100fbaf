package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/internal/cmd/output"
	"github.com/stocktake/stocktake/internal/sources/csvfile"
	"github.com/stocktake/stocktake/pkg/cleaner"
	"github.com/stocktake/stocktake/pkg/inventory"
)

// NewCleanCommand creates the clean command with app dependencies.
func NewCleanCommand(app AppContext) *cobra.Command {
	var (
		label   string
		renames map[string]string
	)

	cmd := &cobra.Command{
		Use:   "clean <snapshot.csv>",
		Short: "Clean a single inventory snapshot",
		Long: `Clean loads one snapshot CSV, harmonizes its columns, normalizes SKUs,
coerces quantities and aggregates duplicate rows. It prints the cleaned
records together with every data-quality issue found, without running a
reconciliation.`,
		Example: `  stocktake clean week1.csv
  stocktake clean export.csv --label latest -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := csvfile.Load(args[0], label)
			if err != nil {
				return err
			}

			c := cleaner.New(cleaner.WithColumnMap(renames))
			snapshot, issues, err := c.Clean(table)
			if err != nil {
				return err
			}

			app.Logger().Info().
				Str("snapshot", label).
				Int("rows", len(table.Rows)).
				Int("records", len(snapshot.Records)).
				Int("issues", len(issues)).
				Msg("Cleaned snapshot")

			return printCleanResult(cmd, app, snapshot, issues)
		},
	}

	cmd.Flags().StringVar(&label, "label", "snapshot", "label used in logs and issue records")
	cmd.Flags().StringToStringVar(&renames, "rename", nil, "column renames as raw=canonical pairs (replaces the defaults)")

	return cmd
}

// cleanResult is the json/yaml payload for the clean command.
type cleanResult struct {
	Snapshot *inventory.Snapshot `json:"snapshot"`
	Issues   []cleaner.Issue     `json:"issues"`
}

func printCleanResult(cmd *cobra.Command, app AppContext, snapshot *inventory.Snapshot, issues []cleaner.Issue) error {
	format := output.DetectFormat(app.OutputFormat())
	if format != output.FormatTable {
		formatter := output.NewFormatter(format)
		return formatter.Format(cmd.OutOrStdout(), cleanResult{Snapshot: snapshot, Issues: issues})
	}

	data := output.Data{
		Headers: []string{"Sku", "Name", "Quantity", "Location", "Last Counted"},
	}
	for _, r := range snapshot.Records {
		data.Rows = append(data.Rows, []string{
			r.SKU,
			optString(r.Name),
			optQuantity(r.Quantity),
			r.Location,
			optString(r.LastCounted),
		})
	}

	formatter := &output.TableFormatter{}
	if err := formatter.Format(cmd.OutOrStdout(), data); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d records, %d issues\n", len(snapshot.Records), len(issues))
	for _, issue := range issues {
		fmt.Fprintf(cmd.OutOrStdout(), "  row %d: %s %+v\n", issue.Row, issue.Kind, issue.Detail)
	}
	return nil
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optQuantity(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
