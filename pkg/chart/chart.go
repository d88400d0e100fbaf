// Package chart renders the total-quantity comparison chart for a
// reconciliation run.
package chart

import (
	"io"
	"os"
	"path/filepath"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/reconcile"
)

// Totals sums the present quantities on each side of the reconciled items.
// Missing quantities are excluded from the totals.
func Totals(items []reconcile.Item) (total1, total2 int64) {
	for _, item := range items {
		if item.Qty1 != nil {
			total1 += *item.Qty1
		}
		if item.Qty2 != nil {
			total2 += *item.Qty2
		}
	}
	return total1, total2
}

// Render writes a PNG bar chart comparing the two snapshot totals.
func Render(w io.Writer, label1, label2 string, total1, total2 int64) error {
	bars := gochart.BarChart{
		Title:    "Total inventory quantity by snapshot",
		Width:    600,
		Height:   400,
		BarWidth: 80,
		Bars: []gochart.Value{
			{Label: label1, Value: float64(total1)},
			{Label: label2, Value: float64(total2)},
		},
	}

	// Both totals at zero is a legal input (empty snapshots, all quantities
	// zero or missing) but leaves go-chart with a degenerate value range it
	// refuses to render. Pin the axis so the chart still comes out.
	if total1 == 0 && total2 == 0 {
		bars.YAxis = gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: 1},
		}
	}

	return bars.Render(gochart.PNG, w)
}

// Save renders the chart for items into dir and returns the file path.
func Save(dir, label1, label2 string, items []reconcile.Item) (string, error) {
	total1, total2 := Totals(items)

	path := filepath.Join(dir, constants.ChartFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}
	defer f.Close()

	if err := Render(f, label1, label2, total1, total2); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}
