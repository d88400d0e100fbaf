package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/stocktake/stocktake/pkg/reconcile"
)

// ItemsHeader is the fixed column order of the reconciliation items table.
var ItemsHeader = []string{
	"sku",
	"name_1",
	"name_2",
	"location_1",
	"location_2",
	"qty_1",
	"qty_2",
	"qty_delta",
	"qty_delta_pct",
	"status",
	"name_mismatch",
	"location_changed",
}

// WriteItems writes the reconciled items as CSV. Missing values serialize as
// empty cells.
func WriteItems(w io.Writer, items []reconcile.Item) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ItemsHeader); err != nil {
		return err
	}
	for _, item := range items {
		record := []string{
			item.SKU,
			optStr(item.Name1),
			optStr(item.Name2),
			optStr(item.Location1),
			optStr(item.Location2),
			optInt(item.Qty1),
			optInt(item.Qty2),
			optInt(item.QtyDelta),
			optFloat(item.QtyDeltaPct),
			string(item.Status),
			strconv.FormatBool(item.NameMismatch),
			strconv.FormatBool(item.LocationChanged),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func optStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func optFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
