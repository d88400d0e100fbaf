// Package cleaner turns raw snapshot tables into cleaned, keyed snapshots,
// surfacing every data-quality defect it repairs or rejects as a structured
// Issue. Cleaning is a pure single pass: the input table is never modified
// and re-running over the same table yields identical output.
package cleaner

import (
	"math"
	"strconv"
	"strings"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/inventory"
)

// DefaultColumnMap is the fixed rename table harmonizing source column names
// across snapshot exports.
func DefaultColumnMap() map[string]string {
	return map[string]string{
		"product_name": "name",
		"qty":          "quantity",
		"warehouse":    "location",
		"updated_at":   "last_counted",
	}
}

// RequiredColumns are the columns every snapshot must carry after
// harmonization.
var RequiredColumns = []string{"sku", "quantity", "location"}

// Cleaner cleans raw snapshot tables. The zero value is not usable; call New.
type Cleaner struct {
	renames  map[string]string
	required []string
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithColumnMap replaces the default column rename map.
func WithColumnMap(renames map[string]string) Option {
	return func(c *Cleaner) {
		if len(renames) > 0 {
			c.renames = renames
		}
	}
}

// WithRequiredColumns replaces the default required column set.
func WithRequiredColumns(columns ...string) Option {
	return func(c *Cleaner) {
		if len(columns) > 0 {
			c.required = columns
		}
	}
}

// New creates a Cleaner with the default rename map and required columns.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		renames:  DefaultColumnMap(),
		required: RequiredColumns,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean cleans one raw table into a Snapshot plus the ordered issue log.
// It returns a SchemaError when a required column is absent after
// harmonization; in that case no snapshot output is produced.
//
// Per row, key-validity issues are logged before quantity issues; rows
// dropped for a missing key produce no further issues. Duplicate-key issues
// are logged after all rows, once per group, in first-seen key order.
func (c *Cleaner) Clean(table *inventory.Table) (*inventory.Snapshot, []Issue, error) {
	columns := c.harmonize(table.Columns)

	if missing := c.missingColumns(columns); len(missing) > 0 {
		return nil, nil, errors.NewSchemaError(table.Label, missing, columns)
	}

	var (
		issues       []Issue
		records      []record
		formatIssues int
	)

	for i, raw := range table.Rows {
		rowNum := i + 1
		row := c.harmonizeRow(raw)

		sku, ok := inventory.NormalizeSKU(row["sku"])
		if !ok {
			issues = append(issues, Issue{
				Snapshot: table.Label,
				Row:      rowNum,
				Kind:     IssueDroppedMissingKey,
				Detail:   MissingKey{Field: "sku", Raw: strings.TrimSpace(row["sku"])},
			})
			continue
		}
		// Case-only differences are not format issues.
		if trimmed := strings.TrimSpace(row["sku"]); sku != strings.ToUpper(trimmed) && formatIssues < constants.MaxFormatIssues {
			formatIssues++
			issues = append(issues, Issue{
				Snapshot: table.Label,
				Row:      rowNum,
				Kind:     IssueSKUFormat,
				Detail:   SKUFormat{From: trimmed, To: sku},
			})
		}

		location := strings.TrimSpace(row["location"])
		if inventory.MissingLocation(location) {
			issues = append(issues, Issue{
				Snapshot: table.Label,
				Row:      rowNum,
				Kind:     IssueDroppedMissingKey,
				Detail:   MissingKey{Field: "location", Raw: location},
			})
			continue
		}

		quantity, qtyIssues := c.coerceQuantity(table.Label, rowNum, row["quantity"])
		issues = append(issues, qtyIssues...)

		records = append(records, record{
			row: rowNum,
			rec: inventory.Record{
				SKU:         sku,
				Location:    location,
				Quantity:    quantity,
				Name:        optionalString(row["name"]),
				LastCounted: optionalString(row["last_counted"]),
			},
		})
	}

	aggregated, dupIssues := c.aggregateDuplicates(table.Label, records)
	issues = append(issues, dupIssues...)

	snapshot := &inventory.Snapshot{Label: table.Label, Records: aggregated}
	return snapshot, issues, nil
}

// record pairs a cleaned row with its source row number for issue references.
type record struct {
	row int
	rec inventory.Record
}

// harmonize applies the rename map to a column name list.
func (c *Cleaner) harmonize(columns []string) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = c.harmonizeName(col)
	}
	return out
}

// harmonizeName trims, lowercases and renames one column name.
func (c *Cleaner) harmonizeName(col string) string {
	name := strings.ToLower(strings.TrimSpace(col))
	if renamed, ok := c.renames[name]; ok {
		return renamed
	}
	return name
}

// harmonizeRow re-keys a raw row by harmonized column names.
func (c *Cleaner) harmonizeRow(raw inventory.Row) inventory.Row {
	row := make(inventory.Row, len(raw))
	for col, val := range raw {
		row[c.harmonizeName(col)] = val
	}
	return row
}

// missingColumns returns required columns absent from the harmonized set.
func (c *Cleaner) missingColumns(columns []string) []string {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}
	var missing []string
	for _, col := range c.required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// coerceQuantity parses a raw quantity value. Unparseable values become
// missing (row retained). Fractional values are rounded half away from zero.
// Negative values are kept unmodified.
func (c *Cleaner) coerceQuantity(label string, rowNum int, raw string) (*int64, []Issue) {
	var issues []Issue

	s := strings.TrimSpace(raw)
	parsed, err := strconv.ParseFloat(s, 64)
	if nullLikeQuantity(s) || err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		issues = append(issues, Issue{
			Snapshot: label,
			Row:      rowNum,
			Kind:     IssueNonNumericQuantity,
			Detail:   NonNumericQuantity{Raw: s},
		})
		return nil, issues
	}

	rounded := math.Round(parsed) // ties round half away from zero
	quantity := int64(rounded)
	if parsed != rounded {
		issues = append(issues, Issue{
			Snapshot: label,
			Row:      rowNum,
			Kind:     IssueFloatQuantity,
			Detail:   FloatQuantity{Before: parsed, After: quantity},
		})
	}
	if quantity < 0 {
		issues = append(issues, Issue{
			Snapshot: label,
			Row:      rowNum,
			Kind:     IssueNegativeQuantity,
			Detail:   NegativeQuantity{Value: quantity},
		})
	}

	return &quantity, issues
}

// aggregateDuplicates groups records by (sku, location) in first-seen order.
// Groups with more than one member collapse to a single record: quantities
// are summed (missing treated as 0 unless every member is missing), the name
// and last-counted fields take the first non-missing value.
func (c *Cleaner) aggregateDuplicates(label string, records []record) ([]inventory.Record, []Issue) {
	type key struct{ sku, location string }

	order := make([]key, 0, len(records))
	groups := make(map[key][]record, len(records))
	for _, r := range records {
		k := key{r.rec.SKU, r.rec.Location}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	var issues []Issue
	out := make([]inventory.Record, 0, len(order))
	for _, k := range order {
		group := groups[k]
		if len(group) == 1 {
			out = append(out, group[0].rec)
			continue
		}

		issues = append(issues, Issue{
			Snapshot: label,
			Row:      group[0].row,
			Kind:     IssueDuplicateKey,
			Detail:   DuplicateKey{SKU: k.sku, Location: k.location, Count: len(group)},
		})

		merged := inventory.Record{SKU: k.sku, Location: k.location}
		var sum int64
		present := false
		for _, r := range group {
			if r.rec.Quantity != nil {
				sum += *r.rec.Quantity
				present = true
			}
			if merged.Name == nil && r.rec.Name != nil {
				merged.Name = r.rec.Name
			}
			if merged.LastCounted == nil && r.rec.LastCounted != nil {
				merged.LastCounted = r.rec.LastCounted
			}
		}
		if present {
			merged.Quantity = &sum
		}
		out = append(out, merged)
	}

	return out, issues
}

// nullLikeQuantity reports whether a trimmed quantity cell is a string null.
func nullLikeQuantity(s string) bool {
	switch strings.ToLower(s) {
	case "", "nan", "none", "null", "na":
		return true
	}
	return false
}

// optionalString trims a raw cell and returns nil for null-like values.
func optionalString(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" || strings.EqualFold(v, "nan") {
		return nil
	}
	return inventory.String(v)
}
