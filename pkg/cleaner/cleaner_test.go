package cleaner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktake/stocktake/pkg/cleaner"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/inventory"
)

func table(label string, columns []string, rows ...inventory.Row) *inventory.Table {
	return &inventory.Table{Label: label, Columns: columns, Rows: rows}
}

func TestCleanMissingRequiredColumn(t *testing.T) {
	c := cleaner.New()

	// location column entirely absent
	tbl := table("week1", []string{"sku", "quantity"},
		inventory.Row{"sku": "SKU-1", "quantity": "1"},
	)

	snap, issues, err := c.Clean(tbl)
	require.Error(t, err)
	assert.True(t, errors.IsSchema(err))
	assert.Nil(t, snap)
	assert.Nil(t, issues)

	var schemaErr *errors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"location"}, schemaErr.Missing)
}

func TestCleanHarmonizesColumns(t *testing.T) {
	c := cleaner.New()

	// source headers use the legacy export names, mixed case and padding
	tbl := table("week1", []string{" Product_Name ", "QTY", "Warehouse", "sku"},
		inventory.Row{" Product_Name ": "Widget", "QTY": "3", "Warehouse": "A", "sku": "SKU-001"},
	)

	snap, issues, err := c.Clean(tbl)
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	assert.Empty(t, issues)

	rec := snap.Records[0]
	assert.Equal(t, "SKU-001", rec.SKU)
	assert.Equal(t, "A", rec.Location)
	require.NotNil(t, rec.Quantity)
	assert.Equal(t, int64(3), *rec.Quantity)
	require.NotNil(t, rec.Name)
	assert.Equal(t, "Widget", *rec.Name)
}

func TestCleanDropsRowsMissingKeyAndLogs(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "SKU-1", "quantity": "5", "location": "A"},
		inventory.Row{"sku": "none", "quantity": "2", "location": "B"},
		inventory.Row{"sku": "SKU-3", "quantity": "1", "location": ""},
	)

	snap, issues, err := c.Clean(tbl)
	require.NoError(t, err)

	require.Len(t, snap.Records, 1)
	assert.Equal(t, "SKU-1", snap.Records[0].SKU)

	require.Len(t, issues, 2)

	assert.Equal(t, cleaner.IssueDroppedMissingKey, issues[0].Kind)
	assert.Equal(t, 2, issues[0].Row)
	assert.Equal(t, cleaner.MissingKey{Field: "sku", Raw: "none"}, issues[0].Detail)

	assert.Equal(t, cleaner.IssueDroppedMissingKey, issues[1].Kind)
	assert.Equal(t, 3, issues[1].Row)
	assert.Equal(t, cleaner.MissingKey{Field: "location"}, issues[1].Detail)
}

func TestCleanQuantityCoercion(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "SKU-1", "quantity": "3.7", "location": "A"},
		inventory.Row{"sku": "SKU-2", "quantity": "oops", "location": "A"},
		inventory.Row{"sku": "SKU-3", "quantity": "-5", "location": "A"},
	)

	snap, issues, err := c.Clean(tbl)
	require.NoError(t, err)
	require.Len(t, snap.Records, 3)

	// "3.7" rounds to 4 and is flagged
	require.NotNil(t, snap.Records[0].Quantity)
	assert.Equal(t, int64(4), *snap.Records[0].Quantity)

	// "oops" becomes missing but the row is retained
	assert.Nil(t, snap.Records[1].Quantity)

	// "-5" is kept unmodified
	require.NotNil(t, snap.Records[2].Quantity)
	assert.Equal(t, int64(-5), *snap.Records[2].Quantity)

	require.Len(t, issues, 3)
	assert.Equal(t, cleaner.IssueFloatQuantity, issues[0].Kind)
	assert.Equal(t, cleaner.FloatQuantity{Before: 3.7, After: 4}, issues[0].Detail)
	assert.Equal(t, cleaner.IssueNonNumericQuantity, issues[1].Kind)
	assert.Equal(t, cleaner.NonNumericQuantity{Raw: "oops"}, issues[1].Detail)
	assert.Equal(t, cleaner.IssueNegativeQuantity, issues[2].Kind)
	assert.Equal(t, cleaner.NegativeQuantity{Value: -5}, issues[2].Detail)
}

func TestCleanRoundsTiesAwayFromZero(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "SKU-1", "quantity": "2.5", "location": "A"},
		inventory.Row{"sku": "SKU-2", "quantity": "-2.5", "location": "A"},
	)

	snap, _, err := c.Clean(tbl)
	require.NoError(t, err)
	assert.Equal(t, int64(3), *snap.Records[0].Quantity)
	assert.Equal(t, int64(-3), *snap.Records[1].Quantity)
}

func TestCleanDuplicateAggregation(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location", "name"},
		inventory.Row{"sku": "SKU-001", "quantity": "3", "location": "A", "name": ""},
		inventory.Row{"sku": "SKU-001", "quantity": "4", "location": "A", "name": "Widget"},
	)

	snap, issues, err := c.Clean(tbl)
	require.NoError(t, err)

	require.Len(t, snap.Records, 1)
	rec := snap.Records[0]
	require.NotNil(t, rec.Quantity)
	assert.Equal(t, int64(7), *rec.Quantity)
	require.NotNil(t, rec.Name)
	assert.Equal(t, "Widget", *rec.Name)

	require.Len(t, issues, 1)
	assert.Equal(t, cleaner.IssueDuplicateKey, issues[0].Kind)
	assert.Equal(t, cleaner.DuplicateKey{SKU: "SKU-001", Location: "A", Count: 2}, issues[0].Detail)
	assert.Equal(t, 1, issues[0].Row)
}

func TestCleanDuplicateSKUDifferentLocationsKept(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "SKU-001", "quantity": "3", "location": "A"},
		inventory.Row{"sku": "SKU-001", "quantity": "4", "location": "B"},
	)

	snap, issues, err := c.Clean(tbl)
	require.NoError(t, err)
	assert.Len(t, snap.Records, 2)
	assert.Empty(t, issues)
}

func TestCleanDuplicateAllQuantitiesMissing(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "SKU-001", "quantity": "x", "location": "A"},
		inventory.Row{"sku": "SKU-001", "quantity": "y", "location": "A"},
	)

	snap, issues, err := c.Clean(tbl)
	require.NoError(t, err)

	require.Len(t, snap.Records, 1)
	assert.Nil(t, snap.Records[0].Quantity, "aggregate of all-missing quantities stays missing")

	// two non-numeric issues then one duplicate issue
	require.Len(t, issues, 3)
	assert.Equal(t, cleaner.IssueNonNumericQuantity, issues[0].Kind)
	assert.Equal(t, cleaner.IssueNonNumericQuantity, issues[1].Kind)
	assert.Equal(t, cleaner.IssueDuplicateKey, issues[2].Kind)
}

func TestCleanDuplicateMixedMissingTreatedAsZero(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "SKU-001", "quantity": "x", "location": "A"},
		inventory.Row{"sku": "SKU-001", "quantity": "4", "location": "A"},
	)

	snap, _, err := c.Clean(tbl)
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	require.NotNil(t, snap.Records[0].Quantity)
	assert.Equal(t, int64(4), *snap.Records[0].Quantity)
}

func TestCleanSKUFormatIssue(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "sku 005", "quantity": "1", "location": "A"},
		inventory.Row{"sku": "SKU-006", "quantity": "1", "location": "A"},
	)

	snap, issues, err := c.Clean(tbl)
	require.NoError(t, err)
	require.Len(t, snap.Records, 2)
	assert.Equal(t, "SKU-005", snap.Records[0].SKU)

	require.Len(t, issues, 1)
	assert.Equal(t, cleaner.IssueSKUFormat, issues[0].Kind)
	assert.Equal(t, cleaner.SKUFormat{From: "sku 005", To: "SKU-005"}, issues[0].Detail)
}

func TestCleanCaseOnlySKUChangeIsNotAFormatIssue(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "sku-005", "quantity": "1", "location": "A"},
		inventory.Row{"sku": "Sku-006", "quantity": "1", "location": "A"},
	)

	snap, issues, err := c.Clean(tbl)
	require.NoError(t, err)
	require.Len(t, snap.Records, 2)
	assert.Equal(t, "SKU-005", snap.Records[0].SKU)
	assert.Equal(t, "SKU-006", snap.Records[1].SKU)

	// The SKUs are still normalized to uppercase, silently.
	assert.Empty(t, issues)
}

func TestCleanIssueOrdering(t *testing.T) {
	c := cleaner.New()

	// one row with a format issue and a float quantity, one dropped row,
	// then a duplicate pair: key issues come before quantity issues within a
	// row, duplicates last
	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "sku_1", "quantity": "1.2", "location": "A"},
		inventory.Row{"sku": "", "quantity": "9", "location": "A"},
		inventory.Row{"sku": "SKU-2", "quantity": "1", "location": "B"},
		inventory.Row{"sku": "SKU-2", "quantity": "2", "location": "B"},
	)

	_, issues, err := c.Clean(tbl)
	require.NoError(t, err)

	kinds := make([]cleaner.IssueKind, len(issues))
	for i, issue := range issues {
		kinds[i] = issue.Kind
	}
	assert.Equal(t, []cleaner.IssueKind{
		cleaner.IssueSKUFormat,
		cleaner.IssueFloatQuantity,
		cleaner.IssueDroppedMissingKey,
		cleaner.IssueDuplicateKey,
	}, kinds)
}

func TestCleanDeterministic(t *testing.T) {
	c := cleaner.New()

	tbl := table("week1", []string{"sku", "quantity", "location"},
		inventory.Row{"sku": "SKU-2", "quantity": "1", "location": "B"},
		inventory.Row{"sku": "SKU-1", "quantity": "2", "location": "A"},
		inventory.Row{"sku": "SKU-2", "quantity": "3", "location": "B"},
	)

	snap1, issues1, err := c.Clean(tbl)
	require.NoError(t, err)
	snap2, issues2, err := c.Clean(tbl)
	require.NoError(t, err)

	assert.Equal(t, snap1, snap2)
	assert.Equal(t, issues1, issues2)

	// first-seen order preserved
	assert.Equal(t, "SKU-2", snap1.Records[0].SKU)
	assert.Equal(t, "SKU-1", snap1.Records[1].SKU)
}

func TestCleanCustomColumnMap(t *testing.T) {
	c := cleaner.New(cleaner.WithColumnMap(map[string]string{
		"item":  "sku",
		"count": "quantity",
		"bin":   "location",
	}))

	tbl := table("week1", []string{"Item", "Count", "Bin"},
		inventory.Row{"Item": "SKU-9", "Count": "2", "Bin": "Z"},
	)

	snap, _, err := c.Clean(tbl)
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "SKU-9", snap.Records[0].SKU)
	assert.Equal(t, "Z", snap.Records[0].Location)
}
