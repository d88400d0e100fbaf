// Package constants provides shared constants used throughout the stocktake
// codebase: file permissions, cleaning limits, and output file names.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Cleaning limits
const (
	// MaxFormatIssues caps the number of SKU_FORMAT issues recorded per
	// snapshot so one badly exported feed cannot flood the report.
	MaxFormatIssues = 200
)

// Output file names written into the output directory
const (
	// ItemsFileName is the reconciliation table output
	ItemsFileName = "reconciliation_items.csv"

	// ReportFileName is the structured JSON report output
	ReportFileName = "reconciliation_report.json"

	// ChartFileName is the total-quantity comparison chart output
	ChartFileName = "quantity_chart.png"
)

// Default snapshot labels
const (
	// DefaultLabel1 labels the first (older) snapshot
	DefaultLabel1 = "week1"

	// DefaultLabel2 labels the second (newer) snapshot
	DefaultLabel2 = "week2"
)
