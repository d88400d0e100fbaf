// Package inventory defines the core data model for snapshot reconciliation:
// raw tables as loaded from disk, cleaned snapshot records, and the helpers
// shared by the cleaner and reconciler.
package inventory

import (
	"regexp"
	"strings"
)

// Table is one raw snapshot as supplied by a loader. Columns hold the raw
// source headers in order; header harmonization and all cleaning happen in
// the cleaner.
type Table struct {
	// Label identifies the snapshot in logs and issue records (e.g. "week1").
	Label string

	// Columns are the raw source header names in source order.
	Columns []string

	// Rows are raw column-name-to-value mappings, one per source row.
	Rows []Row
}

// Row maps a column name to its raw cell value. Loaders key rows by the raw
// source headers; the cleaner re-keys them by harmonized names.
type Row map[string]string

// Record is one cleaned inventory row. Every retained Record has a non-empty
// SKU and Location. Quantity and Name are nil when the source value was
// missing or unparseable.
type Record struct {
	SKU         string  `json:"sku"`
	Location    string  `json:"location"`
	Quantity    *int64  `json:"quantity"`
	Name        *string `json:"name,omitempty"`
	LastCounted *string `json:"last_counted,omitempty"`
}

// Snapshot is a cleaned table. (SKU, Location) pairs are unique within a
// snapshot after duplicate aggregation; Records preserve first-seen order.
type Snapshot struct {
	Label   string   `json:"label"`
	Records []Record `json:"records"`
}

// SKUs returns the distinct SKUs in the snapshot in first-seen order.
func (s *Snapshot) SKUs() []string {
	seen := make(map[string]bool, len(s.Records))
	skus := make([]string, 0, len(s.Records))
	for _, r := range s.Records {
		if !seen[r.SKU] {
			seen[r.SKU] = true
			skus = append(skus, r.SKU)
		}
	}
	return skus
}

// bareSKU matches normalized identifiers like "SKU12" that are missing the
// canonical separator.
var bareSKU = regexp.MustCompile(`^SKU(\d+)$`)

// nullLike holds string values that semantically represent absence.
var nullLike = map[string]bool{
	"":     true,
	"none": true,
	"nan":  true,
	"null": true,
}

// NormalizeSKU canonicalizes a raw SKU value: surrounding whitespace is
// trimmed, the result is uppercased, internal spaces and underscores are
// stripped, and bare forms like "SKU12" gain the canonical separator
// ("SKU-12"). The empty string and the literals "none", "nan" and "null"
// (any case) normalize to ("", false) meaning missing. NormalizeSKU is
// idempotent.
func NormalizeSKU(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if nullLike[strings.ToLower(s)] {
		return "", false
	}
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	if m := bareSKU.FindStringSubmatch(s); m != nil {
		s = "SKU-" + m[1]
	}
	return s, true
}

// MissingLocation reports whether a trimmed location value is null-like.
// Unlike SKUs, "none" and "null" are accepted as location names; only the
// empty string and "nan" count as missing, matching the source data feeds.
func MissingLocation(loc string) bool {
	l := strings.ToLower(strings.TrimSpace(loc))
	return l == "" || l == "nan"
}

// String returns a pointer to s, for optional fields.
func String(s string) *string { return &s }

// Int64 returns a pointer to v, for optional quantities.
func Int64(v int64) *int64 { return &v }
