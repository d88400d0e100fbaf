// Package reconcile compares two cleaned inventory snapshots with a full
// outer join on SKU, classifying every SKU as added, removed, unchanged or
// changed and computing quantity deltas and drift flags.
package reconcile

import (
	"math"
	"sort"

	"github.com/stocktake/stocktake/pkg/inventory"
)

// Status classifies one SKU's presence and quantity movement between the two
// snapshots. Statuses are mutually exclusive and purely quantity-driven:
// name or location drift never changes the status.
type Status string

const (
	// StatusAdded means the SKU is present only in the second snapshot.
	StatusAdded Status = "added"
	// StatusRemoved means the SKU is present only in the first snapshot.
	StatusRemoved Status = "removed"
	// StatusUnchanged means the SKU is in both snapshots with equal quantity.
	StatusUnchanged Status = "unchanged"
	// StatusChanged means the SKU is in both snapshots with differing quantity.
	StatusChanged Status = "changed"
)

// Item is one reconciled SKU. Nil fields mean the value was missing on that
// side. Items are immutable once built.
type Item struct {
	SKU             string   `json:"sku"`
	Name1           *string  `json:"name_1"`
	Name2           *string  `json:"name_2"`
	Location1       *string  `json:"location_1"`
	Location2       *string  `json:"location_2"`
	Qty1            *int64   `json:"qty_1"`
	Qty2            *int64   `json:"qty_2"`
	QtyDelta        *int64   `json:"qty_delta"`
	QtyDeltaPct     *float64 `json:"qty_delta_pct"`
	Status          Status   `json:"status"`
	NameMismatch    bool     `json:"name_mismatch"`
	LocationChanged bool     `json:"location_changed"`
}

// Summary aggregates reconciliation results per status. Counts always sum to
// the number of distinct SKUs across both snapshots.
type Summary struct {
	CountsByStatus  map[Status]int `json:"counts_by_status"`
	AddedRows       int            `json:"added_rows"`
	RemovedRows     int            `json:"removed_rows"`
	ChangedRows     int            `json:"changed_rows"`
	UnchangedRows   int            `json:"unchanged_rows"`
	NameMismatches  int            `json:"name_mismatches"`
	LocationChanges int            `json:"location_changes"`
	Total           int            `json:"total"`
}

// HasMovement returns true when any SKU was added, removed or changed.
func (s Summary) HasMovement() bool {
	return s.AddedRows > 0 || s.RemovedRows > 0 || s.ChangedRows > 0
}

// Reconcile performs a full outer join of the two cleaned snapshots keyed on
// SKU. Every SKU present in either snapshot yields exactly one Item; items
// are sorted by (status, sku). Reconcile is stateless and deterministic.
func Reconcile(week1, week2 *inventory.Snapshot) ([]Item, Summary) {
	left := collapseBySKU(week1)
	right := collapseBySKU(week2)

	order := make([]string, 0, len(left.order)+len(right.order))
	order = append(order, left.order...)
	for _, sku := range right.order {
		if _, ok := left.bySKU[sku]; !ok {
			order = append(order, sku)
		}
	}

	items := make([]Item, 0, len(order))
	for _, sku := range order {
		l, inLeft := left.bySKU[sku]
		r, inRight := right.bySKU[sku]

		item := Item{SKU: sku}
		switch {
		case inLeft && inRight:
			item = reconcileBoth(sku, l, r)
		case inLeft:
			item.Status = StatusRemoved
			item.Name1 = l.name
			item.Location1 = l.location
			item.Qty1 = l.quantity
		default:
			item.Status = StatusAdded
			item.Name2 = r.name
			item.Location2 = r.location
			item.Qty2 = r.quantity
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Status != items[j].Status {
			return items[i].Status < items[j].Status
		}
		return items[i].SKU < items[j].SKU
	})

	return items, summarize(items)
}

// reconcileBoth builds the Item for a SKU present on both sides.
func reconcileBoth(sku string, l, r entry) Item {
	item := Item{
		SKU:       sku,
		Name1:     l.name,
		Name2:     r.name,
		Location1: l.location,
		Location2: r.location,
		Qty1:      l.quantity,
		Qty2:      r.quantity,
	}

	if l.quantity != nil && r.quantity != nil {
		delta := *r.quantity - *l.quantity
		item.QtyDelta = &delta
		if *l.quantity != 0 {
			pct := round2(float64(delta) / float64(*l.quantity) * 100)
			item.QtyDeltaPct = &pct
		}
	}

	if quantitiesEqual(l.quantity, r.quantity) {
		item.Status = StatusUnchanged
	} else {
		item.Status = StatusChanged
	}

	// Drift flags are independent signals; they never alter the status.
	item.NameMismatch = l.name != nil && r.name != nil && *l.name != *r.name
	item.LocationChanged = l.location != nil && r.location != nil && *l.location != *r.location

	return item
}

// quantitiesEqual treats two missing quantities as equal; a missing quantity
// never equals a present one.
func quantitiesEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// entry is one snapshot's view of a SKU after per-SKU collapse.
type entry struct {
	quantity *int64
	name     *string
	location *string
}

// collapsed indexes a snapshot by SKU in first-seen order.
type collapsed struct {
	order []string
	bySKU map[string]entry
}

// collapseBySKU folds a snapshot's (sku, location) records into one entry per
// SKU: quantities sum across locations (missing treated as 0 unless every
// record is missing), name takes the first non-missing value, location the
// first-seen value.
func collapseBySKU(s *inventory.Snapshot) collapsed {
	c := collapsed{bySKU: make(map[string]entry, len(s.Records))}

	for _, rec := range s.Records {
		e, seen := c.bySKU[rec.SKU]
		if !seen {
			c.order = append(c.order, rec.SKU)
			e = entry{location: inventory.String(rec.Location)}
		}
		if rec.Quantity != nil {
			if e.quantity == nil {
				e.quantity = inventory.Int64(*rec.Quantity)
			} else {
				sum := *e.quantity + *rec.Quantity
				e.quantity = &sum
			}
		}
		if e.name == nil && rec.Name != nil {
			e.name = rec.Name
		}
		c.bySKU[rec.SKU] = e
	}

	return c
}

// summarize counts items per status and drift flag.
func summarize(items []Item) Summary {
	s := Summary{
		CountsByStatus: make(map[Status]int),
		Total:          len(items),
	}
	for _, item := range items {
		s.CountsByStatus[item.Status]++
		if item.NameMismatch {
			s.NameMismatches++
		}
		if item.LocationChanged {
			s.LocationChanges++
		}
	}
	s.AddedRows = s.CountsByStatus[StatusAdded]
	s.RemovedRows = s.CountsByStatus[StatusRemoved]
	s.ChangedRows = s.CountsByStatus[StatusChanged]
	s.UnchangedRows = s.CountsByStatus[StatusUnchanged]
	return s
}

// round2 rounds to two decimal places, ties away from zero.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
