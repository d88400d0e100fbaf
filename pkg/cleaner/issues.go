package cleaner

// IssueKind identifies a class of data-quality defect found while cleaning.
type IssueKind string

const (
	// IssueDroppedMissingKey indicates a row dropped for a missing SKU or location.
	IssueDroppedMissingKey IssueKind = "DROPPED_MISSING_KEY"
	// IssueNonNumericQuantity indicates a quantity that could not be parsed.
	IssueNonNumericQuantity IssueKind = "NULL_OR_NONNUMERIC_QUANTITY"
	// IssueFloatQuantity indicates a fractional quantity rounded to an integer.
	IssueFloatQuantity IssueKind = "FLOAT_QUANTITY"
	// IssueNegativeQuantity indicates a negative quantity retained as-is.
	IssueNegativeQuantity IssueKind = "NEGATIVE_QUANTITY"
	// IssueDuplicateKey indicates rows aggregated for sharing a (sku, location) key.
	IssueDuplicateKey IssueKind = "DUPLICATE_KEY"
	// IssueSKUFormat indicates a SKU rewritten by normalization.
	IssueSKUFormat IssueKind = "SKU_FORMAT"
)

// Issue is one structured data-quality record. Issues are append-only,
// ordered by detection, and never mutated after creation.
type Issue struct {
	// Snapshot is the label of the snapshot the issue was found in.
	Snapshot string `json:"snapshot_id"`
	// Row is the 1-based data row the issue refers to (header excluded).
	// For duplicate groups it references the first member row.
	Row int `json:"row_reference"`
	// Kind classifies the issue.
	Kind IssueKind `json:"issue_kind"`
	// Detail carries the kind-specific payload.
	Detail Detail `json:"detail"`
}

// Detail is the tagged payload of an Issue. Consumers switch on the concrete
// type rather than parsing strings.
type Detail interface {
	IssueKind() IssueKind
}

// MissingKey details a dropped row; Field names the missing key column.
type MissingKey struct {
	Field string `json:"field"`
	Raw   string `json:"raw,omitempty"`
}

// IssueKind implements Detail.
func (MissingKey) IssueKind() IssueKind { return IssueDroppedMissingKey }

// NonNumericQuantity details an unparseable quantity value.
type NonNumericQuantity struct {
	Raw string `json:"raw"`
}

// IssueKind implements Detail.
func (NonNumericQuantity) IssueKind() IssueKind { return IssueNonNumericQuantity }

// FloatQuantity details a fractional quantity and the integer it was rounded to.
type FloatQuantity struct {
	Before float64 `json:"before"`
	After  int64   `json:"after"`
}

// IssueKind implements Detail.
func (FloatQuantity) IssueKind() IssueKind { return IssueFloatQuantity }

// NegativeQuantity details a negative quantity retained unmodified.
type NegativeQuantity struct {
	Value int64 `json:"value"`
}

// IssueKind implements Detail.
func (NegativeQuantity) IssueKind() IssueKind { return IssueNegativeQuantity }

// DuplicateKey details a (sku, location) group collapsed by aggregation.
type DuplicateKey struct {
	SKU      string `json:"sku"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// IssueKind implements Detail.
func (DuplicateKey) IssueKind() IssueKind { return IssueDuplicateKey }

// SKUFormat details a SKU rewritten into canonical form.
type SKUFormat struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// IssueKind implements Detail.
func (SKUFormat) IssueKind() IssueKind { return IssueSKUFormat }
