// Package report serializes reconciliation results: the row-oriented items
// table (CSV), the structured audit report (JSON), and helpers for writing
// both into an output directory.
package report

import (
	"encoding/json"
	"io"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/stocktake/stocktake/pkg/cleaner"
	"github.com/stocktake/stocktake/pkg/reconcile"
)

// Report is the structured reconciliation report. DataQuality keys are
// snapshot labels; issue lists preserve detection order.
type Report struct {
	GeneratedAt utc.Time                   `json:"generated_at"`
	RunID       string                     `json:"run_id"`
	Summary     reconcile.Summary          `json:"summary"`
	DataQuality map[string][]cleaner.Issue `json:"data_quality"`
}

// New builds a report stamped with the current UTC time and a fresh run ID.
func New(summary reconcile.Summary, issuesByLabel map[string][]cleaner.Issue) *Report {
	if issuesByLabel == nil {
		issuesByLabel = make(map[string][]cleaner.Issue)
	}
	return &Report{
		GeneratedAt: utc.Now(),
		RunID:       uuid.NewString(),
		Summary:     summary,
		DataQuality: issuesByLabel,
	}
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
