package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRow struct {
	SKU    string `json:"sku"`
	Status string `json:"status"`
	Delta  *int64 `json:"qty_delta"`
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "json", "yaml", "JSON", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)
	require.NoError(t, f.Format(&buf, map[string]int{"total": 3}))
	assert.Contains(t, buf.String(), `"total": 3`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)
	require.NoError(t, f.Format(&buf, map[string]int{"total": 3}))
	assert.Contains(t, buf.String(), "total: 3")
}

func TestTableFormatterStructSlice(t *testing.T) {
	delta := int64(5)
	rows := []sampleRow{
		{SKU: "SKU-001", Status: "changed", Delta: &delta},
		{SKU: "SKU-002", Status: "added"},
	}

	var buf bytes.Buffer
	f := NewFormatter(FormatTable)
	require.NoError(t, f.Format(&buf, rows))

	out := buf.String()
	assert.Contains(t, out, "Sku")
	assert.Contains(t, out, "Qty Delta")
	assert.Contains(t, out, "SKU-001")
	assert.Contains(t, out, "5")
}

func TestTableFormatterNilPointerRendersEmpty(t *testing.T) {
	rows := []sampleRow{{SKU: "SKU-003", Status: "removed"}}

	var buf bytes.Buffer
	f := &TableFormatter{}
	require.NoError(t, f.Format(&buf, rows))

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.NotContains(t, line, "<nil>")
	}
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	require.NoError(t, f.Format(&buf, []string{"a", "b"}))
	assert.Contains(t, buf.String(), `"a"`)
}

func TestTableFormatterExplicitData(t *testing.T) {
	data := Data{
		Headers: []string{"Label", "Total"},
		Rows:    [][]string{{"week1", "42"}},
	}

	var buf bytes.Buffer
	f := &TableFormatter{}
	require.NoError(t, f.Format(&buf, data))
	assert.Contains(t, buf.String(), "week1")
	assert.Contains(t, buf.String(), "42")
}
