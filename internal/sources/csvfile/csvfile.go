// Package csvfile loads raw snapshot tables from delimited files. It performs
// no cleaning: header names and cell values pass through untouched for the
// cleaner to harmonize.
package csvfile

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"

	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/inventory"
)

// Load reads the CSV file at path into a raw table labeled with label.
// The first record is the header; short rows map only the columns they have.
func Load(path, label string) (*inventory.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	table, err := Read(f, label)
	if err != nil {
		var parseErr *errors.ParseError
		if stderrors.As(err, &parseErr) {
			parseErr.File = path
			return nil, parseErr
		}
		return nil, err
	}
	return table, nil
}

// Read reads CSV data from r into a raw table. Split out from Load so
// callers can read from any stream.
func Read(r io.Reader, label string) (*inventory.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; cleaning decides later
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParseError("csv", "", "empty file", nil)
	}
	if err != nil {
		return nil, errors.WrapParse("csv", "", err)
	}

	table := &inventory.Table{Label: label, Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", "", err)
		}

		row := make(inventory.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
