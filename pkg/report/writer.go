package report

import (
	"os"
	"path/filepath"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/reconcile"
)

// Writer persists reconciliation outputs into one output directory. The
// directory comes from explicit configuration, never from process-global
// state.
type Writer struct {
	dir string
}

// NewWriter creates the output directory if needed and returns a Writer.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, errors.NewValidationError("dir", dir, "output directory is required")
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// WriteItems writes the reconciliation items CSV and returns its path.
func (w *Writer) WriteItems(items []reconcile.Item) (string, error) {
	path := filepath.Join(w.dir, constants.ItemsFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}
	defer f.Close()

	if err := WriteItems(f, items); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// WriteReport writes the JSON report and returns its path.
func (w *Writer) WriteReport(r *Report) (string, error) {
	path := filepath.Join(w.dir, constants.ReportFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}
	defer f.Close()

	if err := r.WriteJSON(f); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}
