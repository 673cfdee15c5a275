// Package excelize provides an XLSX implementation of tabtalk.TableWriter.
package excelize

import (
	"context"

	"github.com/pkoscik/tabtalk"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet every workbook starts with.
const defaultSheet = "Sheet1"

// Ensure Writer implements tabtalk.TableWriter at compile time.
var _ tabtalk.TableWriter = (*Writer)(nil)

// Writer persists tables as single-sheet XLSX workbooks. The header row
// comes first; no index column is written.
type Writer struct {
	path string
}

// NewWriter creates a Writer that writes to path, replacing any existing
// file.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteTable writes the table to disk.
func (w *Writer) WriteTable(ctx context.Context, table *tabtalk.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, table.Columns()); err != nil {
		return err
	}
	for i, row := range table.Rows() {
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(w.path)
}

// setRow writes cells into row rowNum (1-based), starting at column A.
func setRow(f *excelize.File, rowNum int, cells []string) error {
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}

	values := make([]any, len(cells))
	for i, cell := range cells {
		values[i] = cell
	}
	return f.SetSheetRow(defaultSheet, start, &values)
}
