// Package fs provides file-based persistence for extracted tables and
// fetched pages.
package fs

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/pkoscik/tabtalk"
)

// Ensure CSVWriter implements tabtalk.TableWriter at compile time.
var _ tabtalk.TableWriter = (*CSVWriter)(nil)

// CSVWriter persists tables as comma-separated values. The header row comes
// first; no index column is written.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a CSVWriter that writes to path, replacing any
// existing file.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// WriteTable writes the table to disk.
func (w *CSVWriter) WriteTable(ctx context.Context, table *tabtalk.Table) error {
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(table.Columns()); err != nil {
		f.Close()
		return err
	}
	for _, row := range table.Rows() {
		if err := cw.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
