package tabtalk

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// FilterContains returns the sub-table of rows whose cell in column col
// contains query as a case-insensitive substring, preserving row order.
// The query is matched as literal text: characters that are meaningful in
// pattern languages carry no special meaning here. Rows with an empty cell
// in col never match.
func (t *Table) FilterContains(col int, query string) (*Table, error) {
	if col < 0 || col >= len(t.columns) {
		return nil, Errorf(EINVALID, "column index %d out of range for %d columns", col, len(t.columns))
	}

	m := search.New(language.Und, search.IgnoreCase)

	derived := &Table{columns: t.columns}
	for _, row := range t.rows {
		cell := row[col]
		if cell == "" {
			continue
		}
		if start, _ := m.IndexString(cell, query); start >= 0 {
			derived.rows = append(derived.rows, row)
		}
	}
	return derived, nil
}
