package tabtalk

// Table is a rectangular mapping of named columns to aligned string rows,
// extracted from a single HTML element. Every row holds exactly one cell per
// column. A Table is never mutated after construction; FilterContains
// returns a derived Table.
type Table struct {
	columns []string
	rows    [][]string
}

// NewTable builds a Table from raw header and row data, normalizing row
// width to the column count: rows with fewer cells than there are columns
// are dropped, rows with more are truncated (trailing cells from merged
// columns are discarded, not realigned).
func NewTable(columns []string, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, Errorf(EINVALID, "table requires at least one column")
	}
	seen := make(map[string]struct{}, len(columns))
	for _, name := range columns {
		if name == "" {
			return nil, Errorf(EINVALID, "table column names must not be empty")
		}
		if _, ok := seen[name]; ok {
			return nil, Errorf(EINVALID, "duplicate table column %q", name)
		}
		seen[name] = struct{}{}
	}

	t := &Table{columns: append([]string(nil), columns...)}
	for _, row := range rows {
		if len(row) < len(columns) {
			continue
		}
		t.rows = append(t.rows, append([]string(nil), row[:len(columns)]...))
	}
	return t, nil
}

// Columns returns the column names in order. The returned slice is shared
// and must not be modified.
func (t *Table) Columns() []string {
	return t.columns
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the cells of row i in column order. The returned slice is
// shared and must not be modified.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// Rows returns all rows in order. The returned slices are shared and must
// not be modified.
func (t *Table) Rows() [][]string {
	return t.rows
}
