package tabtalk

import "context"

// TableWriter persists a Table to an external tabular format.
type TableWriter interface {
	WriteTable(ctx context.Context, table *Table) error
}
