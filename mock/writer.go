package mock

import (
	"context"

	"github.com/pkoscik/tabtalk"
)

var _ tabtalk.TableWriter = (*TableWriter)(nil)

// TableWriter is a mock implementation of tabtalk.TableWriter.
type TableWriter struct {
	WriteTableFn func(ctx context.Context, table *tabtalk.Table) error
}

func (w *TableWriter) WriteTable(ctx context.Context, table *tabtalk.Table) error {
	return w.WriteTableFn(ctx, table)
}
