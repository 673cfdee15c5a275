package excelize_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkoscik/tabtalk"
	tabexcel "github.com/pkoscik/tabtalk/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriter_WriteTable(t *testing.T) {
	t.Parallel()

	t.Run("round-trips table content cell for cell", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable(
			[]string{"Country", "Active Personnel"},
			[][]string{
				{"France", "200000"},
				{"Germany", "180000"},
			},
		)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "out.xlsx")
		err = tabexcel.NewWriter(path).WriteTable(context.Background(), table)
		require.NoError(t, err)

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Sheet1")
		require.NoError(t, err)

		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Country", "Active Personnel"}, rows[0])
		assert.Equal(t, []string{"France", "200000"}, rows[1])
		assert.Equal(t, []string{"Germany", "180000"}, rows[2])
	})

	t.Run("writes header only for empty table", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable([]string{"Country"}, nil)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "empty.xlsx")
		err = tabexcel.NewWriter(path).WriteTable(context.Background(), table)
		require.NoError(t, err)

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"Country"}, rows[0])
	})

	t.Run("returns error for unwritable path", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable([]string{"Country"}, nil)
		require.NoError(t, err)

		err = tabexcel.NewWriter("/nonexistent/dir/out.xlsx").WriteTable(context.Background(), table)
		require.Error(t, err)
	})
}
