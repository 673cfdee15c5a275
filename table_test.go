package tabtalk_test

import (
	"testing"

	"github.com/pkoscik/tabtalk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("keeps well-formed rows untouched", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable(
			[]string{"Country", "Active Personnel"},
			[][]string{
				{"France", "200000"},
				{"Germany", "180000"},
			},
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"Country", "Active Personnel"}, table.Columns())
		require.Equal(t, 2, table.Len())
		assert.Equal(t, []string{"France", "200000"}, table.Row(0))
		assert.Equal(t, []string{"Germany", "180000"}, table.Row(1))
	})

	t.Run("drops rows with fewer cells than columns", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable(
			[]string{"Country", "Active Personnel"},
			[][]string{
				{"France", "200000"},
				{"Germany"},
				{},
			},
		)
		require.NoError(t, err)

		require.Equal(t, 1, table.Len())
		assert.Equal(t, []string{"France", "200000"}, table.Row(0))
	})

	t.Run("truncates rows with more cells than columns", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable(
			[]string{"Country", "Active Personnel"},
			[][]string{
				{"France", "200000", "spillover", "extra"},
			},
		)
		require.NoError(t, err)

		require.Equal(t, 1, table.Len())
		assert.Equal(t, []string{"France", "200000"}, table.Row(0))
	})

	t.Run("every row ends up exactly column-width wide", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable(
			[]string{"A", "B", "C"},
			[][]string{
				{"1"},
				{"1", "2"},
				{"1", "2", "3"},
				{"1", "2", "3", "4"},
				{"1", "2", "3", "4", "5"},
			},
		)
		require.NoError(t, err)

		for i := 0; i < table.Len(); i++ {
			assert.Len(t, table.Row(i), 3)
		}
		assert.Equal(t, 3, table.Len())
	})

	t.Run("requires at least one column", func(t *testing.T) {
		t.Parallel()

		_, err := tabtalk.NewTable(nil, nil)
		require.Error(t, err)
		assert.Equal(t, tabtalk.EINVALID, tabtalk.ErrorCode(err))
	})

	t.Run("rejects empty column names", func(t *testing.T) {
		t.Parallel()

		_, err := tabtalk.NewTable([]string{"Country", ""}, nil)
		require.Error(t, err)
		assert.Equal(t, tabtalk.EINVALID, tabtalk.ErrorCode(err))
	})

	t.Run("rejects duplicate column names", func(t *testing.T) {
		t.Parallel()

		_, err := tabtalk.NewTable([]string{"Country", "Country"}, nil)
		require.Error(t, err)
		assert.Equal(t, tabtalk.EINVALID, tabtalk.ErrorCode(err))
	})
}

func TestScrape_Validate(t *testing.T) {
	t.Parallel()

	table, err := tabtalk.NewTable([]string{"Country"}, [][]string{{"France"}})
	require.NoError(t, err)

	t.Run("valid scrape", func(t *testing.T) {
		t.Parallel()

		s := &tabtalk.Scrape{SourceURL: "https://example.com", Table: table}
		assert.NoError(t, s.Validate())
	})

	t.Run("missing source URL", func(t *testing.T) {
		t.Parallel()

		s := &tabtalk.Scrape{Table: table}
		err := s.Validate()
		require.Error(t, err)
		assert.Equal(t, tabtalk.EINVALID, tabtalk.ErrorCode(err))
	})

	t.Run("missing table", func(t *testing.T) {
		t.Parallel()

		s := &tabtalk.Scrape{SourceURL: "https://example.com"}
		err := s.Validate()
		require.Error(t, err)
		assert.Equal(t, tabtalk.EINVALID, tabtalk.ErrorCode(err))
	})
}
