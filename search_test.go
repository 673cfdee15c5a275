package tabtalk_test

import (
	"testing"

	"github.com/pkoscik/tabtalk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personnelTable(t *testing.T) *tabtalk.Table {
	t.Helper()
	table, err := tabtalk.NewTable(
		[]string{"Country", "Active Personnel"},
		[][]string{
			{"France", "200000"},
			{"Germany", "180000"},
		},
	)
	require.NoError(t, err)
	return table
}

func TestTable_FilterContains(t *testing.T) {
	t.Parallel()

	t.Run("matches case-insensitive substring", func(t *testing.T) {
		t.Parallel()

		matches, err := personnelTable(t).FilterContains(0, "franc")
		require.NoError(t, err)

		require.Equal(t, 1, matches.Len())
		assert.Equal(t, []string{"France", "200000"}, matches.Row(0))
	})

	t.Run("exact value in original case matches", func(t *testing.T) {
		t.Parallel()

		matches, err := personnelTable(t).FilterContains(0, "France")
		require.NoError(t, err)
		assert.Equal(t, 1, matches.Len())
	})

	t.Run("any case permutation matches", func(t *testing.T) {
		t.Parallel()

		for _, query := range []string{"FRANCE", "fRaNcE", "RANc"} {
			matches, err := personnelTable(t).FilterContains(0, query)
			require.NoError(t, err)
			assert.Equal(t, 1, matches.Len(), "query %q", query)
		}
	})

	t.Run("no match returns empty derived table", func(t *testing.T) {
		t.Parallel()

		matches, err := personnelTable(t).FilterContains(0, "xyz")
		require.NoError(t, err)
		assert.Equal(t, 0, matches.Len())
	})

	t.Run("preserves original row order", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable(
			[]string{"Country"},
			[][]string{{"North Korea"}, {"South Korea"}, {"Korea Republic"}},
		)
		require.NoError(t, err)

		matches, err := table.FilterContains(0, "korea")
		require.NoError(t, err)

		require.Equal(t, 3, matches.Len())
		assert.Equal(t, "North Korea", matches.Row(0)[0])
		assert.Equal(t, "South Korea", matches.Row(1)[0])
		assert.Equal(t, "Korea Republic", matches.Row(2)[0])
	})

	t.Run("regex metacharacters are literal text", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable(
			[]string{"Country"},
			[][]string{{"Congo (DRC)"}, {"U.S."}, {"Costa$Rica"}},
		)
		require.NoError(t, err)

		for query, want := range map[string]string{
			"(drc":  "Congo (DRC)",
			"u.s.":  "U.S.",
			"ta$ri": "Costa$Rica",
		} {
			matches, err := table.FilterContains(0, query)
			require.NoError(t, err)
			require.Equal(t, 1, matches.Len(), "query %q", query)
			assert.Equal(t, want, matches.Row(0)[0])
		}
	})

	t.Run("a dot query does not match everything", func(t *testing.T) {
		t.Parallel()

		matches, err := personnelTable(t).FilterContains(0, ".")
		require.NoError(t, err)
		assert.Equal(t, 0, matches.Len())
	})

	t.Run("empty entity cells never match", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable(
			[]string{"Country", "Active Personnel"},
			[][]string{
				{"", "999"},
				{"France", "200000"},
			},
		)
		require.NoError(t, err)

		matches, err := table.FilterContains(0, "9")
		require.NoError(t, err)
		assert.Equal(t, 0, matches.Len())
	})

	t.Run("filtering does not mutate the base table", func(t *testing.T) {
		t.Parallel()

		table := personnelTable(t)
		_, err := table.FilterContains(0, "franc")
		require.NoError(t, err)

		assert.Equal(t, 2, table.Len())
		assert.Equal(t, []string{"France", "200000"}, table.Row(0))
	})

	t.Run("rejects out-of-range column", func(t *testing.T) {
		t.Parallel()

		_, err := personnelTable(t).FilterContains(2, "franc")
		require.Error(t, err)
		assert.Equal(t, tabtalk.EINVALID, tabtalk.ErrorCode(err))

		_, err = personnelTable(t).FilterContains(-1, "franc")
		require.Error(t, err)
		assert.Equal(t, tabtalk.EINVALID, tabtalk.ErrorCode(err))
	})
}
