package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pkoscik/tabtalk"
	"github.com/pkoscik/tabtalk/mock"
	tabslog "github.com/pkoscik/tabtalk/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs table shape", func(t *testing.T) {
		t.Parallel()

		table, err := tabtalk.NewTable(
			[]string{"Country", "Active Personnel"},
			[][]string{{"France", "200000"}},
		)
		require.NoError(t, err)

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TableExtractor{
			ExtractFn: func(html string) (*tabtalk.Table, error) {
				return table, nil
			},
		}

		extractor := tabslog.NewLoggingExtractor(inner, logger)
		got, err := extractor.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, table, got)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "columns=2")
		assert.Contains(t, output, "rows=1")
	})

	t.Run("logs error and propagates it", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TableExtractor{
			ExtractFn: func(html string) (*tabtalk.Table, error) {
				return nil, tabtalk.Errorf(tabtalk.ENOTFOUND, "no table with class \"wikitable\" found")
			},
		}

		extractor := tabslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "extract failed")
	})
}
