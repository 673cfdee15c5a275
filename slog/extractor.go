package slog

import (
	"log/slog"
	"time"

	"github.com/pkoscik/tabtalk"
)

// Ensure LoggingExtractor implements tabtalk.TableExtractor.
var _ tabtalk.TableExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TableExtractor with extraction logging.
type LoggingExtractor struct {
	next   tabtalk.TableExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next tabtalk.TableExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the table shape.
func (e *LoggingExtractor) Extract(html string) (*tabtalk.Table, error) {
	begin := time.Now()
	table, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("extract failed",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extract",
		"columns", len(table.Columns()),
		"rows", table.Len(),
		"duration", time.Since(begin),
	)
	return table, nil
}
