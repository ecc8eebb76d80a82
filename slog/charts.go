package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/flightbag/flightbag"
)

// Ensure LoggingChartSource implements flightbag.ChartSource.
var _ flightbag.ChartSource = (*LoggingChartSource)(nil)

// LoggingChartSource wraps a ChartSource with operation logging.
type LoggingChartSource struct {
	next   flightbag.ChartSource
	logger *slog.Logger
}

// NewLoggingChartSource creates a new LoggingChartSource.
func NewLoggingChartSource(next flightbag.ChartSource, logger *slog.Logger) *LoggingChartSource {
	return &LoggingChartSource{next: next, logger: logger}
}

// Charts delegates to the wrapped source and logs the operation.
func (s *LoggingChartSource) Charts(ctx context.Context, airport string) (charts []flightbag.Chart, err error) {
	defer func(begin time.Time) {
		s.logger.Info("chart lookup",
			"airport", airport,
			"count", len(charts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Charts(ctx, airport)
}
