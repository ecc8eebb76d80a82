package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/flightbag/flightbag"
)

// Ensure LoggingRouteService implements flightbag.RouteService.
var _ flightbag.RouteService = (*LoggingRouteService)(nil)

// LoggingRouteService wraps a RouteService with operation logging.
type LoggingRouteService struct {
	next   flightbag.RouteService
	logger *slog.Logger
}

// NewLoggingRouteService creates a new LoggingRouteService.
func NewLoggingRouteService(next flightbag.RouteService, logger *slog.Logger) *LoggingRouteService {
	return &LoggingRouteService{next: next, logger: logger}
}

// FindRoutes delegates to the wrapped service and logs the operation.
func (s *LoggingRouteService) FindRoutes(ctx context.Context, origin, dest string) (routes []flightbag.PreferredRoute, err error) {
	defer func(begin time.Time) {
		s.logger.Info("route search",
			"origin", origin,
			"dest", dest,
			"count", len(routes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRoutes(ctx, origin, dest)
}
