// Package slog provides logging decorators for the flightbag service
// interfaces. The CLI installs them when --verbose is set.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/flightbag/flightbag"
)

// Ensure LoggingWeatherService implements flightbag.WeatherService.
var _ flightbag.WeatherService = (*LoggingWeatherService)(nil)

// LoggingWeatherService wraps a WeatherService with operation logging.
type LoggingWeatherService struct {
	next   flightbag.WeatherService
	logger *slog.Logger
}

// NewLoggingWeatherService creates a new LoggingWeatherService.
func NewLoggingWeatherService(next flightbag.WeatherService, logger *slog.Logger) *LoggingWeatherService {
	return &LoggingWeatherService{next: next, logger: logger}
}

// METARs delegates to the wrapped service and logs the operation.
func (s *LoggingWeatherService) METARs(ctx context.Context, station string) (obs []flightbag.METAR, err error) {
	defer func(begin time.Time) {
		s.logger.Info("metar fetch",
			"station", station,
			"count", len(obs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.METARs(ctx, station)
}

// TAFs delegates to the wrapped service and logs the operation.
func (s *LoggingWeatherService) TAFs(ctx context.Context, station string) (fcsts []flightbag.TAF, err error) {
	defer func(begin time.Time) {
		s.logger.Info("taf fetch",
			"station", station,
			"count", len(fcsts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.TAFs(ctx, station)
}

// RawMETAR delegates to the wrapped service and logs the operation.
func (s *LoggingWeatherService) RawMETAR(ctx context.Context, station string) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("raw metar fetch",
			"station", station,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RawMETAR(ctx, station)
}

// RawTAF delegates to the wrapped service and logs the operation.
func (s *LoggingWeatherService) RawTAF(ctx context.Context, station string) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("raw taf fetch",
			"station", station,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RawTAF(ctx, station)
}
