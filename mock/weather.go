package mock

import (
	"context"

	"github.com/flightbag/flightbag"
)

var _ flightbag.WeatherService = (*WeatherService)(nil)

// WeatherService is a mock implementation of flightbag.WeatherService.
type WeatherService struct {
	METARsFn   func(ctx context.Context, station string) ([]flightbag.METAR, error)
	TAFsFn     func(ctx context.Context, station string) ([]flightbag.TAF, error)
	RawMETARFn func(ctx context.Context, station string) (string, error)
	RawTAFFn   func(ctx context.Context, station string) (string, error)
}

func (s *WeatherService) METARs(ctx context.Context, station string) ([]flightbag.METAR, error) {
	return s.METARsFn(ctx, station)
}

func (s *WeatherService) TAFs(ctx context.Context, station string) ([]flightbag.TAF, error) {
	return s.TAFsFn(ctx, station)
}

func (s *WeatherService) RawMETAR(ctx context.Context, station string) (string, error) {
	return s.RawMETARFn(ctx, station)
}

func (s *WeatherService) RawTAF(ctx context.Context, station string) (string, error) {
	return s.RawTAFFn(ctx, station)
}
