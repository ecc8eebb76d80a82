package mock

import (
	"context"

	"github.com/flightbag/flightbag"
)

var _ flightbag.RouteService = (*RouteService)(nil)

// RouteService is a mock implementation of flightbag.RouteService.
type RouteService struct {
	FindRoutesFn func(ctx context.Context, origin, dest string) ([]flightbag.PreferredRoute, error)
}

func (s *RouteService) FindRoutes(ctx context.Context, origin, dest string) ([]flightbag.PreferredRoute, error) {
	return s.FindRoutesFn(ctx, origin, dest)
}
