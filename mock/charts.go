package mock

import (
	"context"

	"github.com/flightbag/flightbag"
)

var _ flightbag.ChartSource = (*ChartSource)(nil)

// ChartSource is a mock implementation of flightbag.ChartSource.
type ChartSource struct {
	ChartsFn func(ctx context.Context, airport string) ([]flightbag.Chart, error)
}

func (s *ChartSource) Charts(ctx context.Context, airport string) ([]flightbag.Chart, error) {
	return s.ChartsFn(ctx, airport)
}
