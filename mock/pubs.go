package mock

import (
	"context"

	"github.com/flightbag/flightbag"
)

var _ flightbag.PubService = (*PubService)(nil)

// PubService is a mock implementation of flightbag.PubService.
type PubService struct {
	FindPubFn func(ctx context.Context, alias string) (*flightbag.Pub, error)
	PubsFn    func(ctx context.Context) ([]flightbag.Pub, error)
}

func (s *PubService) FindPub(ctx context.Context, alias string) (*flightbag.Pub, error) {
	return s.FindPubFn(ctx, alias)
}

func (s *PubService) Pubs(ctx context.Context) ([]flightbag.Pub, error) {
	return s.PubsFn(ctx)
}
