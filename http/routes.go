package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/flightbag/flightbag"
)

// DefaultRoutesBase is the aviationapi.com preferred routes endpoint
// root.
const DefaultRoutesBase = "https://api.aviationapi.com/v1"

// Ensure RouteService implements flightbag.RouteService at compile time.
var _ flightbag.RouteService = (*RouteService)(nil)

// RouteService fetches FAA preferred routes from aviationapi.com.
type RouteService struct {
	client *Client
	base   string
}

// NewRouteService creates a RouteService. An empty base uses
// DefaultRoutesBase.
func NewRouteService(client *Client, base string) *RouteService {
	if base == "" {
		base = DefaultRoutesBase
	}
	return &RouteService{
		client: client,
		base:   strings.TrimRight(base, "/"),
	}
}

// FindRoutes returns the preferred routes published between the two
// airports. The routes database indexes US airports by their domestic
// 3-letter codes, so identifiers are converted before the query.
func (s *RouteService) FindRoutes(ctx context.Context, origin, dest string) ([]flightbag.PreferredRoute, error) {
	o, d := flightbag.RouteIdent(origin), flightbag.RouteIdent(dest)
	u := fmt.Sprintf("%s/preferred-routes/search?origin=%s&dest=%s", s.base, url.QueryEscape(o), url.QueryEscape(d))

	body, status, err := s.client.get(ctx, u)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, flightbag.Errorf(flightbag.EUNAVAILABLE, "routes API returned HTTP %d for %s -> %s", status, o, d)
	}

	routes, err := decodeRoutes(body)
	if err != nil {
		return nil, flightbag.Errorf(flightbag.EINTERNAL, "unexpected routes payload for %s -> %s", o, d)
	}
	if len(routes) == 0 {
		return nil, flightbag.Errorf(flightbag.ENOTFOUND, "no preferred routes found for %s -> %s", o, d)
	}
	return routes, nil
}

// decodeRoutes accepts the bare-array response and the {"data": [...]}
// wrapper some API versions use.
func decodeRoutes(body []byte) ([]flightbag.PreferredRoute, error) {
	var routes []flightbag.PreferredRoute
	if err := json.Unmarshal(body, &routes); err == nil {
		return routes, nil
	}
	var wrapped struct {
		Data []flightbag.PreferredRoute `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Data, nil
	}
	return nil, fmt.Errorf("unrecognized routes payload")
}
