package flightbag

import "context"

// PreferredRoute represents one FAA preferred route between an airport
// pair, as published in the NFDC preferred routes database.
type PreferredRoute struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Route          string `json:"route"`
	Hours1         string `json:"hours1"`
	Hours2         string `json:"hours2"`
	Hours3         string `json:"hours3"`
	Type           string `json:"type"`
	Area           string `json:"area"`
	Altitude       string `json:"altitude"`
	Aircraft       string `json:"aircraft"`
	Direction      string `json:"direction"`
	Sequence       string `json:"seq"`
	DepartureARTCC string `json:"d_artcc"`
	ArrivalARTCC   string `json:"a_artcc"`
}

// RouteService looks up preferred routes between airport pairs.
type RouteService interface {
	// FindRoutes returns the published preferred routes from origin to
	// destination, in database sequence order.
	// Returns ENOTFOUND if no routes are published for the pair.
	FindRoutes(ctx context.Context, origin, dest string) ([]PreferredRoute, error)
}
