package mock

import "github.com/flightbag/flightbag"

var _ flightbag.Opener = (*Opener)(nil)

// Opener is a mock implementation of flightbag.Opener.
type Opener struct {
	OpenFn func(url string) error
}

func (o *Opener) Open(url string) error {
	return o.OpenFn(url)
}
