// Package browser opens chart PDFs and publication links in the
// system's default applications.
package browser

import (
	"github.com/flightbag/flightbag"
	"github.com/pkg/browser"
)

// Ensure Opener implements flightbag.Opener at compile time.
var _ flightbag.Opener = (*Opener)(nil)

// Opener launches URLs via the operating system's default handler.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open launches the default handler for the URL. Callers fall back to
// printing the URL when this fails, so the error carries the reason but
// no remedy.
func (o *Opener) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return flightbag.Errorf(flightbag.EUNAVAILABLE, "opening %s: %v", url, err)
	}
	return nil
}
