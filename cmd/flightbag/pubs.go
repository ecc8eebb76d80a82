package main

import (
	"fmt"

	"github.com/flightbag/flightbag"
)

// Run executes the pubs command.
func (c *PubsCmd) Run(deps *Dependencies) error {
	if c.List || c.Alias == "" {
		pubs, err := deps.Pubs.Pubs(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Available pubs (from %s):\n", deps.ConfigPath)
		deps.Renderer.Pubs(pubs)
		return nil
	}

	pub, err := deps.Pubs.FindPub(deps.Ctx, c.Alias)
	if flightbag.ErrorCode(err) == flightbag.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "Unknown pub %q. Run 'flightbag pubs --list' to see aliases.\n", c.Alias)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
		return err
	}

	if deps.NoOpen {
		fmt.Fprintln(deps.Stdout, pub.URL)
		return nil
	}
	if err := deps.Opener.Open(pub.URL); err != nil {
		fmt.Fprintln(deps.Stdout, pub.URL)
	}
	return nil
}
