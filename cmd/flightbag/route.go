package main

import (
	"encoding/json"
	"fmt"

	"github.com/flightbag/flightbag"
)

// Run executes the route command.
func (c *RouteCmd) Run(deps *Dependencies) error {
	origin := flightbag.RouteIdent(c.Origin)
	dest := flightbag.RouteIdent(c.Destination)

	routes, err := deps.Routes.FindRoutes(deps.Ctx, origin, dest)
	if flightbag.ErrorCode(err) == flightbag.ENOTFOUND {
		fmt.Fprintf(deps.Stdout, "No preferred routes found for %s -> %s\n", origin, dest)
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
		return err
	}

	if c.Raw {
		out, err := json.MarshalIndent(routes, "", "  ")
		if err != nil {
			return flightbag.Errorf(flightbag.EINTERNAL, "encoding routes: %v", err)
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	deps.Renderer.Routes(routes)
	return nil
}
