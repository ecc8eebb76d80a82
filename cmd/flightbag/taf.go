package main

import (
	"encoding/json"
	"fmt"

	"github.com/flightbag/flightbag"
)

// Run executes the taf command.
func (c *TafCmd) Run(deps *Dependencies) error {
	station := flightbag.NormalizeIdent(c.Station)

	if c.Raw {
		text, err := deps.Weather.RawTAF(deps.Ctx, station)
		if flightbag.ErrorCode(err) == flightbag.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "No TAF data found for %s\n", station)
			return nil
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, text)
		return nil
	}

	fcsts, err := deps.Weather.TAFs(deps.Ctx, station)
	if flightbag.ErrorCode(err) == flightbag.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "No TAF data found for %s\n", station)
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
		return err
	}

	return printTAFs(deps, fcsts, c.JSON)
}

// printTAFs renders decoded forecasts: the raw forecast text first when
// present, then a summary header line and the per-period table.
func printTAFs(deps *Dependencies, fcsts []flightbag.TAF, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(fcsts, "", "  ")
		if err != nil {
			return flightbag.Errorf(flightbag.EINTERNAL, "encoding forecasts: %v", err)
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	for i := range fcsts {
		t := &fcsts[i]
		if t.RawText != "" {
			fmt.Fprintln(deps.Stdout, t.RawText)
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, t.Header())
		deps.Renderer.TAF(t)
	}
	return nil
}
