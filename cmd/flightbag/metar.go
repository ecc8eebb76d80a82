package main

import (
	"encoding/json"
	"fmt"

	"github.com/flightbag/flightbag"
)

// Run executes the metar command.
func (c *MetarCmd) Run(deps *Dependencies) error {
	station := flightbag.NormalizeIdent(c.Station)

	if c.Raw {
		text, err := deps.Weather.RawMETAR(deps.Ctx, station)
		if flightbag.ErrorCode(err) == flightbag.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "No METAR data found for %s\n", station)
			return nil
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, text)
		return nil
	}

	obs, err := deps.Weather.METARs(deps.Ctx, station)
	if flightbag.ErrorCode(err) == flightbag.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "No METAR data found for %s\n", station)
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
		return err
	}

	return printMETARs(deps, obs, c.JSON)
}

// printMETARs renders decoded observations: the raw observation line
// first when present, then the decoded table, one entry at a time.
func printMETARs(deps *Dependencies, obs []flightbag.METAR, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(obs, "", "  ")
		if err != nil {
			return flightbag.Errorf(flightbag.EINTERNAL, "encoding observations: %v", err)
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	for i := range obs {
		m := &obs[i]
		if m.RawText != "" {
			fmt.Fprintln(deps.Stdout, m.RawText)
			fmt.Fprintln(deps.Stdout)
		}
		deps.Renderer.METAR(m)
	}
	return nil
}
