package main

import (
	"fmt"

	"github.com/flightbag/flightbag"
	"golang.org/x/sync/errgroup"
)

// Run executes the weather command: METAR and TAF fetched concurrently,
// rendered as two sections. A station missing one product still shows
// the other; transport errors abort both fetches.
func (c *WeatherCmd) Run(deps *Dependencies) error {
	station := flightbag.NormalizeIdent(c.Station)

	if c.Raw {
		return c.runRaw(deps, station)
	}

	var (
		obs      []flightbag.METAR
		fcsts    []flightbag.TAF
		metarErr error
		tafErr   error
	)
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		obs, metarErr = deps.Weather.METARs(ctx, station)
		if metarErr != nil && flightbag.ErrorCode(metarErr) != flightbag.ENOTFOUND {
			return metarErr
		}
		return nil
	})
	g.Go(func() error {
		fcsts, tafErr = deps.Weather.TAFs(ctx, station)
		if tafErr != nil && flightbag.ErrorCode(tafErr) != flightbag.ENOTFOUND {
			return tafErr
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
		return err
	}

	if metarErr != nil {
		fmt.Fprintf(deps.Stderr, "No METAR data found for %s\n", station)
	} else if err := printMETARs(deps, obs, c.JSON); err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout)

	if tafErr != nil {
		fmt.Fprintf(deps.Stderr, "No TAF data found for %s\n", station)
	} else if err := printTAFs(deps, fcsts, c.JSON); err != nil {
		return err
	}
	return nil
}

// runRaw fetches and prints the raw observation and forecast text.
func (c *WeatherCmd) runRaw(deps *Dependencies, station string) error {
	var (
		metarText string
		tafText   string
		metarErr  error
		tafErr    error
	)
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		metarText, metarErr = deps.Weather.RawMETAR(ctx, station)
		if metarErr != nil && flightbag.ErrorCode(metarErr) != flightbag.ENOTFOUND {
			return metarErr
		}
		return nil
	})
	g.Go(func() error {
		tafText, tafErr = deps.Weather.RawTAF(ctx, station)
		if tafErr != nil && flightbag.ErrorCode(tafErr) != flightbag.ENOTFOUND {
			return tafErr
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
		return err
	}

	if metarErr != nil {
		fmt.Fprintf(deps.Stderr, "No METAR data found for %s\n", station)
	} else {
		fmt.Fprintln(deps.Stdout, metarText)
	}

	fmt.Fprintln(deps.Stdout)

	if tafErr != nil {
		fmt.Fprintf(deps.Stderr, "No TAF data found for %s\n", station)
	} else {
		fmt.Fprintln(deps.Stdout, tafText)
	}
	return nil
}
