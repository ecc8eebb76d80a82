package main

import (
	"fmt"

	"github.com/flightbag/flightbag"
	"github.com/flightbag/flightbag/match"
)

// maxSuggestions caps the candidate table shown when a query does not
// resolve to a single chart.
const maxSuggestions = 12

// Run executes the chart command.
func (c *ChartCmd) Run(deps *Dependencies) error {
	airport := flightbag.NormalizeIdent(c.Airport)

	charts, err := deps.Charts.Charts(deps.Ctx, airport)
	if flightbag.ErrorCode(err) == flightbag.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "No charts found for %s\n", airport)
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flightbag.ErrorMessage(err))
		return err
	}

	query := match.NewQuery(airport, c.Query)
	result := match.Resolve(charts, query, match.DefaultThresholds())

	switch result.Decision {
	case match.Single:
		return c.open(deps, charts, result.Best)
	case match.Ambiguous:
		c.suggest(deps, scoredCharts(result.Charts))
	default:
		c.suggest(deps, charts)
	}
	return nil
}

// open prints or opens every page of the resolved chart. Continuation
// pages ride along with the base chart, first page first.
func (c *ChartCmd) open(deps *Dependencies, charts []flightbag.Chart, best flightbag.Chart) error {
	pages := match.ContinuationPages(charts, best)
	urls := make([]string, 0, len(pages))
	for _, p := range pages {
		urls = append(urls, flightbag.ResolvePDFURL(deps.ChartsBase, p.PDF))
	}

	if c.Link || deps.NoOpen {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	deps.logger().Debug("opening chart", "url", urls[0])
	if err := deps.Opener.Open(urls[0]); err != nil {
		fmt.Fprintf(deps.Stderr, "failed to open: %s\n", flightbag.ErrorMessage(err))
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
	}
	return nil
}

// suggest lists leading candidates when no single chart wins.
func (c *ChartCmd) suggest(deps *Dependencies, charts []flightbag.Chart) {
	fmt.Fprintln(deps.Stdout, "Multiple possible charts (no strong match).")
	if len(charts) > maxSuggestions {
		charts = charts[:maxSuggestions]
	}
	deps.Renderer.ChartList(charts, deps.ChartsBase)
	fmt.Fprintln(deps.Stdout, "Refine your query or pass a more specific string.")
}

// scoredCharts strips scores from a ranked candidate list.
func scoredCharts(scored []match.Scored) []flightbag.Chart {
	charts := make([]flightbag.Chart, len(scored))
	for i, s := range scored {
		charts[i] = s.Chart
	}
	return charts
}
