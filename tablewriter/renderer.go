// Package tablewriter renders weather, route, and chart listings as
// terminal tables.
package tablewriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/flightbag/flightbag"
	"github.com/olekukonko/tablewriter"
)

// Renderer writes formatted tables to a terminal.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// newTable applies the house style: headers as given, no cell wrapping.
func (r *Renderer) newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

// METAR renders one observation as a single-row table.
func (r *Renderer) METAR(m *flightbag.METAR) {
	table := r.newTable([]string{"Station", "Time", "Wind", "Vis", "Temp/Dew", "Alt", "FlightCat", "Clouds"})
	table.Append([]string{
		m.StationID,
		m.Time(),
		m.Wind(),
		m.Visibility.String(),
		m.TempDew(),
		m.AltimeterBoth(),
		m.FlightCat,
		m.CloudSummary(),
	})
	table.Render()
}

// TAF renders a forecast's periods, one row each.
func (r *Renderer) TAF(t *flightbag.TAF) {
	table := r.newTable([]string{"Period", "Wind", "Vis", "Wx", "Alt", "Clouds"})
	for i := range t.Forecasts {
		f := &t.Forecasts[i]
		table.Append([]string{
			f.Period(),
			f.Wind(),
			f.Visibility.String(),
			f.WxString,
			f.AltimeterBoth(),
			f.CloudSummary(),
		})
	}
	table.Render()
}

// Routes renders preferred routes, one row each.
func (r *Renderer) Routes(routes []flightbag.PreferredRoute) {
	table := r.newTable([]string{
		"Origin", "Destination", "Route", "Altitude", "Aircraft", "Type",
		"Area", "Direction", "Seq", "Hours1", "Hours2", "Hours3", "D-ARTCC", "A-ARTCC",
	})
	for _, rt := range routes {
		table.Append([]string{
			rt.Origin, rt.Destination, rt.Route, rt.Altitude, rt.Aircraft, rt.Type,
			rt.Area, rt.Direction, rt.Sequence, rt.Hours1, rt.Hours2, rt.Hours3,
			rt.DepartureARTCC, rt.ArrivalARTCC,
		})
	}
	table.Render()
}

// ChartList renders chart candidates with their resolved PDF locations.
// Long URLs keep their tail, which carries the file name.
func (r *Renderer) ChartList(charts []flightbag.Chart, base string) {
	table := r.newTable([]string{"Idx", "Title / Name", "Likely PDF"})
	for i, c := range charts {
		pdf := TruncateURL(flightbag.ResolvePDFURL(base, c.PDF), 72)
		table.Append([]string{strconv.Itoa(i), c.Title, pdf})
	}
	table.Render()
}

// Pubs renders publication bookmarks as "alias -> url" lines.
func (r *Renderer) Pubs(pubs []flightbag.Pub) {
	for _, p := range pubs {
		fmt.Fprintf(r.w, " - %s -> %s\n", p.Alias, p.URL)
	}
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
