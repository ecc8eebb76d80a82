package match

import (
	"sort"
	"strconv"
	"strings"

	"github.com/flightbag/flightbag"
)

// contMarker separates a base chart title from its continuation page
// number, e.g. "AIRPORT DIAGRAM, CONT.1".
const contMarker = ", CONT."

// ContinuationPages collects every page of a multi-page chart: the base
// chart plus its ", CONT.n" continuations, in page order. The base
// chart may itself be a continuation page; pages are gathered for its
// base title. Unparseable continuation numbers sort last. The result is
// never empty: a base chart absent from the candidates comes back
// alone.
func ContinuationPages(candidates []flightbag.Chart, base flightbag.Chart) []flightbag.Chart {
	baseName := base.Title
	if i := strings.Index(baseName, contMarker); i >= 0 {
		baseName = baseName[:i]
	}
	prefix := baseName + contMarker

	type page struct {
		n     int
		chart flightbag.Chart
	}
	var pages []page
	for _, c := range candidates {
		switch {
		case c.Title == baseName:
			pages = append(pages, page{n: 0, chart: c})
		case strings.HasPrefix(c.Title, prefix):
			n, err := strconv.Atoi(strings.TrimSpace(c.Title[len(prefix):]))
			if err != nil {
				n = 999
			}
			pages = append(pages, page{n: n, chart: c})
		}
	}
	if len(pages) == 0 {
		return []flightbag.Chart{base}
	}
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].n < pages[j].n })

	out := make([]flightbag.Chart, len(pages))
	for i, p := range pages {
		out[i] = p.chart
	}
	return out
}
