package flightbag

import (
	"context"
	"strings"
)

// ChartType classifies a published procedure chart.
type ChartType string

// ChartType constants. Values match the FAA chart category codes used by
// the d-TPP metafile and the aviationapi charts endpoint.
const (
	ChartSID     ChartType = "DP"   // standard instrument departure
	ChartSTAR    ChartType = "STAR" // standard terminal arrival
	ChartIAP     ChartType = "IAP"  // instrument approach procedure
	ChartDiagram ChartType = "APD"  // airport diagram
	ChartGeneral ChartType = "GEN"  // minimums, hot spots, misc
	ChartUnknown ChartType = ""
)

// Chart represents one published chart for an airport.
type Chart struct {
	// Airport is the FAA identifier the chart belongs to, as reported by
	// the source (e.g. "IAD").
	Airport string `json:"airport"`

	// Title is the procedure name as published, e.g. "ILS OR LOC RWY 1R".
	// Continuation pages carry a ", CONT.n" suffix.
	Title string `json:"title"`

	// PDF is the chart document reference: an absolute URL, a rooted
	// path, or a bare filename depending on the source.
	PDF string `json:"pdf"`

	// Code is the source's category code (APD, DP, STAR, IAP, GEN).
	// May be empty when the source provides no category.
	Code string `json:"code"`
}

// Validate returns an error if the chart contains invalid fields.
func (c *Chart) Validate() error {
	if c.Title == "" {
		return Errorf(EINVALID, "chart title required")
	}
	return nil
}

// Type returns the chart's classification, preferring the category code
// and falling back to title keywords.
func (c *Chart) Type() ChartType {
	if t := chartTypeFromCode(c.Code); t != ChartUnknown {
		return t
	}
	return InferChartType(c.Title)
}

func chartTypeFromCode(code string) ChartType {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "DP":
		return ChartSID
	case "STAR":
		return ChartSTAR
	case "IAP":
		return ChartIAP
	case "APD":
		return ChartDiagram
	case "GEN":
		return ChartGeneral
	}
	return ChartUnknown
}

// InferChartType guesses a chart classification from title keywords.
// Returns ChartUnknown when no keyword matches.
func InferChartType(title string) ChartType {
	t := strings.ToUpper(title)
	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(t, w) {
				return true
			}
		}
		return false
	}
	switch {
	case contains("ILS", "LOC", "VOR", "RNAV", "RNP", "GPS", "NDB", "RWY"):
		return ChartIAP
	case contains("DIAGRAM"):
		return ChartDiagram
	case contains("ARRIVAL", "ARR", "STAR"):
		return ChartSTAR
	case contains("DEPARTURE", "DEP", "SID"):
		return ChartSID
	}
	return ChartUnknown
}

// ChartSource retrieves the published charts for an airport.
type ChartSource interface {
	// Charts returns every chart published for the airport identifier.
	// Returns ENOTFOUND if the source has no charts for the airport.
	Charts(ctx context.Context, airport string) ([]Chart, error)
}

// ResolvePDFURL resolves a chart's document reference against the API
// base URL. Absolute http(s) and file URLs pass through unchanged;
// protocol-relative refs assume https. Relative refs are joined to the
// base URL truncated at its API version segment, since chart documents
// are served from the domain root rather than the versioned API path.
func ResolvePDFURL(base, ref string) string {
	p := strings.TrimSpace(ref)
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") || strings.HasPrefix(p, "file://") {
		return p
	}
	if strings.HasPrefix(p, "//") {
		return "https:" + p
	}
	domain := strings.TrimRight(base, "/")
	if i := strings.Index(domain, "/v1"); i >= 0 {
		domain = domain[:i]
	} else if i := strings.Index(domain, "/v2"); i >= 0 {
		domain = domain[:i]
	}
	domain = strings.TrimRight(domain, "/")
	if strings.HasPrefix(p, "/") {
		return domain + p
	}
	return domain + "/" + p
}
