package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/flightbag/flightbag"
)

// DefaultChartsBase is the aviationapi.com charts endpoint root.
const DefaultChartsBase = "https://api-v2.aviationapi.com/v2"

// Key aliases observed across charts API versions. Records are matched
// against each alias in order.
var (
	chartTitleKeys = []string{"chart_name", "title", "name", "chartTitle", "chart_title"}
	chartPDFKeys   = []string{"pdf_url", "pdf", "pdf_path", "pdf_name", "file", "filename", "href", "link"}
)

// categoryCodes maps the charts API's category buckets to FAA chart
// codes. Unlisted categories pass through uppercased.
var categoryCodes = map[string]string{
	"airport_diagram": "APD",
	"departure":       "DP",
	"arrival":         "STAR",
	"approach":        "IAP",
	"general":         "GEN",
}

// Ensure ChartService implements flightbag.ChartSource at compile time.
var _ flightbag.ChartSource = (*ChartService)(nil)

// ChartService fetches published charts from the aviationapi.com charts
// endpoint. The endpoint's response shape varies between versions, so
// records are validated before leaving this package and untitled entries
// are dropped.
type ChartService struct {
	client *Client
	base   string
}

// NewChartService creates a ChartService. An empty base uses
// DefaultChartsBase.
func NewChartService(client *Client, base string) *ChartService {
	if base == "" {
		base = DefaultChartsBase
	}
	return &ChartService{
		client: client,
		base:   strings.TrimRight(base, "/"),
	}
}

// Base returns the configured API base URL, for resolving relative PDF
// references in returned charts.
func (s *ChartService) Base() string {
	return s.base
}

// Charts returns every chart published for the airport. An airport with
// no charts under its bare 3-letter identifier is retried under its
// ICAO form before reporting ENOTFOUND.
func (s *ChartService) Charts(ctx context.Context, airport string) ([]flightbag.Chart, error) {
	ident := flightbag.NormalizeIdent(airport)
	charts, err := s.fetch(ctx, ident)
	if err != nil {
		return nil, err
	}
	if len(charts) == 0 {
		if alt, ok := flightbag.AlternateIdent(ident); ok {
			if charts, err = s.fetch(ctx, alt); err != nil {
				return nil, err
			}
		}
	}
	if len(charts) == 0 {
		return nil, flightbag.Errorf(flightbag.ENOTFOUND, "no charts found for %s", ident)
	}
	return charts, nil
}

func (s *ChartService) fetch(ctx context.Context, airport string) ([]flightbag.Chart, error) {
	u := fmt.Sprintf("%s/charts?airport=%s", s.base, url.QueryEscape(airport))
	body, status, err := s.client.get(ctx, u)
	if err != nil {
		return nil, err
	}
	// The API reports unknown airports with an error status; treat that
	// as "no charts" so the identifier fallback can run.
	if status != http.StatusOK {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, flightbag.Errorf(flightbag.EINTERNAL, "unexpected charts payload for %s", airport)
	}

	return extractCharts(payload), nil
}

// extractCharts pulls chart records out of the known response shapes:
// an object with a "charts" category map, a bare array of records, or
// an object of record arrays. Records without a title are dropped.
func extractCharts(payload any) []flightbag.Chart {
	var out []flightbag.Chart

	obj, isObj := payload.(map[string]any)
	if isObj {
		topFAA, topICAO := airportIdents(obj)

		if categories, ok := obj["charts"].(map[string]any); ok {
			for _, category := range sortedKeys(categories) {
				records, ok := categories[category].([]any)
				if !ok {
					continue
				}
				code, known := categoryCodes[category]
				if !known {
					code = strings.ToUpper(category)
				}
				for _, rec := range records {
					if c, ok := extractChart(rec, code, topFAA, topICAO); ok {
						out = append(out, c)
					}
				}
			}
			return out
		}

		// Fallback: an object of record arrays keyed by unknown names.
		for _, key := range sortedKeys(obj) {
			records, ok := obj[key].([]any)
			if !ok {
				continue
			}
			for _, rec := range records {
				if c, ok := extractChart(rec, "", topFAA, topICAO); ok {
					out = append(out, c)
				}
			}
		}
		return out
	}

	if records, ok := payload.([]any); ok {
		for _, rec := range records {
			if c, ok := extractChart(rec, "", "", ""); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// extractChart converts one loosely-typed record into a Chart,
// reporting false for records without a usable title.
func extractChart(rec any, code, topFAA, topICAO string) (flightbag.Chart, bool) {
	obj, ok := rec.(map[string]any)
	if !ok {
		return flightbag.Chart{}, false
	}

	ident := stringField(obj, []string{"faa_ident", "faa", "ident"})
	if ident == "" {
		ident = topFAA
	}
	if ident == "" {
		ident = stringField(obj, []string{"icao_ident", "icao"})
	}
	if ident == "" {
		ident = topICAO
	}

	c := flightbag.Chart{
		Airport: ident,
		Title:   stringField(obj, chartTitleKeys),
		PDF:     stringField(obj, chartPDFKeys),
		Code:    code,
	}
	if err := c.Validate(); err != nil {
		return flightbag.Chart{}, false
	}
	return c, true
}

// airportIdents reads the top-level airport_data identifiers used as a
// fallback for records that carry none of their own.
func airportIdents(obj map[string]any) (faa, icao string) {
	data, ok := obj["airport_data"].(map[string]any)
	if !ok {
		return "", ""
	}
	faa, _ = data["faa_ident"].(string)
	icao, _ = data["icao_ident"].(string)
	return faa, icao
}

// stringField returns the first non-empty string value among the keys.
func stringField(obj map[string]any, keys []string) string {
	for _, k := range keys {
		if v, ok := obj[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// sortedKeys returns the map's keys in sorted order so extraction is
// deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
