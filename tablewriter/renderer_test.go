package tablewriter_test

import (
	"bytes"
	"testing"

	"github.com/flightbag/flightbag"
	"github.com/flightbag/flightbag/tablewriter"
	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestRenderer_METAR(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := tablewriter.NewRenderer(&buf)

	r.METAR(&flightbag.METAR{
		StationID:  "KIAD",
		ReportTime: "2026-08-25 16:52:00",
		WindDir:    "270",
		WindSpeed:  f64(8),
		Visibility: "10",
		Temp:       f64(29),
		Dewpoint:   f64(12),
		Altimeter:  f64(30.12),
		FlightCat:  "VFR",
		Clouds:     []flightbag.CloudLayer{{Cover: "FEW", Base: f64(25000)}},
	})

	out := buf.String()
	assert.Contains(t, out, "Station")
	assert.Contains(t, out, "FlightCat")
	assert.Contains(t, out, "KIAD")
	assert.Contains(t, out, "270 8 kt")
	assert.Contains(t, out, "29.0°C/12.0°C (84°F/54°F)")
	assert.Contains(t, out, "30.12 inHg (1020.0 hPa)")
	assert.Contains(t, out, "FEW25000")
}

func TestRenderer_TAF(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := tablewriter.NewRenderer(&buf)

	r.TAF(&flightbag.TAF{
		StationID: "KIAD",
		Forecasts: []flightbag.TAFForecast{
			{
				TimeFrom:  i64(1756141200),
				TimeTo:    i64(1756162800),
				WindDir:   "270",
				WindSpeed: f64(10),
				WxString:  "VCSH",
			},
			{
				TimeFrom: i64(1756162800),
				TimeTo:   i64(1756227600),
				Clouds:   []flightbag.CloudLayer{{Cover: "BKN", Base: f64(5000)}},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Period")
	assert.Contains(t, out, "2025-08-25 17:00 UTC - 2025-08-25 23:00 UTC")
	assert.Contains(t, out, "270 10 kt")
	assert.Contains(t, out, "VCSH")
	assert.Contains(t, out, "BKN5000")
}

func TestRenderer_Routes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := tablewriter.NewRenderer(&buf)

	r.Routes([]flightbag.PreferredRoute{
		{
			Origin:         "IAD",
			Destination:    "RIC",
			Route:          "IAD CAPSS RIC",
			Altitude:       "8000",
			Aircraft:       "TURBOJET",
			DepartureARTCC: "ZDC",
			ArrivalARTCC:   "ZDC",
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Origin")
	assert.Contains(t, out, "D-ARTCC")
	assert.Contains(t, out, "IAD CAPSS RIC")
	assert.Contains(t, out, "TURBOJET")
}

func TestRenderer_ChartList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := tablewriter.NewRenderer(&buf)

	r.ChartList([]flightbag.Chart{
		{Title: "ILS OR LOC RWY 1C", PDF: "00443I1C.PDF"},
		{Title: "AIRPORT DIAGRAM", PDF: "https://charts.example.com/00443AD.PDF"},
	}, "https://api.example.com/v2")

	out := buf.String()
	assert.Contains(t, out, "Idx")
	assert.Contains(t, out, "Title / Name")
	assert.Contains(t, out, "Likely PDF")
	assert.Contains(t, out, "ILS OR LOC RWY 1C")
	// Relative references resolve against the un-versioned API domain.
	assert.Contains(t, out, "https://api.example.com/00443I1C.PDF")
	assert.Contains(t, out, "https://charts.example.com/00443AD.PDF")
}

func TestRenderer_Pubs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := tablewriter.NewRenderer(&buf)

	r.Pubs([]flightbag.Pub{
		{Alias: "green_dragon", URL: "https://example.com/green_dragon"},
		{Alias: "the_fox", URL: "https://example.com/the_fox"},
	})

	assert.Equal(t, " - green_dragon -> https://example.com/green_dragon\n - the_fox -> https://example.com/the_fox\n", buf.String())
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	t.Run("returns URL unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://x.com", tablewriter.TruncateURL("https://x.com", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		url := "https://aeronav.faa.gov/d-tpp/2608/00443I1C.PDF"
		result := tablewriter.TruncateURL(url, 20)
		assert.Equal(t, "...2608/00443I1C.PDF", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns empty string when maxLen is zero", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, tablewriter.TruncateURL("https://example.com", 0))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "htt", tablewriter.TruncateURL("https://example.com", 3))
	})
}
