package flightbag

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// inHgPerHPa converts between the two altimeter conventions reported by
// aviationweather.gov, which mixes hectopascals and inches of mercury
// depending on the reporting station.
const inHgPerHPa = 0.029529983071445

// METAR represents one decoded surface observation.
type METAR struct {
	StationID  string       `json:"icaoId"`
	RawText    string       `json:"rawOb"`
	ReportTime string       `json:"reportTime"`
	ObsTime    *int64       `json:"obsTime"`
	Temp       *float64     `json:"temp"`
	Dewpoint   *float64     `json:"dewp"`
	WindDir    FlexString   `json:"wdir"`
	WindSpeed  *float64     `json:"wspd"`
	WindGust   *float64     `json:"wgst"`
	Visibility FlexString   `json:"visib"`
	Altimeter  *float64     `json:"altim"`
	FlightCat  string       `json:"fltCat"`
	Clouds     []CloudLayer `json:"clouds"`
}

// UnmarshalJSON accepts both current (icaoId/rawOb) and legacy
// (station_id/raw_text) aviationweather.gov field names.
func (m *METAR) UnmarshalJSON(data []byte) error {
	type alias METAR
	aux := struct {
		*alias
		LegacyStation string `json:"station_id"`
		LegacyRaw     string `json:"raw_text"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if m.StationID == "" {
		m.StationID = aux.LegacyStation
	}
	if m.RawText == "" {
		m.RawText = aux.LegacyRaw
	}
	return nil
}

// Time returns the observation time for display: the station-reported
// timestamp when present, otherwise the unix observation time.
func (m *METAR) Time() string {
	if m.ReportTime != "" {
		return m.ReportTime
	}
	if m.ObsTime != nil {
		return FormatUnix(*m.ObsTime)
	}
	return ""
}

// Wind returns the observation's wind summary, e.g. "270 8 kt G18 kt".
func (m *METAR) Wind() string {
	return windSummary(m.WindDir, m.WindSpeed, m.WindGust)
}

// TempDew returns temperature and dewpoint in both Celsius and
// Fahrenheit, e.g. "21.0°C/12.0°C (70°F/54°F)".
func (m *METAR) TempDew() string {
	switch {
	case m.Temp != nil && m.Dewpoint != nil:
		return fmt.Sprintf("%.1f°C/%.1f°C (%.0f°F/%.0f°F)",
			*m.Temp, *m.Dewpoint, CToF(*m.Temp), CToF(*m.Dewpoint))
	case m.Temp != nil:
		return fmt.Sprintf("%.1f°C (%.0f°F)", *m.Temp, CToF(*m.Temp))
	}
	return ""
}

// AltimeterBoth returns the altimeter setting in both units.
func (m *METAR) AltimeterBoth() string {
	if m.Altimeter == nil {
		return ""
	}
	return FormatAltimeter(*m.Altimeter)
}

// CloudSummary joins cloud layers, e.g. "SCT250, BKN320".
func (m *METAR) CloudSummary() string {
	return cloudSummary(m.Clouds)
}

// TAF represents one decoded terminal aerodrome forecast.
type TAF struct {
	StationID string        `json:"icaoId"`
	RawText   string        `json:"rawTAF"`
	IssueTime string        `json:"issueTime"`
	ValidFrom *int64        `json:"validTimeFrom"`
	ValidTo   *int64        `json:"validTimeTo"`
	Forecasts []TAFForecast `json:"fcsts"`
}

// Header returns the one-line TAF summary: station, issue time, and
// validity period.
func (t *TAF) Header() string {
	var b strings.Builder
	b.WriteString(t.StationID)
	if t.IssueTime != "" {
		fmt.Fprintf(&b, "  issued: %s", t.IssueTime)
	}
	if t.ValidFrom != nil && t.ValidTo != nil {
		fmt.Fprintf(&b, "  valid: %s - %s", FormatUnix(*t.ValidFrom), FormatUnix(*t.ValidTo))
	}
	return b.String()
}

// TAFForecast represents one forecast period within a TAF.
type TAFForecast struct {
	TimeFrom   *int64       `json:"timeFrom"`
	TimeTo     *int64       `json:"timeTo"`
	WindDir    FlexString   `json:"wdir"`
	WindSpeed  *float64     `json:"wspd"`
	WindGust   *float64     `json:"wgst"`
	Visibility FlexString   `json:"visib"`
	WxString   string       `json:"wxString"`
	Altimeter  *float64     `json:"altim"`
	Clouds     []CloudLayer `json:"clouds"`
}

// Period returns the forecast validity window, e.g.
// "2026-08-25 18:00 UTC - 2026-08-26 00:00 UTC".
func (f *TAFForecast) Period() string {
	var from, to string
	if f.TimeFrom != nil {
		from = FormatUnix(*f.TimeFrom)
	}
	if f.TimeTo != nil {
		to = FormatUnix(*f.TimeTo)
	}
	if from == "" && to == "" {
		return ""
	}
	return from + " - " + to
}

// Wind returns the period's wind summary.
func (f *TAFForecast) Wind() string {
	return windSummary(f.WindDir, f.WindSpeed, f.WindGust)
}

// AltimeterBoth returns the period's altimeter setting in both units.
func (f *TAFForecast) AltimeterBoth() string {
	if f.Altimeter == nil {
		return ""
	}
	return FormatAltimeter(*f.Altimeter)
}

// CloudSummary joins the period's cloud layers.
func (f *TAFForecast) CloudSummary() string {
	return cloudSummary(f.Clouds)
}

// CloudLayer represents one reported cloud layer.
type CloudLayer struct {
	Cover string   `json:"cover"`
	Base  *float64 `json:"base"`
}

// String renders the layer as cover plus base, e.g. "BKN320".
func (l CloudLayer) String() string {
	if l.Base == nil {
		return l.Cover
	}
	return l.Cover + strconv.FormatFloat(*l.Base, 'f', -1, 64)
}

// FlexString is a string that also accepts JSON numbers and null.
// aviationweather.gov reports wind direction as either an integer or
// "VRB", and visibility as either a number or a string like "10+".
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// String implements fmt.Stringer.
func (s FlexString) String() string { return string(s) }

// WeatherService retrieves aviation weather products for a station.
type WeatherService interface {
	// METARs returns decoded observations for the station, newest first.
	// Returns ENOTFOUND if the station has no current observation.
	METARs(ctx context.Context, station string) ([]METAR, error)

	// TAFs returns decoded forecasts for the station.
	// Returns ENOTFOUND if the station has no current forecast.
	TAFs(ctx context.Context, station string) ([]TAF, error)

	// RawMETAR returns the unparsed observation text for the station.
	RawMETAR(ctx context.Context, station string) (string, error)

	// RawTAF returns the unparsed forecast text for the station.
	RawTAF(ctx context.Context, station string) (string, error)
}

// CToF converts Celsius to Fahrenheit.
func CToF(c float64) float64 {
	return c*9.0/5.0 + 32.0
}

// FormatAltimeter renders an altimeter setting in both hPa and inHg.
// Values of 50 and above are hectopascals; below that, inches of
// mercury. The two scales do not overlap for plausible settings.
func FormatAltimeter(a float64) string {
	if a >= 50 {
		return fmt.Sprintf("%.1f hPa (%.2f inHg)", a, a*inHgPerHPa)
	}
	return fmt.Sprintf("%.2f inHg (%.1f hPa)", a, a/inHgPerHPa)
}

// FormatUnix renders a unix timestamp as "2006-01-02 15:04 UTC".
func FormatUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format("2006-01-02 15:04 UTC")
}

func windSummary(dir FlexString, spd, gst *float64) string {
	var parts []string
	if dir != "" {
		parts = append(parts, string(dir))
	}
	if spd != nil {
		parts = append(parts, fmt.Sprintf("%.0f kt", *spd))
	}
	if gst != nil {
		parts = append(parts, fmt.Sprintf("G%.0f kt", *gst))
	}
	return strings.Join(parts, " ")
}

func cloudSummary(layers []CloudLayer) string {
	if len(layers) == 0 {
		return ""
	}
	parts := make([]string, 0, len(layers))
	for _, l := range layers {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ", ")
}
