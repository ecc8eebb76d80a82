package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/flightbag/flightbag"
)

// DefaultWeatherBase is the aviationweather.gov API root.
const DefaultWeatherBase = "https://aviationweather.gov"

// Ensure WeatherService implements flightbag.WeatherService at compile time.
var _ flightbag.WeatherService = (*WeatherService)(nil)

// WeatherService fetches METARs and TAFs from the aviationweather.gov
// data API.
type WeatherService struct {
	client *Client
	base   string
}

// NewWeatherService creates a WeatherService. An empty base uses
// DefaultWeatherBase.
func NewWeatherService(client *Client, base string) *WeatherService {
	if base == "" {
		base = DefaultWeatherBase
	}
	return &WeatherService{
		client: client,
		base:   strings.TrimRight(base, "/"),
	}
}

// METARs returns decoded observations for the station. A station with
// no data under its bare 3-letter identifier is retried under its ICAO
// form before reporting ENOTFOUND.
func (s *WeatherService) METARs(ctx context.Context, station string) ([]flightbag.METAR, error) {
	st := flightbag.NormalizeIdent(station)
	obs, err := s.fetchMETARs(ctx, st)
	if err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		if alt, ok := flightbag.AlternateIdent(st); ok {
			if obs, err = s.fetchMETARs(ctx, alt); err != nil {
				return nil, err
			}
		}
	}
	if len(obs) == 0 {
		return nil, flightbag.Errorf(flightbag.ENOTFOUND, "no METAR data found for %s", st)
	}
	return obs, nil
}

// TAFs returns decoded forecasts for the station, with the same
// identifier fallback as METARs.
func (s *WeatherService) TAFs(ctx context.Context, station string) ([]flightbag.TAF, error) {
	st := flightbag.NormalizeIdent(station)
	fcsts, err := s.fetchTAFs(ctx, st)
	if err != nil {
		return nil, err
	}
	if len(fcsts) == 0 {
		if alt, ok := flightbag.AlternateIdent(st); ok {
			if fcsts, err = s.fetchTAFs(ctx, alt); err != nil {
				return nil, err
			}
		}
	}
	if len(fcsts) == 0 {
		return nil, flightbag.Errorf(flightbag.ENOTFOUND, "no TAF data found for %s", st)
	}
	return fcsts, nil
}

// RawMETAR returns the unparsed observation text for the station.
func (s *WeatherService) RawMETAR(ctx context.Context, station string) (string, error) {
	return s.fetchRaw(ctx, "metar", flightbag.NormalizeIdent(station))
}

// RawTAF returns the unparsed forecast text for the station.
func (s *WeatherService) RawTAF(ctx context.Context, station string) (string, error) {
	return s.fetchRaw(ctx, "taf", flightbag.NormalizeIdent(station))
}

func (s *WeatherService) fetchMETARs(ctx context.Context, station string) ([]flightbag.METAR, error) {
	body, err := s.fetchJSON(ctx, "metar", station)
	if err != nil {
		return nil, err
	}

	var obs []flightbag.METAR
	if err := json.Unmarshal(body, &obs); err == nil {
		return obs, nil
	}
	var wrapper struct {
		Data []flightbag.METAR `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Data != nil {
		return wrapper.Data, nil
	}
	var single flightbag.METAR
	if err := json.Unmarshal(body, &single); err == nil && single.StationID != "" {
		return []flightbag.METAR{single}, nil
	}
	return nil, flightbag.Errorf(flightbag.EINTERNAL, "unexpected METAR payload for %s", station)
}

func (s *WeatherService) fetchTAFs(ctx context.Context, station string) ([]flightbag.TAF, error) {
	body, err := s.fetchJSON(ctx, "taf", station)
	if err != nil {
		return nil, err
	}

	var fcsts []flightbag.TAF
	if err := json.Unmarshal(body, &fcsts); err == nil {
		return fcsts, nil
	}
	var wrapper struct {
		Data []flightbag.TAF `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Data != nil {
		return wrapper.Data, nil
	}
	var single flightbag.TAF
	if err := json.Unmarshal(body, &single); err == nil && single.StationID != "" {
		return []flightbag.TAF{single}, nil
	}
	return nil, flightbag.Errorf(flightbag.EINTERNAL, "unexpected TAF payload for %s", station)
}

func (s *WeatherService) fetchJSON(ctx context.Context, product, station string) ([]byte, error) {
	body, status, err := s.client.get(ctx, s.dataURL(product, station, "json"))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, flightbag.Errorf(flightbag.EUNAVAILABLE, "weather API returned HTTP %d for %s", status, station)
	}
	return body, nil
}

func (s *WeatherService) fetchRaw(ctx context.Context, product, station string) (string, error) {
	text, err := s.fetchRawOnce(ctx, product, station)
	if err != nil {
		return "", err
	}
	if text == "" {
		if alt, ok := flightbag.AlternateIdent(station); ok {
			if text, err = s.fetchRawOnce(ctx, product, alt); err != nil {
				return "", err
			}
		}
	}
	if text == "" {
		return "", flightbag.Errorf(flightbag.ENOTFOUND, "no %s data found for %s", strings.ToUpper(product), station)
	}
	return text, nil
}

func (s *WeatherService) fetchRawOnce(ctx context.Context, product, station string) (string, error) {
	body, status, err := s.client.get(ctx, s.dataURL(product, station, "raw"))
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", flightbag.Errorf(flightbag.EUNAVAILABLE, "weather API returned HTTP %d for %s", status, station)
	}
	return strings.TrimSpace(string(body)), nil
}

func (s *WeatherService) dataURL(product, station, format string) string {
	return fmt.Sprintf("%s/api/data/%s?ids=%s&format=%s",
		s.base, product, url.QueryEscape(station), format)
}
