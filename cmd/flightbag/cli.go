package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/flightbag/flightbag"
	"github.com/flightbag/flightbag/tablewriter"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	ConfigPath string
	NoOpen     bool
	Logger     *slog.Logger
	Weather    flightbag.WeatherService
	Charts     flightbag.ChartSource
	ChartsBase string
	Routes     flightbag.RouteService
	Pubs       flightbag.PubService
	Opener     flightbag.Opener
	Renderer   *tablewriter.Renderer
}

// logger returns the configured logger, or a discard logger when none
// was wired (tests construct Dependencies directly).
func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log service calls to stderr"`
	NoOpen  bool   `help:"Print URLs instead of opening them"`
	Config  string `help:"Config file path (default: FLIGHTBAG_CONFIG or ~/.config/flightbag/flightbag.toml)"`

	Route   RouteCmd   `cmd:"" help:"Look up FAA preferred routes between two airports"`
	Metar   MetarCmd   `cmd:"" help:"Show the latest METAR for a station"`
	Taf     TafCmd     `cmd:"" help:"Show the TAF for a station"`
	Weather WeatherCmd `cmd:"" help:"Show METAR and TAF together"`
	Chart   ChartCmd   `cmd:"" help:"Find and open instrument procedure charts"`
	Pubs    PubsCmd    `cmd:"" help:"Open or list bookmarked publications"`
}

// RouteCmd is the "route" subcommand.
type RouteCmd struct {
	Origin      string `arg:"" help:"Origin airport (ICAO or FAA ident)"`
	Destination string `arg:"" help:"Destination airport (ICAO or FAA ident)"`
	Raw         bool   `help:"Print the route records as JSON"`
}

// MetarCmd is the "metar" subcommand.
type MetarCmd struct {
	Station string `arg:"" help:"Station ident (e.g. KIAD or IAD)"`
	Raw     bool   `help:"Print the raw observation text only"`
	JSON    bool   `help:"Print decoded observations as JSON"`
}

// TafCmd is the "taf" subcommand.
type TafCmd struct {
	Station string `arg:"" help:"Station ident (e.g. KIAD or IAD)"`
	Raw     bool   `help:"Print the raw forecast text only"`
	JSON    bool   `help:"Print decoded forecasts as JSON"`
}

// WeatherCmd is the "weather" subcommand.
type WeatherCmd struct {
	Station string `arg:"" help:"Station ident (e.g. KIAD or IAD)"`
	Raw     bool   `help:"Print raw METAR and TAF text only"`
	JSON    bool   `help:"Print decoded products as JSON"`
}

// ChartCmd is the "chart" subcommand.
type ChartCmd struct {
	Airport string   `arg:"" help:"Airport ident (e.g. KIAD or IAD)"`
	Query   []string `arg:"" optional:"" help:"Chart title words (e.g. ils 1c)"`
	Link    bool     `help:"Print chart page URLs instead of opening"`
	Airac   string   `help:"d-TPP AIRAC cycle, e.g. 2608 (faa source only)"`
	Source  string   `help:"Chart source: aviationapi or faa (default from config)"`
}

// PubsCmd is the "pubs" subcommand.
type PubsCmd struct {
	Alias string `arg:"" optional:"" help:"Publication alias to open"`
	List  bool   `help:"List all configured publications"`
}
