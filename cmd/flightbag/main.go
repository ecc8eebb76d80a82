package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/flightbag/flightbag"
	"github.com/flightbag/flightbag/browser"
	flightbaghttp "github.com/flightbag/flightbag/http"
	flightbagslog "github.com/flightbag/flightbag/slog"
	"github.com/flightbag/flightbag/tablewriter"
	"github.com/flightbag/flightbag/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		// Not-found exits 2 so scripts can tell a bad alias or ident
		// from a transport failure.
		if flightbag.ErrorCode(err) == flightbag.ENOTFOUND {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// Config loaded (or created with defaults) during Run().
	Config *toml.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: toml.ConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("flightbag"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'flightbag --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Global flags may precede the command, so take the command name
	// from the parsed context rather than args[0].
	cmd := strings.Fields(kongCtx.Command())[0]

	// Load the config file, creating it with defaults on first use
	if cli.Config != "" {
		m.ConfigPath = cli.Config
	}
	m.Config, err = toml.LoadOrCreate(m.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set FLIGHTBAG_CONFIG to use a different config path")
		return err
	}

	deps.ConfigPath = m.ConfigPath
	deps.NoOpen = cli.NoOpen
	deps.Renderer = tablewriter.NewRenderer(stdout)
	deps.Opener = browser.NewOpener()
	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Wire command-specific services based on command
	client := flightbaghttp.NewClient()

	switch cmd {
	case "route":
		routes := flightbag.RouteService(flightbaghttp.NewRouteService(client, ""))
		if cli.Verbose {
			routes = flightbagslog.NewLoggingRouteService(routes, deps.Logger)
		}
		deps.Routes = routes

	case "metar", "taf", "weather":
		weather := flightbag.WeatherService(flightbaghttp.NewWeatherService(client, ""))
		if cli.Verbose {
			weather = flightbagslog.NewLoggingWeatherService(weather, deps.Logger)
		}
		deps.Weather = weather

	case "chart":
		source, base, err := chartSource(client, cli, m.Config)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", flightbag.ErrorMessage(err))
			return err
		}
		if cli.Verbose {
			source = flightbagslog.NewLoggingChartSource(source, deps.Logger)
		}
		deps.Charts = source
		deps.ChartsBase = base

	case "pubs":
		deps.Pubs = toml.NewPubService(m.Config)
	}

	return kongCtx.Run(deps)
}

// chartSource builds the chart source selected by the --source flag or
// the config file. The --airac flag picks a d-TPP cycle and is only
// meaningful for the faa source.
func chartSource(client *flightbaghttp.Client, cli *CLI, cfg *toml.Config) (flightbag.ChartSource, string, error) {
	source := cfg.Charts.Source
	if cli.Chart.Source != "" {
		source = cli.Chart.Source
	}
	if source == "" {
		source = toml.SourceAviationAPI
	}

	base := cfg.Charts.BaseURL
	if env := os.Getenv("FLIGHTBAG_CHARTS_BASE"); env != "" {
		base = env
	}

	switch source {
	case toml.SourceAviationAPI:
		if cli.Chart.Airac != "" {
			return nil, "", flightbag.Errorf(flightbag.EINVALID, "--airac requires the faa chart source (try --source faa)")
		}
		svc := flightbaghttp.NewChartService(client, base)
		return svc, svc.Base(), nil

	case toml.SourceFAA:
		cycle := cfg.Charts.AIRAC
		if cli.Chart.Airac != "" {
			cycle = cli.Chart.Airac
		}
		return flightbaghttp.NewDTPPService(client, base, cycle), "", nil

	default:
		return nil, "", flightbag.Errorf(flightbag.EINVALID, "unknown chart source %q (valid sources: %s, %s)", source, toml.SourceAviationAPI, toml.SourceFAA)
	}
}
