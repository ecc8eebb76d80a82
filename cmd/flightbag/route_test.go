package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/flightbag/flightbag"
	main "github.com/flightbag/flightbag/cmd/flightbag"
	"github.com/flightbag/flightbag/mock"
	"github.com/flightbag/flightbag/tablewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders routes for a normalized airport pair", func(t *testing.T) {
		t.Parallel()

		routes := &mock.RouteService{
			FindRoutesFn: func(_ context.Context, origin, dest string) ([]flightbag.PreferredRoute, error) {
				assert.Equal(t, "IAD", origin)
				assert.Equal(t, "RIC", dest)
				return []flightbag.PreferredRoute{
					{
						Origin:         "IAD",
						Destination:    "RIC",
						Route:          "IAD AML V157 FAK RIC",
						Altitude:       "5000-8000",
						Aircraft:       "TURBOJETS",
						DepartureARTCC: "ZDC",
						ArrivalARTCC:   "ZDC",
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Routes:   routes,
			Renderer: tablewriter.NewRenderer(stdout),
		}

		cmd := &main.RouteCmd{Origin: "KIAD", Destination: "kric"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "IAD AML V157 FAK RIC")
		assert.Contains(t, output, "TURBOJETS")
		assert.Contains(t, output, "ZDC")
		assert.Empty(t, stderr.String())
	})

	t.Run("with --raw prints the route records as JSON", func(t *testing.T) {
		t.Parallel()

		routes := &mock.RouteService{
			FindRoutesFn: func(_ context.Context, _, _ string) ([]flightbag.PreferredRoute, error) {
				return []flightbag.PreferredRoute{
					{Origin: "IAD", Destination: "RIC", Route: "IAD AML V157 FAK RIC"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Routes:   routes,
			Renderer: tablewriter.NewRenderer(stdout),
		}

		cmd := &main.RouteCmd{Origin: "IAD", Destination: "RIC", Raw: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"origin": "IAD"`)
		assert.Contains(t, stdout.String(), `"route": "IAD AML V157 FAK RIC"`)
	})

	t.Run("reports empty results without failing", func(t *testing.T) {
		t.Parallel()

		routes := &mock.RouteService{
			FindRoutesFn: func(_ context.Context, origin, dest string) ([]flightbag.PreferredRoute, error) {
				return nil, flightbag.Errorf(flightbag.ENOTFOUND, "no preferred routes found for %s -> %s", origin, dest)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Routes: routes,
		}

		cmd := &main.RouteCmd{Origin: "KIAD", Destination: "KLAX"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No preferred routes found for IAD -> LAX")
		assert.Empty(t, stderr.String())
	})

	t.Run("returns transport errors", func(t *testing.T) {
		t.Parallel()

		svcErr := flightbag.Errorf(flightbag.EUNAVAILABLE, "routes API returned HTTP 500")
		routes := &mock.RouteService{
			FindRoutesFn: func(_ context.Context, _, _ string) ([]flightbag.PreferredRoute, error) {
				return nil, svcErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Routes: routes,
		}

		cmd := &main.RouteCmd{Origin: "IAD", Destination: "RIC"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, svcErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
