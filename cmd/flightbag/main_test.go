package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/flightbag/flightbag"
	main "github.com/flightbag/flightbag/cmd/flightbag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()
			m.ConfigPath = filepath.Join(t.TempDir(), "flightbag.toml")

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			// Usage should be printed to stdout (not stderr) when explicitly requested
			assert.Contains(t, stdout.String(), "Usage: flightbag")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.ConfigPath = filepath.Join(t.TempDir(), "flightbag.toml")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	// No args should show usage to stdout and return error
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: flightbag")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.ConfigPath = filepath.Join(t.TempDir(), "flightbag.toml")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"frobnicate"}, stdout, stderr)

	require.Error(t, err)
}

func TestRun_HelpWithoutCreatingConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "should-not-exist.toml")

	m := main.NewMain()
	m.ConfigPath = configPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Usage: flightbag")
	assert.Empty(t, stderr.String())

	// Verify config file was NOT created
	_, statErr := os.Stat(configPath)
	assert.True(t, os.IsNotExist(statErr), "config file should not be created for --help")
}

func TestRun_PubsListCreatesDefaultConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "flightbag.toml")

	m := main.NewMain()
	m.ConfigPath = configPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"pubs", "--list"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Available pubs (from "+configPath+"):")
	assert.Contains(t, stdout.String(), "the_fox -> https://example.com/the_fox")
	assert.Contains(t, stdout.String(), "green_dragon -> https://example.com/green_dragon")

	// First use writes the default config
	_, statErr := os.Stat(configPath)
	require.NoError(t, statErr)
	require.NotNil(t, m.Config)
	assert.Equal(t, "https://example.com/the_fox", m.Config.Pubs["the_fox"])
}

func TestRun_ConfigFlagBeforeCommand(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "custom.toml")

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"--config", configPath, "pubs", "--list"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Available pubs (from "+configPath+"):")

	_, statErr := os.Stat(configPath)
	require.NoError(t, statErr)
}

func TestRun_AiracRequiresFAASource(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.ConfigPath = filepath.Join(t.TempDir(), "flightbag.toml")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// The default config selects the aviationapi source, which has no
	// notion of AIRAC cycles.
	err := m.Run(testContext(), []string{"chart", "IAD", "--airac", "2608"}, stdout, stderr)

	require.Error(t, err)
	assert.Equal(t, flightbag.EINVALID, flightbag.ErrorCode(err))
	assert.Contains(t, stderr.String(), "--airac requires the faa chart source")
}

func TestRun_VerboseChartLogsServiceCalls(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"charts": {"approach": [{"chart_name": "ILS OR LOC RWY 1C", "pdf_url": "00443I1C.PDF"}]}}`))
	}))
	t.Cleanup(server.Close)

	configPath := filepath.Join(t.TempDir(), "flightbag.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[charts]\nbase_url = \""+server.URL+"\"\n"), 0o644))

	t.Run("verbose logs the chart lookup to stderr", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.ConfigPath = configPath

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"--verbose", "chart", "IAD", "ils", "--link"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "00443I1C.PDF")
		assert.Contains(t, stderr.String(), "chart lookup")
		assert.Contains(t, stderr.String(), "airport=IAD")
		assert.Contains(t, stderr.String(), "count=1")
		assert.Contains(t, stderr.String(), "duration=")
	})

	t.Run("quiet run keeps stderr empty", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.ConfigPath = configPath

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"chart", "IAD", "ils", "--link"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "00443I1C.PDF")
		assert.Empty(t, stderr.String())
	})
}

func TestRun_UnknownChartSourceFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.ConfigPath = filepath.Join(t.TempDir(), "flightbag.toml")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"chart", "IAD", "--source", "jeppesen"}, stdout, stderr)

	require.Error(t, err)
	assert.Equal(t, flightbag.EINVALID, flightbag.ErrorCode(err))
	assert.Contains(t, stderr.String(), "jeppesen")
}
