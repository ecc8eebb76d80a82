// Package toml implements configuration storage for the flightbag CLI.
// Publication bookmarks and chart source settings live in a single TOML
// file, created with defaults on first use.
package toml

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/flightbag/flightbag"
)

// Chart source names accepted in the [charts] section.
const (
	SourceAviationAPI = "aviationapi"
	SourceFAA         = "faa"
)

// Config represents the on-disk configuration file.
type Config struct {
	// Pubs maps bookmark aliases to URLs.
	Pubs map[string]string `toml:"pubs"`

	// Charts configures where instrument charts are fetched from.
	Charts ChartsConfig `toml:"charts"`
}

// ChartsConfig selects and tunes the chart source.
type ChartsConfig struct {
	// Source is the chart provider: "aviationapi" (default) or "faa".
	Source string `toml:"source"`

	// BaseURL overrides the provider's API root. The FLIGHTBAG_CHARTS_BASE
	// environment variable takes precedence over this value.
	BaseURL string `toml:"base_url"`

	// AIRAC pins the FAA d-TPP cycle, e.g. "2608". Empty means the cycle
	// currently in effect. Only meaningful with the "faa" source.
	AIRAC string `toml:"airac"`
}

// DefaultConfig returns the configuration written on first use. The
// example pubs give the file an editable shape to start from.
func DefaultConfig() *Config {
	return &Config{
		Pubs: map[string]string{
			"the_fox":      "https://example.com/the_fox",
			"green_dragon": "https://example.com/green_dragon",
		},
		Charts: ChartsConfig{
			Source: SourceAviationAPI,
		},
	}
}

// Validate returns an error if the configuration contains invalid
// fields.
func (c *Config) Validate() error {
	switch c.Charts.Source {
	case "", SourceAviationAPI, SourceFAA:
	default:
		return flightbag.Errorf(flightbag.EINVALID, "unknown chart source %q (expected %q or %q)",
			c.Charts.Source, SourceAviationAPI, SourceFAA)
	}
	for alias, url := range c.Pubs {
		p := flightbag.Pub{Alias: alias, URL: url}
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ConfigPath returns the configuration file location: the
// FLIGHTBAG_CONFIG environment variable if set, then
// $XDG_CONFIG_HOME/flightbag/flightbag.toml, then
// ~/.config/flightbag/flightbag.toml, falling back to the working
// directory.
func ConfigPath() string {
	if p := os.Getenv("FLIGHTBAG_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flightbag", "flightbag.toml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "flightbag", "flightbag.toml")
	}
	return "flightbag.toml"
}

// Load reads the configuration from path.
// Returns ENOTFOUND if no file exists there.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, flightbag.Errorf(flightbag.ENOTFOUND, "config file not found: %s", path)
	}
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, flightbag.Errorf(flightbag.EINVALID, "config file %s: %v", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadOrCreate reads the configuration from path, writing and returning
// the default configuration when no file exists there yet.
func LoadOrCreate(path string) (*Config, error) {
	config, err := Load(path)
	if flightbag.ErrorCode(err) == flightbag.ENOTFOUND {
		config = DefaultConfig()
		if werr := writeConfig(path, config); werr != nil {
			return nil, werr
		}
		return config, nil
	}
	return config, err
}

func writeConfig(path string, config *Config) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return flightbag.Errorf(flightbag.EINTERNAL, "creating config directory %s: %v", dir, err)
		}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return flightbag.Errorf(flightbag.EINTERNAL, "encoding default config: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return flightbag.Errorf(flightbag.EINTERNAL, "writing config file %s: %v", path, err)
	}
	return nil
}
