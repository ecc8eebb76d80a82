package toml

import (
	"context"
	"sort"

	"github.com/flightbag/flightbag"
)

// Ensure PubService implements flightbag.PubService at compile time.
var _ flightbag.PubService = (*PubService)(nil)

// PubService serves publication bookmarks from a loaded configuration.
type PubService struct {
	config *Config
}

// NewPubService creates a PubService backed by the configuration.
func NewPubService(config *Config) *PubService {
	return &PubService{config: config}
}

// FindPub returns the publication with the given alias. Aliases are
// normalized on both sides, so "Green Dragon" finds a bookmark stored
// as "green_dragon".
func (s *PubService) FindPub(_ context.Context, alias string) (*flightbag.Pub, error) {
	want := flightbag.NormalizeAlias(alias)
	for stored, url := range s.config.Pubs {
		if flightbag.NormalizeAlias(stored) == want {
			return &flightbag.Pub{Alias: stored, URL: url}, nil
		}
	}
	return nil, flightbag.Errorf(flightbag.ENOTFOUND, "unknown pub %q", alias)
}

// Pubs returns all publications sorted by alias.
func (s *PubService) Pubs(_ context.Context) ([]flightbag.Pub, error) {
	pubs := make([]flightbag.Pub, 0, len(s.config.Pubs))
	for alias, url := range s.config.Pubs {
		pubs = append(pubs, flightbag.Pub{Alias: alias, URL: url})
	}
	sort.Slice(pubs, func(i, j int) bool { return pubs[i].Alias < pubs[j].Alias })
	return pubs, nil
}
