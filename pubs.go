package flightbag

import (
	"context"
	"strings"
)

// Pub represents a bookmarked publication: a named link to a chart
// supplement, SOP, LOA, or similar reference document.
type Pub struct {
	Alias string `json:"alias"`
	URL   string `json:"url"`
}

// Validate returns an error if the publication contains invalid fields.
func (p *Pub) Validate() error {
	if p.Alias == "" {
		return Errorf(EINVALID, "pub alias required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "pub URL required")
	}
	return nil
}

// PubService manages publication bookmarks.
type PubService interface {
	// FindPub returns the publication with the given alias. The alias is
	// normalized before lookup. Returns ENOTFOUND if no publication has
	// the alias.
	FindPub(ctx context.Context, alias string) (*Pub, error)

	// Pubs returns all publications sorted by alias.
	Pubs(ctx context.Context) ([]Pub, error)
}

// NormalizeAlias lowercases an alias and maps word separators to
// underscores, so "Green Dragon", "green-dragon", and "green_dragon"
// address the same publication.
func NormalizeAlias(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
