package flightbag

import "strings"

// NormalizeIdent uppercases and trims an airport identifier.
func NormalizeIdent(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// AlternateIdent returns the ICAO form of a bare 3-letter US identifier
// ("IAD" becomes "KIAD"). The second return is false when no alternate
// applies, i.e. the identifier is not three characters or already
// starts with K. Data sources index US airports inconsistently, so a
// lookup that comes back empty is retried under the alternate.
func AlternateIdent(ident string) (string, bool) {
	id := NormalizeIdent(ident)
	if len(id) == 3 && !strings.HasPrefix(id, "K") {
		return "K" + id, true
	}
	return "", false
}

// RouteIdent returns the identifier form used by the preferred routes
// database: uppercased with a leading ICAO "K" stripped, since the
// database indexes US airports by their domestic 3-letter codes.
func RouteIdent(s string) string {
	id := strings.TrimSpace(s)
	if len(id) > 0 && (id[0] == 'k' || id[0] == 'K') {
		id = id[1:]
	}
	return strings.ToUpper(id)
}
