package match

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// abbreviations maps spelled-out procedure words to the abbreviated
// forms used on published charts, so "RUNWAY 28" and "RWY 28" compare
// equal after normalization.
var abbreviations = map[string]string{
	"RUNWAY":    "RWY",
	"APPROACH":  "APCH",
	"ARRIVAL":   "ARR",
	"DEPARTURE": "DEP",
}

// Normalize canonicalizes a chart title or query string for comparison:
// compatibility-fold and uppercase, delete hyphens so "28-R" equals
// "28R" and "VOR-A" equals "VORA", map remaining punctuation to spaces,
// collapse whitespace, canonicalize abbreviations, and strip leading
// zeros from runway designators so "RWY 01" equals "RWY 1".
func Normalize(s string) string {
	s = strings.ToUpper(norm.NFKC.String(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-':
			// joins runway and suffix designators
		default:
			b.WriteByte(' ')
		}
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		if canon, ok := abbreviations[w]; ok {
			words[i] = canon
			continue
		}
		words[i] = stripRunwayZero(w)
	}
	return strings.Join(words, " ")
}

// Tokenize splits an already-normalized string into comparison tokens.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// stripRunwayZero removes the leading zero from a runway designator
// token: "01" becomes "1", "09L" becomes "9L". Other tokens pass
// through unchanged.
func stripRunwayZero(w string) string {
	if len(w) < 2 || len(w) > 3 || w[0] != '0' {
		return w
	}
	if w[1] < '1' || w[1] > '9' {
		return w
	}
	if len(w) == 3 {
		switch w[2] {
		case 'L', 'R', 'C':
		default:
			return w
		}
	}
	return w[1:]
}
